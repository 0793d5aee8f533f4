package main

import (
	"github.com/urfave/cli/v2"
)

var providers = cli.Command{
	Name:   "providers",
	Usage:  "list the known providers for the configured network",
	Action: providersAction,
}

func providersAction(ctx *cli.Context) error {
	list, err := getProviders(ctx)
	if err != nil {
		return err
	}

	type providerInfo struct {
		Name     string `json:"name"`
		Endpoint string `json:"endpoint"`
		Version  string `json:"version"`
	}
	info := make([]providerInfo, 0, len(list))
	for _, p := range list {
		info = append(info, providerInfo{p.Name, p.Endpoint, p.Version.String()})
	}

	printJSON(info)
	return nil
}
