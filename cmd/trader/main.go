package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/tdex-network/tdex-trader/internal/config"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "tdex trader CLI"
	app.Usage = "Command line interface for trading against TDEX providers"
	app.Flags = []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "provider",
			Usage: "provider endpoint in the form [version:]host:port, bypasses the registry, repeatable",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		if err := config.InitConfig(); err != nil {
			return err
		}
		log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
		return nil
	}
	app.Commands = append(
		app.Commands,
		&providers,
		&markets,
		&preview,
		&tradeCmd,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[trader] %v\n", err)
	os.Exit(1)
}
