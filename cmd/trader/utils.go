package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/tdex-network/tdex-trader/internal/config"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/pkg/registry"
)

// getProviders resolves the provider list either from the repeatable
// --provider flag or from the public registry.
func getProviders(ctx *cli.Context) ([]domain.Provider, error) {
	if endpoints := ctx.StringSlice("provider"); len(endpoints) > 0 {
		return parseManualProviders(endpoints)
	}

	registryProviders, err := registry.FetchProviders(
		config.GetString(config.RegistryURLKey), config.GetRegistryNetwork(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registry: %w", err)
	}

	providers := make([]domain.Provider, 0, len(registryProviders))
	for _, p := range registryProviders {
		providers = append(providers, domain.Provider{
			Name:     p.Name,
			Endpoint: p.Endpoint,
			Version:  domain.ProtocolVersion(p.Version),
		})
	}
	return providers, nil
}

// parseManualProviders accepts entries like "v2:host:port" or "host:port",
// the latter defaulting to V1 like registry entries without a version.
func parseManualProviders(endpoints []string) ([]domain.Provider, error) {
	providers := make([]domain.Provider, 0, len(endpoints))
	for _, e := range endpoints {
		version := domain.ProtocolVersionV1
		endpoint := e
		if strings.HasPrefix(e, "v1:") {
			endpoint = strings.TrimPrefix(e, "v1:")
		}
		if strings.HasPrefix(e, "v2:") {
			version = domain.ProtocolVersionV2
			endpoint = strings.TrimPrefix(e, "v2:")
		}

		provider := domain.Provider{
			Name:     endpoint,
			Endpoint: endpoint,
			Version:  version,
		}
		if err := provider.Validate(); err != nil {
			return nil, fmt.Errorf("invalid provider %s: %w", e, err)
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

func printJSON(resp interface{}) {
	jsonStr, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}
	fmt.Println(string(jsonStr))
}
