// Package registry fetches the list of known TDEX providers from the public
// registry.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"

	// DefaultRegistryURL is the canonical location of the public registry.
	DefaultRegistryURL = "https://raw.githubusercontent.com/tdex-network/tdex-registry/master/registry.json"
)

var (
	// ErrUnknownNetwork ...
	ErrUnknownNetwork = errors.New(
		"registry has no providers for the given network",
	)

	// The public registry still references the decommissioned testnet
	// endpoint, so the known good provider is appended until the registry
	// entry is fixed.
	testnetFallbackProvider = Provider{
		Name:     "tdex.network testnet",
		Endpoint: "https://provider.testnet.tdex.network:19945",
		Version:  1,
	}
)

// Provider is one registry entry. Entries without an explicit version are
// legacy V1 providers.
type Provider struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
	Version  int    `json:"version,omitempty"`
}

// FetchProviders GETs the registry document at the given URL and returns the
// provider descriptors registered for the given network.
func FetchProviders(registryURL, network string) ([]Provider, error) {
	resp, err := http.Get(registryURL)
	if err != nil {
		return nil, fmt.Errorf("fetch registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"fetch registry: unexpected status %d", resp.StatusCode,
		)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read registry response: %w", err)
	}

	return parseProviders(body, network)
}

func parseProviders(body []byte, network string) ([]Provider, error) {
	providersByNetwork := map[string][]Provider{}
	if err := json.Unmarshal(body, &providersByNetwork); err != nil {
		return nil, fmt.Errorf("parse registry response: %w", err)
	}

	providers, ok := providersByNetwork[network]
	if !ok {
		return nil, ErrUnknownNetwork
	}

	for i := range providers {
		if providers[i].Version == 0 {
			providers[i].Version = 1
		}
	}

	if network == NetworkTestnet {
		providers = appendIfMissing(providers, testnetFallbackProvider)
	}

	return providers, nil
}

func appendIfMissing(providers []Provider, provider Provider) []Provider {
	for _, p := range providers {
		if p.Endpoint == provider.Endpoint {
			return providers
		}
	}
	return append(providers, provider)
}
