package registry_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/registry"
)

const registryJSON = `{
	"mainnet": [
		{"name": "alpha", "endpoint": "provider.alpha.io:9945"},
		{"name": "beta", "endpoint": "provider.beta.io:9945", "version": 2}
	],
	"testnet": [
		{"name": "gamma", "endpoint": "provider.gamma.io:19945", "version": 2}
	]
}`

func newRegistryServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(registryJSON))
		},
	))
	t.Cleanup(server.Close)
	return server
}

func TestFetchProviders(t *testing.T) {
	server := newRegistryServer(t)

	providers, err := registry.FetchProviders(
		server.URL, registry.NetworkMainnet,
	)
	require.NoError(t, err)
	require.Len(t, providers, 2)
	require.Equal(t, "alpha", providers[0].Name)
	// Entries without an explicit version are legacy providers.
	require.Equal(t, 1, providers[0].Version)
	require.Equal(t, 2, providers[1].Version)
}

func TestFetchProvidersTestnetFallback(t *testing.T) {
	server := newRegistryServer(t)

	providers, err := registry.FetchProviders(
		server.URL, registry.NetworkTestnet,
	)
	require.NoError(t, err)
	// The registered entry plus the appended known good endpoint.
	require.Len(t, providers, 2)
	require.Equal(t, "gamma", providers[0].Name)
	require.Equal(
		t, "https://provider.testnet.tdex.network:19945",
		providers[1].Endpoint,
	)
}

func TestFailingFetchProviders(t *testing.T) {
	server := newRegistryServer(t)

	providers, err := registry.FetchProviders(server.URL, "regtest")
	require.Nil(t, providers)
	require.EqualError(t, err, registry.ErrUnknownNetwork.Error())
}
