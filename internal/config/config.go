package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/vulpemventures/go-elements/network"

	"github.com/spf13/viper"

	"github.com/tdex-network/tdex-trader/pkg/registry"
)

const (
	// DatadirKey is the local data directory to store the internal state of the trader
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// NetworkKey is the Liquid network to operate on, either liquid, testnet or regtest
	NetworkKey = "NETWORK"
	// RegistryURLKey is the URL of the public registry listing known providers
	RegistryURLKey = "REGISTRY_URL"
	// ExplorerURLKey is the endpoint of the esplora instance to fetch unspents from
	ExplorerURLKey = "EXPLORER_URL"
	// TradeTimeoutKey is the timeout in seconds for completing a whole trade flow against a provider
	TradeTimeoutKey = "TRADE_TIMEOUT"

	// DbLocation is the folder inside the datadir containing db files
	DbLocation = "db"

	networkMainnet = "liquid"
	networkTestnet = "testnet"
	networkRegtest = "regtest"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("tdex-trader", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("TRADER")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(NetworkKey, networkMainnet)
	vip.SetDefault(RegistryURLKey, registry.DefaultRegistryURL)
	vip.SetDefault(ExplorerURLKey, "https://blockstream.info/liquid/api")
	vip.SetDefault(TradeTimeoutKey, 120)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetNetwork returns the Liquid network parameters matching the configured
// network name.
func GetNetwork() *network.Network {
	switch GetString(NetworkKey) {
	case networkRegtest:
		return &network.Regtest
	case networkTestnet:
		return &network.Testnet
	default:
		return &network.Liquid
	}
}

// GetRegistryNetwork returns the network name in the form used by the public
// provider registry.
func GetRegistryNetwork() string {
	if GetString(NetworkKey) == networkMainnet {
		return registry.NetworkMainnet
	}
	return registry.NetworkTestnet
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	net := GetString(NetworkKey)
	if net != networkMainnet && net != networkTestnet && net != networkRegtest {
		return fmt.Errorf(
			"network must be either %s, %s or %s",
			networkMainnet, networkTestnet, networkRegtest,
		)
	}

	if len(GetString(ExplorerURLKey)) <= 0 {
		return fmt.Errorf("missing explorer url")
	}

	if GetInt(TradeTimeoutKey) <= 0 {
		return fmt.Errorf("%s must be a positive number of seconds", TradeTimeoutKey)
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(filepath.Join(GetDatadir(), DbLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
