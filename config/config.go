package config

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/spf13/viper"
)

type config struct {
	// Debug indicates if in debug mode.
	Debug bool

	// Label is used as prefix in log output, e.g., mainnet, testnet.
	Label string

	// PrefixLen is the default version prefix length assumed when
	// check-decoding, overridable per invocation.
	PrefixLen int `mapstructure:"prefixlen"`

	// AddressVersion is the default version byte for address construction.
	AddressVersion int `mapstructure:"addressversion"`
}

var cfg config

// Load reads configs from the config file if one exists,
// otherwise keeps the built-in defaults.
func Load(display bool) {
	viper.SetConfigName("config")
	viper.AddConfigPath("./config")
	// Incase test cases require loading configs
	viper.AddConfigPath("../config")

	viper.SetDefault("debug", false)
	viper.SetDefault("prefixlen", 1)
	viper.SetDefault("addressversion", 0)

	if err := load(display); err != nil {
		panic(err)
	}

	if err := validateConfig(); err != nil {
		panic(err)
	}
}

/* ------------------------------
        `Get` functions
------------------------------ */

// DebugMode tells if running in debug mode.
func DebugMode() bool {
	return cfg.Debug
}

// GetLabel returns custom label as part of the log output prefix.
func GetLabel() string {
	return cfg.Label
}

// GetPrefixLen returns the default check-decode version prefix length.
func GetPrefixLen() int {
	return cfg.PrefixLen
}

// GetAddressVersion returns the default address version byte.
func GetAddressVersion() byte {
	return byte(cfg.AddressVersion)
}

/* ------------------------------
         Utility Functions
------------------------------ */

func load(display bool) error {
	err := viper.ReadInConfig()
	if err != nil {
		// The config file is optional, defaults cover everything.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return err
		}
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return err
	}

	if display {
		configContent, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			panic(err)
		}

		log.Println(string(configContent))
	}

	return nil
}

func validateConfig() error {
	if cfg.PrefixLen < 1 {
		return errors.New("prefixlen must be greater than 0")
	}

	if cfg.AddressVersion < 0 || cfg.AddressVersion > 255 {
		return errors.New("addressversion must fit in one byte")
	}

	return nil
}
