package montenbruck

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _astromconfig{}
)

// _astromconfig is a "hidden" struct, just use `astromConfig`
type _astromconfig struct {
	VSOP87Dir string
}

// astromConfig returns the astro-montenbruck configuration, loading it on the
// first call. The configuration lives in `conf.toml` in the directory named
// by the ASTROM_CONFIG environment variable.
func astromConfig() _astromconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("ASTROM_CONFIG")
	if confPath == "" {
		panic("environment variable `ASTROM_CONFIG` is missing or empty")
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}

	vsop87Dir := viper.GetString("VSOP87.directory")
	if vsop87Dir == "" {
		panic("VSOP87.directory not set in conf.toml")
	}
	cfgLoaded = true
	config = _astromconfig{VSOP87Dir: vsop87Dir}
	return config
}
