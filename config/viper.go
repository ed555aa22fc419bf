package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/MeKo-Tech/dfft2d/fftbackend"
	"github.com/MeKo-Tech/dfft2d/locality"
)

// FileConfig is the shape of a config file or environment overlay read by
// LoadFromFile: comm_scheme and plan_quality as string enumerations, plus
// Workers and the network transport settings a netsub deployment needs.
// This is not a CLI flag parser — wiring an actual command-line front end
// remains out of scope — it only loads a config struct.
type FileConfig struct {
	CommScheme  string `mapstructure:"comm_scheme"`
	PlanQuality string `mapstructure:"plan_quality"`
	Workers     int    `mapstructure:"workers"`

	// SiteCount and ThisSite describe this process's place in the world;
	// the Exchanger itself is still supplied programmatically via
	// config.WithWorld/WithExchanger, since a websocket Hub or Client
	// needs live connections, not something a config file can construct.
	SiteCount int `mapstructure:"site_count"`
	ThisSite  int `mapstructure:"this_site"`

	// HubAddr is the address a netsub.Hub listens on (this process is
	// locality 0) or a netsub.Client dials (this process is locality
	// 1..P-1). Empty means inprocsub is used instead.
	HubAddr string `mapstructure:"hub_addr"`
}

// LoadFromFile reads comm_scheme, plan_quality, workers, and network
// transport settings from a YAML/JSON/TOML config file (and matching
// environment variables, via viper's automatic env binding), and returns
// the programmatic Options fields it is able to set directly
// (CommScheme, PlanQuality, Workers) plus the raw FileConfig for the
// caller to use when constructing the World's Exchanger.
func LoadFromFile(path string) (Options, FileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("DFFT2D")
	v.AutomaticEnv()

	v.SetDefault("comm_scheme", "scatter")
	v.SetDefault("plan_quality", "estimate")
	v.SetDefault("workers", 0)
	v.SetDefault("site_count", 1)
	v.SetDefault("this_site", 0)

	if err := v.ReadInConfig(); err != nil {
		return Options{}, FileConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Options{}, FileConfig{}, fmt.Errorf("unmarshalling config file %s: %w", path, err)
	}

	scheme, err := locality.ParseCommScheme(fc.CommScheme)
	if err != nil {
		return Options{}, FileConfig{}, err
	}

	quality, err := fftbackend.ParsePlanQuality(fc.PlanQuality)
	if err != nil {
		return Options{}, FileConfig{}, err
	}

	opts := DefaultOptions()
	opts.CommScheme = scheme
	opts.PlanQuality = quality
	opts.Workers = fc.Workers

	return opts, fc, nil
}
