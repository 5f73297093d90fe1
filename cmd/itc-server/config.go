package main

// this file contains all the code that directly uses the viper package

import (
	"context"

	"github.com/eaobservatory/jcmt-itc-heterodyne/internal/logging"
	"github.com/spf13/viper"
)

// serverConfig collects the runtime settings of the API server. Flags
// provide the defaults; an optional config file overrides them.
type serverConfig struct {
	Addr        string `mapstructure:"addr"`
	MetricsAddr string `mapstructure:"metrics_addr"`

	// ReceiverFile and OpacityFile point to externally maintained
	// data tables; empty means use the embedded defaults.
	ReceiverFile string `mapstructure:"receiver_file"`
	OpacityFile  string `mapstructure:"opacity_file"`
}

// loadConfig reads configuration from a TOML-formatted file called
// 'itc-server.toml'. It looks for this in /etc/itc and then in the
// current directory, for convenience. When no file is found the flag
// values are used unchanged.
func loadConfig(ctx context.Context, log logging.Logger, addr, metricsAddr string) serverConfig {
	cfg := serverConfig{
		Addr:        addr,
		MetricsAddr: metricsAddr,
	}

	viper.SetConfigName("itc-server")
	viper.AddConfigPath("/etc/itc")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		return cfg
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		log.Warn(ctx, "ignoring unreadable config file",
			logging.String("file", viper.ConfigFileUsed()),
			logging.String("error", err.Error()),
		)
		return serverConfig{Addr: addr, MetricsAddr: metricsAddr}
	}

	if cfg.Addr == "" {
		cfg.Addr = addr
	}
	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = metricsAddr
	}

	log.Info(ctx, "loaded config file", logging.String("file", viper.ConfigFileUsed()))
	return cfg
}
