// Package config handles configuration for the terminal client.
package config

import (
	"flag"
	"os"

	"github.com/svortega/authms/internal/flagx"
)

// Config holds runtime settings for the client.
type Config struct {
	ServerEndpointAddr string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
}

// LoadConfig builds a Config from defaults overlaid with command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}

func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server address and port")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
