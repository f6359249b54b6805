package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "postgres://db/auth", "-s", "secret",
				"-t", "5", "-w", "12",
			},
			expected: &Config{
				EndpointAddrGRPC: "127.0.0.1:9090",
				DatabaseDSN:      "postgres://db/auth",
				SecretKey:        "secret",
				TokenTTL:         5 * time.Minute,
				BcryptCost:       12,
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"cmd", "-a", ":6000", "-zz", "junk"},
			expected: &Config{
				EndpointAddrGRPC: ":6000",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}
