package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 17, cfg.DealerStandsOn)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5, cfg.HistoryLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BLACKJACK_DEALER_STANDS_ON", "18")
	t.Setenv("BLACKJACK_SEED", "1234")
	t.Setenv("BLACKJACK_LOG_LEVEL", "debug")
	t.Setenv("BLACKJACK_HISTORY_LIMIT", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 18, cfg.DealerStandsOn)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0, cfg.HistoryLimit)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("BLACKJACK_SEED", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "ok", cfg: Config{DealerStandsOn: 17, LogLevel: "info", HistoryLimit: 5}},
		{name: "threshold too low", cfg: Config{DealerStandsOn: 1, LogLevel: "info"}, wantErr: "BLACKJACK_DEALER_STANDS_ON"},
		{name: "threshold too high", cfg: Config{DealerStandsOn: 22, LogLevel: "info"}, wantErr: "BLACKJACK_DEALER_STANDS_ON"},
		{name: "negative limit", cfg: Config{DealerStandsOn: 17, LogLevel: "info", HistoryLimit: -1}, wantErr: "BLACKJACK_HISTORY_LIMIT"},
		{name: "unknown level", cfg: Config{DealerStandsOn: 17, LogLevel: "loud"}, wantErr: "BLACKJACK_LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
