package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadReturnsDefaultWhenNoFileExists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 6, cfg.Precision)
	assert.Equal(t, []string{"x"}, cfg.GraphVars)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.Precision = 10
	cfg.GraphVars = []string{"x", "y"}
	cfg.Constants["c"] = 299792458
	assert.NoError(t, cfg.Save())

	got, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 10, got.Precision)
	assert.Equal(t, []string{"x", "y"}, got.GraphVars)
	assert.Equal(t, 299792458.0, got.Constants["c"])
}

func TestSetPrecisionValidatesBounds(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		wantErr   bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 20, false},
		{"typical", 6, false},
		{"negative", -1, true},
		{"too high", 21, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.SetPrecision(tt.precision)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 6, cfg.Precision) // unchanged on rejection
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.precision, cfg.Precision)
			}
		})
	}
}
