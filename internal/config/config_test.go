package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "admin123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.MaxUploadSize)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
}

func TestLoad_RequiresCredential(t *testing.T) {
	// No ADMIN_PASSWORD and no ADMIN_PASSWORD_HASH
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionGuards(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "production with default jwt secret rejected",
			env: map[string]string{
				"APP_ENV":             "production",
				"ADMIN_PASSWORD_HASH": "$2a$10$fakehashfakehashfakehash",
			},
			wantErr: true,
		},
		{
			name: "production with plain password only rejected",
			env: map[string]string{
				"APP_ENV":        "production",
				"ADMIN_PASSWORD": "admin123",
				"JWT_SECRET":     "a-real-secret",
			},
			wantErr: true,
		},
		{
			name: "production fully configured",
			env: map[string]string{
				"APP_ENV":             "production",
				"ADMIN_PASSWORD_HASH": "$2a$10$fakehashfakehashfakehash",
				"JWT_SECRET":          "a-real-secret",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_RejectsUnknownStorageDriver(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "admin123")
	t.Setenv("STORAGE_DRIVER", "s3")

	_, err := Load()
	assert.Error(t, err)
}
