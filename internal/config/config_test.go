package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Defaults ----

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.App.AdminUsername)
	assert.Equal(t, "admin123", cfg.App.AdminPassword)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "mongodb://localhost:27017/space-portfolio", cfg.Storage.MongoURI)
	assert.Equal(t, "space-portfolio", cfg.Storage.MongoDatabase)
	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Telegram.RequestTimeout)
}

// ---- Env priority ----

func TestBuild_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("STORAGE_BACKEND", BackendMongoDB)
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017/portfolio")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "3s")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100")

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "root", cfg.App.AdminUsername)
	assert.Equal(t, "s3cret", cfg.App.AdminPassword)
	assert.Equal(t, BackendMongoDB, cfg.Storage.Backend)
	assert.Equal(t, "mongodb://db.internal:27017/portfolio", cfg.Storage.MongoURI)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Address)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "-100", cfg.Telegram.ChatID)

	// untouched fields still fall back
	assert.Equal(t, "space-portfolio", cfg.Storage.MongoDatabase)
}

func TestBuild_PartialEnvKeepsOtherDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "changed-only-password")

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.App.AdminUsername)
	assert.Equal(t, "changed-only-password", cfg.App.AdminPassword)
}

// ---- Validation ----

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Backend = "postgres" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "mongodb backend without uri",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Backend = BackendMongoDB
				cfg.Storage.MongoURI = ""
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Address = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "non-positive request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty admin password",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AdminPassword = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
