package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"TELEGRAM_TOKEN": "123:abc",
		"API_BASE_URL":   "https://api.studio.com.br/api/",
		"API_TOKEN":      "jwt",
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "https://api.studio.com.br/api", cfg.APIBaseURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 500, cfg.MaxResults)
	assert.Equal(t, 7, cfg.DigestHour)
	assert.Empty(t, cfg.AdminChatIDs)
	assert.False(t, cfg.DigestEnabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	vars := baseEnv()
	vars["ADMIN_CHAT_IDS"] = " 100, -2001 ,"
	vars["API_TIMEOUT"] = "3s"
	vars["SCHEDULE_MAX_RESULTS"] = "50"
	vars["DIGEST_HOUR"] = "-1"
	vars["ENV"] = "production"

	cfg, err := FromEnv(env(vars))
	require.NoError(t, err)

	assert.Equal(t, []int64{100, -2001}, cfg.AdminChatIDs)
	assert.True(t, cfg.IsAdmin(-2001))
	assert.False(t, cfg.IsAdmin(5))
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, 50, cfg.MaxResults)
	assert.False(t, cfg.DigestEnabled())
	assert.Equal(t, "production", cfg.Environment)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"missing telegram token", "TELEGRAM_TOKEN", ""},
		{"missing base url", "API_BASE_URL", ""},
		{"bad chat id", "ADMIN_CHAT_IDS", "12,abc"},
		{"bad timeout", "API_TIMEOUT", "soon"},
		{"zero max results", "SCHEDULE_MAX_RESULTS", "0"},
		{"digest hour out of range", "DIGEST_HOUR", "24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := baseEnv()
			vars[tt.key] = tt.value

			_, err := FromEnv(env(vars))

			assert.Error(t, err)
		})
	}
}

func TestFromEnv_CredentialsInsteadOfToken(t *testing.T) {
	vars := baseEnv()
	delete(vars, "API_TOKEN")

	_, err := FromEnv(env(vars))
	assert.Error(t, err)

	vars["API_EMAIL"] = "admin@studio.com.br"
	vars["API_PASSWORD"] = "secret"
	cfg, err := FromEnv(env(vars))
	require.NoError(t, err)
	assert.Equal(t, "admin@studio.com.br", cfg.APIEmail)
}
