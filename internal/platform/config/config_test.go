package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Load()

	require.Equal(t, "3500", AppConfig.APIPort)
	require.Equal(t, 15*time.Minute, AppConfig.AccessExp)
	require.Equal(t, 168*time.Hour, AppConfig.RefreshExp)
	require.Contains(t, AppConfig.DBConnStr, "dbname=repairs_db")
	require.Equal(t, 60*time.Second, AppConfig.NoteCacheTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "8080")
	t.Setenv("ACCESS_TOKEN_MINUTES", "5")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	Load()

	require.Equal(t, "8080", AppConfig.APIPort)
	require.Equal(t, 5*time.Minute, AppConfig.AccessExp)
	require.False(t, AppConfig.CookieSecure)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, AppConfig.AllowedOrigins)
}

func TestSplitAndTrim(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitAndTrim("a, b,"))
	require.Nil(t, splitAndTrim(""))
}
