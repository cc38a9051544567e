package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowedOriginsDefaults(t *testing.T) {
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	origins := AllowedOrigins()
	require.Contains(t, origins, "http://localhost:3000")
	require.Contains(t, origins, "http://localhost:5173")
	require.Len(t, origins, 2)
}

func TestAllowedOriginsPicksUpEnvSetAfterStartup(t *testing.T) {
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	// Nothing configured yet, as at package init time
	require.Len(t, AllowedOrigins(), 2)

	// Values arriving later, e.g. from godotenv.Load in main, are honored
	t.Setenv("CLIENT_URL", "https://app.decklab.dev")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	origins := AllowedOrigins()
	require.Contains(t, origins, "https://app.decklab.dev")
	require.Contains(t, origins, "https://a.example")
	require.Contains(t, origins, "https://b.example")
	require.Len(t, origins, 5)
}
