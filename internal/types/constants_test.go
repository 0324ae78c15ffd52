package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedOriginsReadsEnvAtCallTime(t *testing.T) {
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	origins := AllowedOrigins()
	assert.Equal(t, defaultOrigins, origins)

	// values set after startup, e.g. by a late .env load, are picked up
	t.Setenv("CLIENT_URL", "https://app.example.com")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	origins = AllowedOrigins()
	assert.Contains(t, origins, "https://app.example.com")
	assert.Contains(t, origins, "https://a.example.com")
	assert.Contains(t, origins, "https://b.example.com")
	assert.Len(t, origins, len(defaultOrigins)+3)
}
