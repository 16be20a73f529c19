package stackdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "Recommended Stack", meta.Title)
	assert.Equal(t, "proposal", meta.Status)
	assert.NotEmpty(t, meta.Updated)

	assert.False(t, strings.HasPrefix(body, "---"), "front matter should be stripped from the body")
	assert.True(t, strings.HasPrefix(body, "# "), "body should start at the markdown heading")
}

func TestBodyNamesTheProposedTools(t *testing.T) {
	body, err := Body()
	require.NoError(t, err)

	// The document must cover every concern the proposal is responsible
	// for: API framework, ORM, identity provider, object storage,
	// deployment.
	for _, tool := range []string{"chi", "GORM", "Auth0", "S3", "PostgreSQL", "Fargate"} {
		assert.Contains(t, body, tool)
	}
}

func TestRenderForTerminal(t *testing.T) {
	for _, dark := range []bool{true, false} {
		out, err := Render(80, dark)
		require.NoError(t, err)
		assert.Contains(t, out, "Auth0")
		assert.Contains(t, out, "PostgreSQL")
	}
}

func TestRenderDefaultsWidth(t *testing.T) {
	out, err := Render(0, false)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
