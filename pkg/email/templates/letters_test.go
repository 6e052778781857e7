package templates_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bruce-pain/authkit/pkg/email/templates"
)

func TestPasswordReset(t *testing.T) {
	t.Parallel()

	body, err := templates.Render(context.Background(), templates.PasswordReset("https://app.example.com/reset?token=abc", 60))
	require.NoError(t, err)

	assert.Contains(t, body, "Reset your password")
	assert.Contains(t, body, "https://app.example.com/reset?token=abc")
	assert.Contains(t, body, "60 minutes")
}

func TestMagicLink(t *testing.T) {
	t.Parallel()

	body, err := templates.Render(context.Background(), templates.MagicLink("https://app.example.com/magic?token=xyz", 60))
	require.NoError(t, err)

	assert.Contains(t, body, "Sign in to your account")
	assert.Contains(t, body, "https://app.example.com/magic?token=xyz")
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	t.Run("with name", func(t *testing.T) {
		t.Parallel()

		body, err := templates.Render(context.Background(), templates.Welcome("Ada"))
		require.NoError(t, err)
		assert.Contains(t, body, "Welcome aboard, Ada!")
	})

	t.Run("without name", func(t *testing.T) {
		t.Parallel()

		body, err := templates.Render(context.Background(), templates.Welcome(""))
		require.NoError(t, err)
		assert.Contains(t, body, "Welcome aboard!")
	})

	t.Run("escapes html in name", func(t *testing.T) {
		t.Parallel()

		body, err := templates.Render(context.Background(), templates.Welcome("<script>"))
		require.NoError(t, err)
		assert.NotContains(t, body, "<script>")
	})
}
