package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/oauth2"
)

func TestTokenWithoutCredentials(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Token()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read client secret file")
}

func TestTokenCacheRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	want := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	saveToken(tokenFile, want)

	got, err := tokenFromFile(tokenFile)
	require.NoError(t, err)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.Equal(t, want.RefreshToken, got.RefreshToken)
	assert.True(t, want.Expiry.Equal(got.Expiry))
}

func TestTokenFromFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := tokenFromFile(tokenFile)
	assert.Error(t, err)
}
