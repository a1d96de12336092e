package threads

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Options{
		BaseURL:              baseURL + "/",
		AuthorizationBaseURL: "https://auth.example.com/",
		AppID:                "app-id",
		APISecret:            "app-secret",
		RedirectURI:          "https://localhost:5000/callback",
		HTTPClient:           http.DefaultClient,
	})
}

func TestBuildURL(t *testing.T) {
	t.Run("ParamsAndToken", func(t *testing.T) {
		params := url.Values{}
		params.Set("fields", "username,threads_biography")
		params.Set("limit", "10")

		built := BuildURL("https://graph.example.com/v1.0/", "me", params, "tok&en")

		parsed, err := url.Parse(built)
		require.NoError(t, err)
		assert.Equal(t, "/v1.0/me", parsed.Path)

		query, err := url.ParseQuery(parsed.RawQuery)
		require.NoError(t, err)
		assert.Equal(t, "username,threads_biography", query.Get("fields"))
		assert.Equal(t, "10", query.Get("limit"))
		assert.Equal(t, "tok&en", query.Get("access_token"))
	})

	t.Run("TokenOnly", func(t *testing.T) {
		built := BuildURL("https://graph.example.com/", "12345/manage_reply", nil, "token")

		parsed, err := url.Parse(built)
		require.NoError(t, err)
		query, err := url.ParseQuery(parsed.RawQuery)
		require.NoError(t, err)
		assert.Equal(t, url.Values{"access_token": {"token"}}, query)
	})

	t.Run("NoToken", func(t *testing.T) {
		params := url.Values{}
		params.Set("fields", "status")

		built := BuildURL("https://graph.example.com/", "container-id", params, "")

		parsed, err := url.Parse(built)
		require.NoError(t, err)
		query, err := url.ParseQuery(parsed.RawQuery)
		require.NoError(t, err)
		assert.Empty(t, query.Get("access_token"))
		assert.Equal(t, "status", query.Get("fields"))
	})

	t.Run("NoParamsNoToken", func(t *testing.T) {
		assert.Equal(t, "https://graph.example.com/me", BuildURL("https://graph.example.com/", "me", nil, ""))
	})

	t.Run("TokenAppendedAfterParamBlock", func(t *testing.T) {
		params := url.Values{}
		params.Set("zzz", "1")

		built := BuildURL("https://graph.example.com/", "me", params, "token")

		// The token never gets merged into the parameter map, it always trails the encoded block
		assert.Equal(t, "https://graph.example.com/me?zzz=1&access_token=token", built)
	})
}
