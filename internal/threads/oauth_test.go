package threads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthCodeURL(t *testing.T) {
	client := newTestClient("https://graph.example.com")
	authURL := client.AuthCodeURL("state-1")

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "auth.example.com", parsed.Host)
	assert.Equal(t, "/oauth/authorize", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "app-id", query.Get("client_id"))
	assert.Equal(t, "state-1", query.Get("state"))
	assert.Equal(t, "threads_basic,threads_content_publish,threads_manage_insights,threads_manage_replies,threads_read_replies", query.Get("scope"))
}

func TestExchangeCode(t *testing.T) {
	t.Run("NumericUserID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, "/oauth/access_token", request.URL.Path)
			require.NoError(t, request.ParseForm())
			require.Equal(t, "authorization_code", request.PostForm.Get("grant_type"))
			require.Equal(t, "the-code", request.PostForm.Get("code"))
			require.Equal(t, "app-id", request.PostForm.Get("client_id"))

			writer.Header().Set("Content-Type", "application/json")
			writer.Write([]byte(`{"access_token":"the-token","token_type":"bearer","user_id":1234567890}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		accessToken, userID, err := client.ExchangeCode(context.Background(), "the-code")
		require.NoError(t, err)
		assert.Equal(t, "the-token", accessToken)
		assert.Equal(t, "1234567890", userID)
	})

	t.Run("MissingUserID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.Write([]byte(`{"access_token":"the-token","token_type":"bearer"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, _, err := client.ExchangeCode(context.Background(), "the-code")
		assert.Error(t, err)
	})

	t.Run("ExchangeFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			http.Error(writer, "bad code", http.StatusBadRequest)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, _, err := client.ExchangeCode(context.Background(), "expired")
		assert.Error(t, err)
	})
}
