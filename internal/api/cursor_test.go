package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorURL(t *testing.T) {
	t.Run("PreservesInboundParams", func(t *testing.T) {
		query, err := url.ParseQuery("username=bob&limit=5")
		require.NoError(t, err)

		rebuilt, err := CursorURL("/threads/1/replies", query, "https://graph.threads.net/v1.0/1/replies?limit=5&after=XYZ&fields=text")
		require.NoError(t, err)

		parsed, err := url.Parse(rebuilt)
		require.NoError(t, err)
		assert.Equal(t, "/threads/1/replies", parsed.Path)

		rebuiltQuery := parsed.Query()
		assert.Equal(t, "bob", rebuiltQuery.Get("username"))
		assert.Equal(t, "5", rebuiltQuery.Get("limit"))
		assert.Equal(t, "XYZ", rebuiltQuery.Get("after"))
		assert.False(t, rebuiltQuery.Has("before"))
		// The remote API's own parameters never leak through
		assert.False(t, rebuiltQuery.Has("fields"))
	})

	t.Run("OverwritesCursorParams", func(t *testing.T) {
		query, err := url.ParseQuery("after=old&limit=5")
		require.NoError(t, err)

		rebuilt, err := CursorURL("/threads", query, "https://graph.threads.net/v1.0/1/threads?after=new")
		require.NoError(t, err)

		parsed, err := url.Parse(rebuilt)
		require.NoError(t, err)
		rebuiltQuery := parsed.Query()
		assert.Equal(t, "new", rebuiltQuery.Get("after"))
		// Inbound parameters the opaque URL does not mention stay untouched
		assert.Equal(t, "5", rebuiltQuery.Get("limit"))
	})

	t.Run("EmptyInboundQuery", func(t *testing.T) {
		rebuilt, err := CursorURL("/threads", url.Values{}, "https://graph.threads.net/v1.0/1/threads?before=ABC&limit=10")
		require.NoError(t, err)

		parsed, err := url.Parse(rebuilt)
		require.NoError(t, err)
		rebuiltQuery := parsed.Query()
		assert.Equal(t, "ABC", rebuiltQuery.Get("before"))
		assert.Equal(t, "10", rebuiltQuery.Get("limit"))
	})
}
