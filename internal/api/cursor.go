package api

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/skybi/threads-portal/internal/threads"
)

// cursorParams are the only parameters copied over from an opaque Graph API paging URL
var cursorParams = []string{"limit", "before", "after"}

// PagingLinks holds the same-origin pagination URLs handed to a listing page
type PagingLinks struct {
	NextURL     string
	PreviousURL string
}

// CursorURL translates an opaque Graph API paging URL into a same-origin URL.
// The current route path and all of the inbound request's query parameters are kept verbatim;
// only limit, before and after are overwritten from the opaque URL, each one only if present there.
func CursorURL(routePath string, query url.Values, pagingURL string) (string, error) {
	parsed, err := url.Parse(pagingURL)
	if err != nil {
		return "", err
	}

	rebuilt := url.Values{}
	for key, values := range query {
		rebuilt[key] = values
	}
	remote := parsed.Query()
	for _, key := range cursorParams {
		if value := remote.Get(key); value != "" {
			rebuilt.Set(key, value)
		}
	}

	return routePath + "?" + rebuilt.Encode(), nil
}

// pagingLinks rebuilds the paging URLs of a list response against the inbound request.
// A nil paging value or an unparseable paging URL results in the corresponding link staying empty.
func pagingLinks(request *http.Request, paging *threads.Paging) PagingLinks {
	links := PagingLinks{}
	if paging == nil {
		return links
	}
	if paging.Next != "" {
		next, err := CursorURL(request.URL.Path, request.URL.Query(), paging.Next)
		if err != nil {
			log.Error().Err(err).Msg("could not rebuild the 'next' paging URL")
		} else {
			links.NextURL = next
		}
	}
	if paging.Previous != "" {
		previous, err := CursorURL(request.URL.Path, request.URL.Query(), paging.Previous)
		if err != nil {
			log.Error().Err(err).Msg("could not rebuild the 'previous' paging URL")
		} else {
			links.PreviousURL = previous
		}
	}
	return links
}
