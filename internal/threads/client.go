package threads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// DefaultQueryLimit is the page size used by list calls whenever the caller does not specify one
const DefaultQueryLimit = 10

// Scopes contains the scopes requested during the authorization flow
var Scopes = []string{
	"threads_basic",
	"threads_content_publish",
	"threads_manage_insights",
	"threads_manage_replies",
	"threads_read_replies",
}

// Client implements the calls against the Threads Graph API
type Client struct {
	baseURL    string
	httpClient *http.Client
	oauth      *oauth2.Config
}

// Options holds the values needed to construct a Client
type Options struct {
	// BaseURL is the Graph API base URL, including a trailing slash
	BaseURL string
	// AuthorizationBaseURL is the base URL of the interactive authorization dialog, including a trailing slash
	AuthorizationBaseURL string
	AppID                string
	APISecret            string
	RedirectURI          string
	// HTTPClient optionally overrides the HTTP client used for all calls
	HTTPClient *http.Client
}

// NewClient creates a new Graph API client
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		oauth: &oauth2.Config{
			ClientID:     opts.AppID,
			ClientSecret: opts.APISecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   opts.AuthorizationBaseURL + "oauth/authorize",
				TokenURL:  opts.BaseURL + "oauth/access_token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
			RedirectURL: opts.RedirectURI,
			// The authorization dialog expects a single comma-joined scope value
			Scopes: []string{strings.Join(Scopes, ",")},
		},
	}
}

// BuildURL constructs a fully-qualified Graph API request URL.
// The access token is appended to the already encoded parameter block rather than being
// merged into the parameter map.
func BuildURL(baseURL, path string, params url.Values, token string) string {
	requestURL := baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}
	if token != "" {
		separator := "&"
		if len(params) == 0 {
			separator = "?"
		}
		requestURL += separator + "access_token=" + url.QueryEscape(token)
	}
	return requestURL
}

func (client *Client) url(path string, params url.Values, token string) string {
	return BuildURL(client.baseURL, path, params, token)
}

// getJSON issues a GET request and decodes the JSON response body into target.
// Transport and decoding failures are collapsed into a single failure class.
func (client *Client) getJSON(ctx context.Context, requestURL string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	return client.do(request, target)
}

// postJSON issues a POST request without a body and decodes the JSON response body into target
func (client *Client) postJSON(ctx context.Context, requestURL string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, nil)
	if err != nil {
		return err
	}
	return client.do(request, target)
}

// postFormJSON issues a POST request carrying a form-encoded body and decodes the JSON response body into target
func (client *Client) postFormJSON(ctx context.Context, requestURL string, form url.Values, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return client.do(request, target)
}

func (client *Client) do(request *http.Request, target any) error {
	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("graph api request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("graph api request failed: %w", err)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("graph api request failed: %w", err)
	}
	return nil
}

// idResponse represents the minimal response shape of the container creation & publishing endpoints
type idResponse struct {
	ID string `json:"id"`
}
