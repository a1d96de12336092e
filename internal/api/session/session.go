package session

// Session represents an authenticated browser session.
// A session is identified by its (hashed) token and carries the Graph API access token
// and user ID obtained through the OAuth flow or the bootstrap credential.
type Session struct {
	Token       string
	AccessToken string
	UserID      string
	Expires     int64
}
