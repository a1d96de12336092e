package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/skybi/threads-portal/internal/api/session"
)

var (
	cookieNameSession = "threads_session"
	sessionLifetime   = 24 * time.Hour
)

var contextValueSession = "session"

// MiddlewareRequireLogin makes sure that the requesting client holds an authenticated session.
// If no session is present but the bootstrap credential is still live, it is consumed into a fresh
// session. Otherwise the client is redirected to the index page, carrying the originally requested
// URL as the 'return_url' query parameter.
// The session object itself is injected into the request context.
func (service *Service) MiddlewareRequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ses, err := service.session(request)
		if err != nil {
			service.writer.WriteError(writer, http.StatusInternalServerError, "Error reading session: "+err.Error())
			return
		}
		if ses == nil {
			if credential, ok := service.Bootstrap.Take(); ok {
				ses, err = service.beginSession(request.Context(), writer, credential.AccessToken, credential.UserID)
				if err != nil {
					service.writer.WriteError(writer, http.StatusInternalServerError, "Error creating session: "+err.Error())
					return
				}
			}
		}
		if ses == nil {
			http.Redirect(writer, request, "/?return_url="+url.QueryEscape(requestURL(request)), http.StatusFound)
			return
		}

		// Delegate to the next handler
		request = request.WithContext(context.WithValue(request.Context(), contextValueSession, ses))
		next(writer, request)
	}
}

// sessionOf extracts the session object injected by MiddlewareRequireLogin
func sessionOf(request *http.Request) *session.Session {
	ses, _ := request.Context().Value(contextValueSession).(*session.Session)
	return ses
}

// session looks up the session referenced by the request's session cookie, if any
func (service *Service) session(request *http.Request) (*session.Session, error) {
	cookie, err := request.Cookie(cookieNameSession)
	if err != nil {
		return nil, nil
	}
	rawToken, ok := service.verifySessionCookie(cookie.Value)
	if !ok {
		return nil, nil
	}
	return service.Sessions.GetByRawToken(request.Context(), rawToken)
}

// beginSession creates a new session for the given credential pair and sets the session cookie
func (service *Service) beginSession(ctx context.Context, writer http.ResponseWriter, accessToken, userID string) (*session.Session, error) {
	expires := time.Now().Add(sessionLifetime).Unix()
	rawToken, err := service.Sessions.Create(ctx, accessToken, userID, expires)
	if err != nil {
		return nil, err
	}
	http.SetCookie(writer, &http.Cookie{
		Name:     cookieNameSession,
		Value:    service.signSessionCookie(rawToken),
		Path:     "/",
		MaxAge:   int(sessionLifetime.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return &session.Session{
		AccessToken: accessToken,
		UserID:      userID,
		Expires:     expires,
	}, nil
}

// endSession terminates the session referenced by the request's session cookie and unsets the cookie
func (service *Service) endSession(writer http.ResponseWriter, request *http.Request) error {
	cookie, err := request.Cookie(cookieNameSession)
	if err == nil {
		if rawToken, ok := service.verifySessionCookie(cookie.Value); ok {
			if err := service.Sessions.TerminateByRawToken(request.Context(), rawToken); err != nil {
				return err
			}
		}
	}
	http.SetCookie(writer, &http.Cookie{
		Name:     cookieNameSession,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Second),
		HttpOnly: true,
	})
	return nil
}

// signSessionCookie attaches an HMAC signature derived from the configured session secret
func (service *Service) signSessionCookie(rawToken string) string {
	return rawToken + "." + service.sessionCookieMAC(rawToken)
}

// verifySessionCookie splits a cookie value into token & signature and validates the signature
func (service *Service) verifySessionCookie(value string) (string, bool) {
	rawToken, mac, found := strings.Cut(value, ".")
	if !found {
		return "", false
	}
	if !hmac.Equal([]byte(mac), []byte(service.sessionCookieMAC(rawToken))) {
		return "", false
	}
	return rawToken, true
}

func (service *Service) sessionCookieMAC(rawToken string) string {
	mac := hmac.New(sha256.New, []byte(service.Config.SessionSecret))
	mac.Write([]byte(rawToken))
	return hex.EncodeToString(mac.Sum(nil))
}

// requestURL reassembles the full URL the client originally requested
func requestURL(request *http.Request) string {
	scheme := "https"
	if request.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + request.Host + request.RequestURI
}
