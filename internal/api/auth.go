package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	cookieNameState     = "login_state"
	cookieLifetimeState = int(time.Hour.Seconds())
)

type loginFlowState struct {
	ID         string `json:"id"`
	Afterwards string `json:"afterwards"`
}

// EndpointIndex handles the 'GET /' endpoint.
// If no session is present but the bootstrap credential is still live, it is consumed
// right away and the client is sent to the account page.
func (service *Service) EndpointIndex(writer http.ResponseWriter, request *http.Request) {
	ses, err := service.session(request)
	if err != nil {
		log.Error().Err(err).Msg("could not read the session")
	}
	if ses == nil && service.Bootstrap.Live() {
		if credential, ok := service.Bootstrap.Take(); ok {
			if _, err := service.beginSession(request.Context(), writer, credential.AccessToken, credential.UserID); err != nil {
				log.Error().Err(err).Msg("could not create a session out of the bootstrap credential")
			} else {
				http.Redirect(writer, request, "/account", http.StatusFound)
				return
			}
		}
	}
	service.render(writer, "index", &indexPage{
		Title:     "Index",
		ReturnURL: request.URL.Query().Get("return_url"),
	})
}

// EndpointLogin handles the 'GET /login' endpoint.
// It redirects the client to the authorization dialog, preserving an optional
// 'return_url' query parameter through the login flow state cookie.
func (service *Service) EndpointLogin(writer http.ResponseWriter, request *http.Request) {
	state := loginFlowState{
		ID:         uuid.NewString(),
		Afterwards: request.URL.Query().Get("return_url"),
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		service.writer.WriteError(writer, http.StatusInternalServerError, "Error initiating login flow: "+err.Error())
		return
	}
	http.SetCookie(writer, &http.Cookie{
		Name:     cookieNameState,
		Value:    base64.StdEncoding.EncodeToString(stateJSON),
		MaxAge:   cookieLifetimeState,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(writer, request, service.Client.AuthCodeURL(state.ID), http.StatusFound)
}

// EndpointLoginCallback handles the 'GET /callback' endpoint
func (service *Service) EndpointLoginCallback(writer http.ResponseWriter, request *http.Request) {
	// Extract and unset the state cookie
	stateCookie, err := request.Cookie(cookieNameState)
	if err != nil {
		service.render(writer, "index", &indexPage{Error: "No login flow initiated."})
		return
	}
	stateJSON, err := base64.StdEncoding.DecodeString(stateCookie.Value)
	if err != nil {
		service.render(writer, "index", &indexPage{Error: "Invalid login flow state."})
		return
	}
	state := new(loginFlowState)
	if err := json.Unmarshal(stateJSON, state); err != nil {
		service.render(writer, "index", &indexPage{Error: "Invalid login flow state."})
		return
	}
	http.SetCookie(writer, &http.Cookie{
		Name:     cookieNameState,
		Value:    "",
		Expires:  time.Now().Add(-time.Second),
		HttpOnly: true,
	})

	// Validate the state ID
	if request.URL.Query().Get("state") != state.ID {
		service.render(writer, "index", &indexPage{Error: "Login flow states do not match."})
		return
	}

	// Exchange the authorization code and start the session
	accessToken, userID, err := service.Client.ExchangeCode(request.Context(), request.URL.Query().Get("code"))
	if err != nil {
		log.Error().Err(err).Msg("could not exchange the authorization code")
		service.render(writer, "index", &indexPage{Error: "There was an error with the request: " + err.Error()})
		return
	}
	if _, err := service.beginSession(request.Context(), writer, accessToken, userID); err != nil {
		service.render(writer, "index", &indexPage{Error: "There was an error with the request: " + err.Error()})
		return
	}

	afterwards := state.Afterwards
	if afterwards == "" {
		afterwards = "/account"
	}
	http.Redirect(writer, request, afterwards, http.StatusFound)
}

// EndpointLogout handles the 'GET /logout' endpoint
func (service *Service) EndpointLogout(writer http.ResponseWriter, request *http.Request) {
	if err := service.endSession(writer, request); err != nil {
		log.Error().Err(err).Msg("could not terminate the session")
	}
	service.render(writer, "index", &indexPage{Response: "Logout successful!"})
}
