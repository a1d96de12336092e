package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultGraphAPIBaseURL is the unversioned Threads Graph API base URL.
// A version path segment is appended when GRAPH_API_VERSION is set.
const DefaultGraphAPIBaseURL = "https://graph.threads.net/"

// AuthorizationBaseURL is the base URL of the interactive authorization dialog
const AuthorizationBaseURL = "https://www.threads.net/"

// Config represents the application configuration structure
type Config struct {
	Host               string `envconfig:"HOST"`
	Port               int    `envconfig:"PORT" default:"5000"`
	RedirectURI        string `envconfig:"REDIRECT_URI"`
	AppID              string `envconfig:"APP_ID"`
	APISecret          string `envconfig:"API_SECRET"`
	GraphAPIVersion    string `envconfig:"GRAPH_API_VERSION"`
	InitialAccessToken string `envconfig:"INITIAL_ACCESS_TOKEN"`
	InitialUserID      string `envconfig:"INITIAL_USER_ID"`
	SessionSecret      string `envconfig:"SESSION_SECRET"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("", config); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) validate() error {
	if config.AppID == "" {
		return errors.New("missing required configuration value 'APP_ID'")
	}
	if config.APISecret == "" {
		return errors.New("missing required configuration value 'API_SECRET'")
	}
	if config.RedirectURI == "" {
		return errors.New("missing required configuration value 'REDIRECT_URI'")
	}
	if config.SessionSecret == "" {
		return errors.New("missing required configuration value 'SESSION_SECRET'")
	}
	return nil
}

// GraphAPIBaseURL assembles the Graph API base URL, honoring an optionally configured API version
func (config *Config) GraphAPIBaseURL() string {
	if config.GraphAPIVersion != "" {
		return DefaultGraphAPIBaseURL + config.GraphAPIVersion + "/"
	}
	return DefaultGraphAPIBaseURL
}
