package threads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/oauth2"
)

// AuthCodeURL returns the URL of the interactive authorization dialog the user is
// redirected to in order to grant the requested scopes
func (client *Client) AuthCodeURL(state string) string {
	return client.oauth.AuthCodeURL(state)
}

// ExchangeCode exchanges an authorization code for an access token and the corresponding user ID
func (client *Client) ExchangeCode(ctx context.Context, code string) (string, string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, client.httpClient)
	token, err := client.oauth.Exchange(ctx, code)
	if err != nil {
		return "", "", fmt.Errorf("could not exchange the authorization code: %w", err)
	}

	// The token response carries the user ID as an extra field, either as a number or a string
	var userID string
	switch id := token.Extra("user_id").(type) {
	case string:
		userID = id
	case float64:
		userID = strconv.FormatInt(int64(id), 10)
	case json.Number:
		userID = id.String()
	default:
		return "", "", errors.New("the token response did not contain a user ID")
	}

	return token.AccessToken, userID, nil
}
