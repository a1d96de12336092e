package threads

import (
	"context"
	"net/url"
)

var profileFields = "username,threads_profile_picture_url,threads_biography"

var publishingLimitFields = "quota_usage,config,reply_quota_usage,reply_config"

// Profile fetches the profile of the logged-in user
func (client *Client) Profile(ctx context.Context, token string) (*Profile, error) {
	params := url.Values{}
	params.Set("fields", profileFields)

	profile := new(Profile)
	if err := client.getJSON(ctx, client.url("me", params, token), profile); err != nil {
		return nil, err
	}
	profile.ProfileURL = "https://www.threads.net/@" + profile.Username
	return profile, nil
}

// PublishingLimit fetches the current publishing quota usage of the given user
func (client *Client) PublishingLimit(ctx context.Context, token, userID string) (*PublishingLimit, error) {
	params := url.Values{}
	params.Set("fields", publishingLimitFields)

	var response struct {
		Data []PublishingLimit `json:"data"`
	}
	if err := client.getJSON(ctx, client.url(userID+"/threads_publishing_limit", params, token), &response); err != nil {
		return nil, err
	}
	if len(response.Data) == 0 {
		return &PublishingLimit{}, nil
	}
	return &response.Data[0], nil
}
