package threads

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// AttachmentKind distinguishes the supported media attachment kinds
type AttachmentKind string

// The attachment kinds accepted by the upload form
const (
	AttachmentImage AttachmentKind = "Image"
	AttachmentVideo AttachmentKind = "Video"
)

// Attachment represents a single media attachment of a draft
type Attachment struct {
	Kind AttachmentKind
	URL  string
}

// Draft represents a not-yet-submitted post
type Draft struct {
	Text         string
	Attachments  []Attachment
	ReplyControl string
	ReplyToID    string
}

func (draft *Draft) params() url.Values {
	params := url.Values{}
	params.Set("text", draft.Text)
	params.Set("reply_control", draft.ReplyControl)
	params.Set("reply_to_id", draft.ReplyToID)
	return params
}

func applyAttachment(params url.Values, attachment Attachment) {
	switch attachment.Kind {
	case AttachmentImage:
		params.Set("media_type", MediaTypeImage)
		params.Set("image_url", attachment.URL)
	case AttachmentVideo:
		params.Set("media_type", MediaTypeVideo)
		params.Set("video_url", attachment.URL)
	}
}

// CreateContainer submits a draft to the container creation endpoint and returns the container ID.
// The media type is derived from the number of attachments: none results in a TEXT post, a single
// one in an IMAGE or VIDEO post and multiple ones in a CAROUSEL whose children are created first.
func (client *Client) CreateContainer(ctx context.Context, token, userID string, draft *Draft) (string, error) {
	params := draft.params()
	switch len(draft.Attachments) {
	case 0:
		params.Set("media_type", MediaTypeText)
	case 1:
		applyAttachment(params, draft.Attachments[0])
	default:
		ids := client.createCarouselItems(ctx, token, userID, draft.Attachments)
		params.Set("media_type", MediaTypeCarousel)
		params.Set("children", strings.Join(ids, ","))
	}

	var response idResponse
	if err := client.postJSON(ctx, client.url(userID+"/threads", params, token), &response); err != nil {
		return "", err
	}
	if response.ID == "" {
		return "", errors.New("the container creation response did not contain an ID")
	}
	return response.ID, nil
}

// createCarouselItems creates the child containers of a carousel concurrently.
// Items whose creation fails are dropped; the IDs of the surviving ones are returned in input order.
func (client *Client) createCarouselItems(ctx context.Context, token, userID string, attachments []Attachment) []string {
	results := make([]string, len(attachments))
	var wg sync.WaitGroup
	for i, attachment := range attachments {
		wg.Add(1)
		go func(i int, attachment Attachment) {
			defer wg.Done()
			params := url.Values{}
			params.Set("is_carousel_item", "true")
			applyAttachment(params, attachment)

			var response idResponse
			if err := client.postJSON(ctx, client.url(userID+"/threads", params, token), &response); err != nil {
				log.Warn().Err(err).Int("item", i).Msg("could not create carousel item")
				return
			}
			if response.ID == "" {
				log.Warn().Int("item", i).Msg("carousel item creation response did not contain an ID")
				return
			}
			results[i] = response.ID
		}(i, attachment)
	}
	wg.Wait()

	ids := make([]string, 0, len(results))
	for _, id := range results {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Publish publishes a previously created container and returns the ID of the new post
func (client *Client) Publish(ctx context.Context, token, userID, containerID string) (string, error) {
	params := url.Values{}
	params.Set("creation_id", containerID)

	var response idResponse
	if err := client.postJSON(ctx, client.url(userID+"/threads_publish", params, token), &response); err != nil {
		return "", err
	}
	if response.ID == "" {
		return "", errors.New("the publishing response did not contain an ID")
	}
	return response.ID, nil
}

// ContainerStatus fetches the processing status of a container.
// The response is passed through untouched as the page polls it directly.
func (client *Client) ContainerStatus(ctx context.Context, token, containerID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("fields", "status,error_message")

	var response json.RawMessage
	if err := client.getJSON(ctx, client.url(containerID, params, token), &response); err != nil {
		return nil, err
	}
	return response, nil
}

// ManageReply toggles the visibility of a reply.
// A nil hide value leaves the parameter out entirely.
func (client *Client) ManageReply(ctx context.Context, token, replyID string, hide *bool) error {
	form := url.Values{}
	if hide != nil {
		if *hide {
			form.Set("hide", "true")
		} else {
			form.Set("hide", "false")
		}
	}
	return client.postFormJSON(ctx, client.url(replyID+"/manage_reply", nil, token), form, nil)
}
