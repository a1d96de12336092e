package threads

import (
	"context"
	"net/url"
	"strconv"
)

var (
	threadListFields   = "text,media_type,media_url,permalink,timestamp,reply_audience"
	threadDetailFields = "text,media_type,media_url,permalink,timestamp,is_reply,username,reply_audience"
	replyFields        = "text,media_type,media_url,permalink,timestamp,username,hide_status"
)

// ListOptions holds the optional cursor & page size parameters of the listing calls
type ListOptions struct {
	Before string
	After  string
	Limit  int
}

func (opts ListOptions) params(fields string) url.Values {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	params := url.Values{}
	params.Set("fields", fields)
	params.Set("limit", strconv.Itoa(limit))
	if opts.Before != "" {
		params.Set("before", opts.Before)
	}
	if opts.After != "" {
		params.Set("after", opts.After)
	}
	return params
}

// Threads fetches a page of the given user's threads
func (client *Client) Threads(ctx context.Context, token, userID string, opts ListOptions) ([]Thread, *Paging, error) {
	return client.list(ctx, token, userID+"/threads", opts.params(threadListFields))
}

// Thread fetches the details of a single thread
func (client *Client) Thread(ctx context.Context, token, threadID string) (*Thread, error) {
	params := url.Values{}
	params.Set("fields", threadDetailFields)

	thread := new(Thread)
	if err := client.getJSON(ctx, client.url(threadID, params, token), thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// Replies fetches a page of the top-level replies to the given thread
func (client *Client) Replies(ctx context.Context, token, threadID string, opts ListOptions) ([]Thread, *Paging, error) {
	return client.list(ctx, token, threadID+"/replies", opts.params(replyFields))
}

// Conversation fetches a page of the flattened conversation below the given thread
func (client *Client) Conversation(ctx context.Context, token, threadID string, opts ListOptions) ([]Thread, *Paging, error) {
	return client.list(ctx, token, threadID+"/conversation", opts.params(replyFields))
}

func (client *Client) list(ctx context.Context, token, path string, params url.Values) ([]Thread, *Paging, error) {
	var response struct {
		Data   []Thread `json:"data"`
		Paging *Paging  `json:"paging"`
	}
	if err := client.getJSON(ctx, client.url(path, params, token), &response); err != nil {
		return nil, nil, err
	}
	return response.Data, response.Paging, nil
}
