package threads

// Media types accepted by the container creation endpoint
const (
	MediaTypeText     = "TEXT"
	MediaTypeImage    = "IMAGE"
	MediaTypeVideo    = "VIDEO"
	MediaTypeCarousel = "CAROUSEL"
)

// Profile represents the profile of the logged-in user
type Profile struct {
	Username          string `json:"username"`
	ProfilePictureURL string `json:"threads_profile_picture_url"`
	Biography         string `json:"threads_biography"`

	// ProfileURL is derived from the username and points at the public profile page
	ProfileURL string `json:"-"`
}

// Thread represents a single thread, reply or conversation entry.
// Which fields are populated depends on the field set the fetching call requested.
type Thread struct {
	ID            string `json:"id"`
	Text          string `json:"text,omitempty"`
	MediaType     string `json:"media_type,omitempty"`
	MediaURL      string `json:"media_url,omitempty"`
	Permalink     string `json:"permalink,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
	Username      string `json:"username,omitempty"`
	IsReply       bool   `json:"is_reply,omitempty"`
	ReplyAudience string `json:"reply_audience,omitempty"`
	HideStatus    string `json:"hide_status,omitempty"`
}

// Paging represents the opaque paging URLs the Graph API attaches to list responses
type Paging struct {
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// MetricValue represents a single value entry of an insights metric
type MetricValue struct {
	Value   int64  `json:"value"`
	EndTime string `json:"end_time,omitempty"`
}

// Metric represents a single insights metric as returned by the Graph API.
// Value is not part of the API response; it is populated by the flattening helpers.
type Metric struct {
	Name        string        `json:"name"`
	Period      string        `json:"period,omitempty"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	ID          string        `json:"id,omitempty"`
	Values      []MetricValue `json:"values,omitempty"`
	TotalValue  *MetricValue  `json:"total_value,omitempty"`

	Value *int64 `json:"value,omitempty"`
}

// QuotaConfig represents the quota configuration attached to a publishing limit response
type QuotaConfig struct {
	QuotaTotal    int64 `json:"quota_total"`
	QuotaDuration int64 `json:"quota_duration"`
}

// PublishingLimit represents the current publishing quota usage of the logged-in user
type PublishingLimit struct {
	QuotaUsage      *int64       `json:"quota_usage"`
	Config          *QuotaConfig `json:"config"`
	ReplyQuotaUsage *int64       `json:"reply_quota_usage"`
	ReplyConfig     *QuotaConfig `json:"reply_config"`
}
