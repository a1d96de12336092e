package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/skybi/threads-portal/internal/threads"
)

type indexPage struct {
	Title     string
	ReturnURL string
	Error     string
	Response  string
}

type accountPage struct {
	Title   string
	Profile *threads.Profile
}

type insightsPage struct {
	Title    string
	ThreadID string
	Metrics  []threads.Metric
	Since    string
	Until    string
}

type publishingLimitPage struct {
	Title string
	Limit *threads.PublishingLimit
}

type uploadPage struct {
	Title     string
	ReplyToID string
}

type publishPage struct {
	Title       string
	ContainerID string
}

type threadPage struct {
	Title    string
	ThreadID string
	Thread   *threads.Thread
}

type threadsPage struct {
	Title   string
	Threads []threads.Thread
	Paging  PagingLinks
}

type repliesPage struct {
	Title    string
	ThreadID string
	Username string
	Replies  []threads.Thread
	Paging   PagingLinks
	Manage   bool
}

// EndpointAccount handles the 'GET /account' endpoint
func (service *Service) EndpointAccount(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)

	profile, err := service.Client.Profile(request.Context(), ses.AccessToken)
	if err != nil {
		log.Error().Err(err).Msg("could not fetch the profile")
		profile = &threads.Profile{}
	}
	service.render(writer, "account", &accountPage{
		Title:   "Account",
		Profile: profile,
	})
}

// EndpointUserInsights handles the 'GET /userInsights?since={epoch?}&until={epoch?}' endpoint
func (service *Service) EndpointUserInsights(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)
	since := request.URL.Query().Get("since")
	until := request.URL.Query().Get("until")

	metrics, err := service.Client.UserInsights(request.Context(), ses.AccessToken, ses.UserID, since, until)
	if err != nil {
		log.Error().Err(err).Msg("could not fetch the user insights")
	}
	service.render(writer, "user_insights", &insightsPage{
		Title:   "User Insights",
		Metrics: metrics,
		Since:   since,
		Until:   until,
	})
}

// EndpointPublishingLimit handles the 'GET /publishingLimit' endpoint
func (service *Service) EndpointPublishingLimit(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)

	limit, err := service.Client.PublishingLimit(request.Context(), ses.AccessToken, ses.UserID)
	if err != nil {
		log.Error().Err(err).Msg("could not fetch the publishing limit")
		limit = &threads.PublishingLimit{}
	}
	service.render(writer, "publishing_limit", &publishingLimitPage{
		Title: "Publishing Limit",
		Limit: limit,
	})
}

// EndpointUploadForm handles the 'GET /upload?replyToId={id?}' endpoint
func (service *Service) EndpointUploadForm(writer http.ResponseWriter, request *http.Request) {
	replyToID := request.URL.Query().Get("replyToId")
	title := "Upload"
	if replyToID != "" {
		title = "Upload (Reply)"
	}
	service.render(writer, "upload", &uploadPage{
		Title:     title,
		ReplyToID: replyToID,
	})
}

// EndpointPublishPage handles the 'GET /publish/{containerID}' endpoint
func (service *Service) EndpointPublishPage(writer http.ResponseWriter, request *http.Request) {
	service.render(writer, "publish", &publishPage{
		Title:       "Publish",
		ContainerID: chi.URLParam(request, "containerID"),
	})
}

// EndpointThreads handles the 'GET /threads?before={cursor?}&after={cursor?}&limit={number?:10}' endpoint
func (service *Service) EndpointThreads(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)

	list, paging, err := service.Client.Threads(request.Context(), ses.AccessToken, ses.UserID, listOptions(request))
	if err != nil {
		log.Error().Err(err).Msg("could not fetch the threads")
	}
	service.render(writer, "threads", &threadsPage{
		Title:   "Threads",
		Threads: list,
		Paging:  pagingLinks(request, paging),
	})
}

// EndpointThread handles the 'GET /threads/{threadID}' endpoint
func (service *Service) EndpointThread(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)
	threadID := chi.URLParam(request, "threadID")

	thread, err := service.Client.Thread(request.Context(), ses.AccessToken, threadID)
	if err != nil {
		log.Error().Err(err).Msg("could not fetch the thread")
		thread = &threads.Thread{}
	}
	service.render(writer, "thread", &threadPage{
		Title:    "Thread",
		ThreadID: threadID,
		Thread:   thread,
	})
}

// EndpointThreadReplies handles the 'GET /threads/{threadID}/replies' endpoint
func (service *Service) EndpointThreadReplies(writer http.ResponseWriter, request *http.Request) {
	service.showReplies(writer, request, true)
}

// EndpointThreadConversation handles the 'GET /threads/{threadID}/conversation' endpoint
func (service *Service) EndpointThreadConversation(writer http.ResponseWriter, request *http.Request) {
	service.showReplies(writer, request, false)
}

// showReplies implements the replies & conversation listing pages.
// Top-level replies may be moderated; conversation entries may not.
func (service *Service) showReplies(writer http.ResponseWriter, request *http.Request, topLevel bool) {
	ses := sessionOf(request)
	threadID := chi.URLParam(request, "threadID")

	fetch := service.Client.Conversation
	if topLevel {
		fetch = service.Client.Replies
	}
	replies, paging, err := fetch(request.Context(), ses.AccessToken, threadID, listOptions(request))
	if err != nil {
		log.Error().Err(err).Msg("could not fetch the replies")
	}
	service.render(writer, "replies", &repliesPage{
		Title:    "Replies",
		ThreadID: threadID,
		Username: request.URL.Query().Get("username"),
		Replies:  replies,
		Paging:   pagingLinks(request, paging),
		Manage:   topLevel,
	})
}

// EndpointThreadInsights handles the 'GET /threads/{threadID}/insights?since={epoch?}&until={epoch?}' endpoint
func (service *Service) EndpointThreadInsights(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)
	threadID := chi.URLParam(request, "threadID")
	since := request.URL.Query().Get("since")
	until := request.URL.Query().Get("until")

	metrics, err := service.Client.ThreadInsights(request.Context(), ses.AccessToken, threadID, since, until)
	if err != nil {
		log.Error().Err(err).Msg("could not fetch the thread insights")
	}
	service.render(writer, "thread_insights", &insightsPage{
		Title:    "Thread Insights",
		ThreadID: threadID,
		Metrics:  metrics,
		Since:    since,
		Until:    until,
	})
}

// listOptions extracts the optional cursor & limit query parameters of a listing request
func listOptions(request *http.Request) threads.ListOptions {
	query := request.URL.Query()
	opts := threads.ListOptions{
		Before: query.Get("before"),
		After:  query.Get("after"),
	}
	if limit := query.Get("limit"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil {
			opts.Limit = parsed
		}
	}
	return opts
}
