package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skybi/threads-portal/internal/threads"
)

// EndpointUpload handles the 'POST /upload' endpoint.
// It creates a media container out of the submitted form and answers with its ID.
func (service *Service) EndpointUpload(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)

	if err := request.ParseForm(); err != nil {
		service.writer.WriteError(writer, http.StatusBadRequest, "Error parsing the upload form: "+err.Error())
		return
	}
	kinds := request.PostForm["attachmentType[]"]
	urls := request.PostForm["attachmentUrl[]"]
	if len(kinds) != len(urls) {
		service.writer.WriteError(writer, http.StatusBadRequest, "Attachment types and URLs do not match up.")
		return
	}
	attachments := make([]threads.Attachment, len(kinds))
	for i := range kinds {
		attachments[i] = threads.Attachment{
			Kind: threads.AttachmentKind(kinds[i]),
			URL:  urls[i],
		}
	}

	draft := &threads.Draft{
		Text:         request.PostFormValue("text"),
		Attachments:  attachments,
		ReplyControl: request.PostFormValue("replyControl"),
		ReplyToID:    request.PostFormValue("replyToId"),
	}
	containerID, err := service.Client.CreateContainer(request.Context(), ses.AccessToken, ses.UserID, draft)
	if err != nil {
		service.writer.WriteRemoteError(writer, "Error during upload", err)
		return
	}
	service.writer.WriteJSON(writer, map[string]string{"id": containerID})
}

// EndpointPublish handles the 'POST /publish' endpoint.
// It publishes a previously created container and answers with the ID of the new post.
func (service *Service) EndpointPublish(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)

	postID, err := service.Client.Publish(request.Context(), ses.AccessToken, ses.UserID, request.PostFormValue("containerId"))
	if err != nil {
		service.writer.WriteRemoteError(writer, "Error during publishing", err)
		return
	}
	service.writer.WriteJSON(writer, map[string]string{"id": postID})
}

// EndpointContainerStatus handles the 'GET /container/status/{containerID}' endpoint.
// The Graph API response is passed through untouched; the publish page polls this endpoint.
func (service *Service) EndpointContainerStatus(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)

	status, err := service.Client.ContainerStatus(request.Context(), ses.AccessToken, chi.URLParam(request, "containerID"))
	if err != nil {
		service.writer.WriteRemoteError(writer, "Error querying container status", err)
		return
	}
	service.writer.WriteJSON(writer, status)
}

// EndpointManageReply handles the 'POST /manage_reply/{replyID}?hide={bool?}' endpoint
func (service *Service) EndpointManageReply(writer http.ResponseWriter, request *http.Request) {
	ses := sessionOf(request)

	var hide *bool
	if raw := request.URL.Query().Get("hide"); raw != "" {
		value := raw == "true"
		hide = &value
	}
	if err := service.Client.ManageReply(request.Context(), ses.AccessToken, chi.URLParam(request, "replyID"), hide); err != nil {
		service.writer.WriteRemoteError(writer, "Error while hiding reply", err)
		return
	}
	writer.WriteHeader(http.StatusOK)
}
