package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/skybi/threads-portal/internal/bootstrap"
	"github.com/skybi/threads-portal/internal/threads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withChiURLParam(request *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx))
}

func TestEndpointUpload(t *testing.T) {
	t.Run("TextOnly", func(t *testing.T) {
		var createQuery url.Values
		backend := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, "/boot-user/threads", request.URL.Path)
			createQuery = request.URL.Query()
			fmt.Fprint(writer, `{"id":"C1"}`)
		}))
		defer backend.Close()

		service := newTestService(t, bootstrap.NewPending("boot-token", "boot-user"))
		service.Client = threads.NewClient(threads.Options{
			BaseURL:              backend.URL + "/",
			AuthorizationBaseURL: "https://auth.example.com/",
		})
		handler := withMiddlewares(service.EndpointUpload, service.MiddlewareRequireLogin)

		form := url.Values{}
		form.Set("text", "hi")
		form.Set("replyControl", "everyone")
		request := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		recorder := httptest.NewRecorder()
		handler(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "C1", response["id"])

		assert.Equal(t, threads.MediaTypeText, createQuery.Get("media_type"))
		assert.Equal(t, "hi", createQuery.Get("text"))
		assert.False(t, createQuery.Has("children"))
	})

	t.Run("MismatchedAttachmentLists", func(t *testing.T) {
		service := newTestService(t, bootstrap.NewPending("boot-token", "boot-user"))
		handler := withMiddlewares(service.EndpointUpload, service.MiddlewareRequireLogin)

		form := url.Values{}
		form.Set("text", "hi")
		form.Add("attachmentType[]", "Image")
		request := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		recorder := httptest.NewRecorder()
		handler(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "do not match up")
	})

	t.Run("RemoteFailure", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(writer, "not json")
		}))
		defer backend.Close()

		service := newTestService(t, bootstrap.NewPending("boot-token", "boot-user"))
		service.Client = threads.NewClient(threads.Options{
			BaseURL:              backend.URL + "/",
			AuthorizationBaseURL: "https://auth.example.com/",
		})
		handler := withMiddlewares(service.EndpointUpload, service.MiddlewareRequireLogin)

		request := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("text=hi"))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		recorder := httptest.NewRecorder()
		handler(recorder, request)

		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		var response struct {
			Error   bool   `json:"error"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.True(t, response.Error)
		assert.Contains(t, response.Message, "Error during upload")
	})
}

func TestEndpointManageReply(t *testing.T) {
	var formHide string
	backend := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/reply-1/manage_reply", request.URL.Path)
		require.NoError(t, request.ParseForm())
		formHide = request.PostForm.Get("hide")
		fmt.Fprint(writer, `{"success":true}`)
	}))
	defer backend.Close()

	service := newTestService(t, bootstrap.NewPending("boot-token", "boot-user"))
	service.Client = threads.NewClient(threads.Options{
		BaseURL:              backend.URL + "/",
		AuthorizationBaseURL: "https://auth.example.com/",
	})
	handler := withMiddlewares(service.EndpointManageReply, service.MiddlewareRequireLogin)

	request := httptest.NewRequest(http.MethodPost, "/manage_reply/reply-1?hide=true", nil)
	request = withChiURLParam(request, "replyID", "reply-1")
	recorder := httptest.NewRecorder()
	handler(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
	assert.Equal(t, "true", formHide)
}
