package api

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/skybi/threads-portal/internal/api/schema"
	"github.com/skybi/threads-portal/internal/api/session"
	"github.com/skybi/threads-portal/internal/bootstrap"
	"github.com/skybi/threads-portal/internal/config"
	"github.com/skybi/threads-portal/internal/threads"
)

// The process serves HTTPS using a local certificate & key pair at fixed relative paths
const (
	tlsCertFile = "threads-sample.meta.pem"
	tlsKeyFile  = "threads-sample.meta-key.pem"
)

// Service represents the web application service
type Service struct {
	server *http.Server

	Config    *config.Config
	Client    *threads.Client
	Sessions  session.Storage
	Bootstrap *bootstrap.Pending

	writer    *schema.Writer
	templates *template.Template
}

// Startup starts up the web application
func (service *Service) Startup() error {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("a remote Graph API call failed")
		},
	}

	// Parse the page templates
	if err := service.loadTemplates(); err != nil {
		return err
	}

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://*", "https://*"},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteError(writer, http.StatusNotFound, "Resource not found.")
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteError(writer, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	// Register the authentication endpoints
	router.Get("/", service.EndpointIndex)
	router.Get("/login", service.EndpointLogin)
	router.Get("/callback", service.EndpointLoginCallback)
	router.Get("/logout", service.EndpointLogout)

	// Register the page & action endpoints; every one of them sits behind the login gate
	router.Get("/account", withMiddlewares(service.EndpointAccount, service.MiddlewareRequireLogin))
	router.Get("/userInsights", withMiddlewares(service.EndpointUserInsights, service.MiddlewareRequireLogin))
	router.Get("/publishingLimit", withMiddlewares(service.EndpointPublishingLimit, service.MiddlewareRequireLogin))
	router.Get("/upload", withMiddlewares(service.EndpointUploadForm, service.MiddlewareRequireLogin))
	router.Post("/upload", withMiddlewares(service.EndpointUpload, service.MiddlewareRequireLogin))
	router.Get("/publish/{containerID}", withMiddlewares(service.EndpointPublishPage, service.MiddlewareRequireLogin))
	router.Post("/publish", withMiddlewares(service.EndpointPublish, service.MiddlewareRequireLogin))
	router.Get("/container/status/{containerID}", withMiddlewares(service.EndpointContainerStatus, service.MiddlewareRequireLogin))
	router.Get("/threads", withMiddlewares(service.EndpointThreads, service.MiddlewareRequireLogin))
	router.Get("/threads/{threadID}", withMiddlewares(service.EndpointThread, service.MiddlewareRequireLogin))
	router.Get("/threads/{threadID}/replies", withMiddlewares(service.EndpointThreadReplies, service.MiddlewareRequireLogin))
	router.Get("/threads/{threadID}/conversation", withMiddlewares(service.EndpointThreadConversation, service.MiddlewareRequireLogin))
	router.Get("/threads/{threadID}/insights", withMiddlewares(service.EndpointThreadInsights, service.MiddlewareRequireLogin))
	router.Post("/manage_reply/{replyID}", withMiddlewares(service.EndpointManageReply, service.MiddlewareRequireLogin))

	// Start up the server
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", service.Config.Host, service.Config.Port),
		Handler: router,
	}
	service.server = server
	return server.ListenAndServeTLS(tlsCertFile, tlsKeyFile)
}

// Shutdown shuts down the web application
func (service *Service) Shutdown() {
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}

func withMiddlewares(end http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	final := end
	for i := len(middlewares); i > 0; i-- {
		final = middlewares[i-1](final)
	}
	return final
}
