package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/internhive/internhive/core"
	"github.com/internhive/internhive/core/admin"
	"github.com/internhive/internhive/core/attendance"
	"github.com/internhive/internhive/core/auth"
	"github.com/internhive/internhive/core/document"
	"github.com/internhive/internhive/core/feedback"
	"github.com/internhive/internhive/core/intern"
	"github.com/internhive/internhive/core/news"
	"github.com/internhive/internhive/core/store"
	"github.com/internhive/internhive/core/task"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Logger         core.Logger
		SignalShutdown func()

		Store         *store.Store
		AuthSvc       *auth.Service
		InternSvc     *intern.Service
		AdminSvc      *admin.Service
		TaskSvc       *task.Service
		AttendanceSvc *attendance.Service
		FeedbackSvc   *feedback.Service
		DocumentSvc   *document.Service
		NewsSvc       *news.Service
		NewsRotator   *news.Rotator
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.SignalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)
	s.app.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerAccountAPI(v1, jwt, s.opts)
	registerInternAPI(v1, jwt, s.opts)
	registerTaskAPI(v1, jwt, s.opts)
	registerAttendanceAPI(v1, jwt, s.opts)
	registerFeedbackAPI(v1, jwt, s.opts)
	registerDocumentAPI(v1, jwt, s.opts)
	registerNewsAPI(v1, jwt, s.opts)
	registerStatsAPI(v1, jwt, s.opts)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to InternHive API!")
}
