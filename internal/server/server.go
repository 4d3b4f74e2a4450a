package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/orgball2608/event-poster-api/internal/admin"
	"github.com/orgball2608/event-poster-api/internal/photo"
	"github.com/orgball2608/event-poster-api/internal/posters"
	"github.com/orgball2608/event-poster-api/internal/ratelimit"
	"github.com/orgball2608/event-poster-api/internal/stats"
	"github.com/orgball2608/event-poster-api/internal/stories"
	"github.com/orgball2608/event-poster-api/internal/uploader"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
	"github.com/orgball2608/event-poster-api/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Logger  logger.Logger
	Pool    *pgxpool.Pool
	Posters *posters.Reader
	Stories *stories.Manager
	Stats   *stats.Reader
	Photos  *photo.Resolver
	Uploads *uploader.Uploader
	Gate    *admin.Gate
}

// Server is the HTTP surface: thin request/response mapping over the
// service layer. The API is CORS-open to the web client.
type Server struct {
	echo    *echo.Echo
	logger  logger.Logger
	pool    *pgxpool.Pool
	posters *posters.Reader
	stories *stories.Manager
	stats   *stats.Reader
	photos  *photo.Resolver
	uploads *uploader.Uploader
	gate    *admin.Gate
	limiter ratelimit.Limiter
}

func New(opts Opts) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:    e,
		logger:  opts.Logger,
		pool:    opts.Pool,
		posters: opts.Posters,
		stories: opts.Stories,
		stats:   opts.Stats,
		photos:  opts.Photos,
		uploads: opts.Uploads,
		gate:    opts.Gate,
		limiter: ratelimit.NewInMemoryLimiter(10, time.Minute, 5),
	}
	s.registerRoutes()

	return s
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// respondError maps the error taxonomy onto HTTP statuses. Unmatched
// errors become a 500 with the full message passed through.
func (s *Server) respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	detail := err.Error()

	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
		detail = apperrors.GetMessage(err)
	case apperrors.IsInvalidInput(err):
		status = http.StatusBadRequest
		detail = apperrors.GetMessage(err)
	case apperrors.IsForbidden(err):
		status = http.StatusForbidden
		detail = apperrors.GetMessage(err)
	case apperrors.IsServiceUnavailable(err):
		status = http.StatusServiceUnavailable
		detail = apperrors.GetMessage(err)
	default:
		s.logger.Error("Request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	return c.JSON(status, echo.Map{"detail": detail})
}

// rateLimit throttles mutating endpoints per client IP.
func (s *Server) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.limiter.Allow(c.RealIP()) {
			return c.JSON(http.StatusTooManyRequests, echo.Map{"detail": "too many requests"})
		}
		return next(c)
	}
}

// The caller identity arrives as user_id: a query parameter on JSON
// endpoints, a form field on multipart/form endpoints.
func adminIDFromQuery(c echo.Context) (int64, error) {
	return parseAdminID(c.QueryParam("user_id"))
}

func adminIDFromForm(c echo.Context) (int64, error) {
	return parseAdminID(c.FormValue("user_id"))
}

func parseAdminID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "user_id must be an integer")
	}
	return id, nil
}
