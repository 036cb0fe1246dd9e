package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/insightdelivered/card-statement-parser/internal/service"
	"github.com/rs/zerolog"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// Options configures the HTTP app.
type Options struct {
	Version      string
	ParseTimeout time.Duration
	BodyLimit    int // bytes; 0 keeps fiber's default
	CORSOrigins  string
	Logger       zerolog.Logger
}

// NewApp builds a fiber app with the statement routes and middleware.
func NewApp(svc *service.Service, opts Options) *fiber.App {
	cfg := fiber.Config{
		AppName:               "card-statement-parser",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	}
	if opts.BodyLimit > 0 {
		cfg.BodyLimit = opts.BodyLimit
	}
	if opts.CORSOrigins == "" {
		opts.CORSOrigins = "*"
	}

	app := fiber.New(cfg)
	app.Use(fiberrecover.New())
	app.Use(withRequestID(opts.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	NewHandler(svc, NewMetrics(), opts).RegisterRoutes(app)
	return app
}

// withRequestID tags every request with an ID, echoed in X-Request-ID and
// in the access log line.
func withRequestID(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDKey, id)
		c.Set(requestIDHeader, id)

		started := time.Now()
		err := c.Next()
		log.Debug().
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("took", time.Since(started)).
			Msg("request")
		return err
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	id, _ := c.Locals(requestIDKey).(string)
	return writeError(c, code, id, err.Error())
}
