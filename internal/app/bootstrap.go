package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"freelance-directory/internal/config"
	"freelance-directory/internal/delivery/http/handler"
	"freelance-directory/internal/delivery/http/middleware"
	"freelance-directory/internal/delivery/http/routes"
	"freelance-directory/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)

	registry := &routes.Registry{
		Health:  handler.NewHealthHandler(c.Config.App.AppName, c.Config.App.Environment, c.Directory.Stats),
		GraphQL: handler.NewGraphQLHandler(c.Executor, c.Config.GraphQL.Path, c.Config.GraphQL.Playground),
		Feed:    ws.NewHandler(c.Hub, c.Logger),
		Metrics: c.Metrics.Handler(),
	}
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the Fiber app on top of it. The
// returned cleanup releases the container.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(c.Metrics.Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
