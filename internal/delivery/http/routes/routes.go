package routes

import (
	"net/http"

	"freelance-directory/internal/delivery/http/handler"
	"freelance-directory/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

const DirectoryFeedPath = "/ws/directory"

// Registry mounts every route the server exposes. Nil members are skipped.
type Registry struct {
	Health  *handler.HealthHandler
	GraphQL *handler.GraphQLHandler
	Feed    *ws.Handler
	Metrics http.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if r == nil || app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.GraphQL != nil {
		r.GraphQL.RegisterRoutes(app)
	}
	if r.Feed != nil {
		app.Get(DirectoryFeedPath, r.Feed.HandleDirectoryWS)
	}
	if r.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.Metrics))
	}
}
