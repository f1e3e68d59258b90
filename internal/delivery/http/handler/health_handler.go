package handler

import (
	"freelance-directory/internal/pkg/response"
	"freelance-directory/internal/repository"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	appName string
	env     string
	stats   func() repository.Stats
}

type healthResponse struct {
	App         string            `json:"app"`
	Environment string            `json:"environment"`
	Stats       *repository.Stats `json:"stats,omitempty"`
}

func NewHealthHandler(appName, env string, stats func() repository.Stats) *HealthHandler {
	return &HealthHandler{appName: appName, env: env, stats: stats}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	res := healthResponse{App: h.appName, Environment: h.env}
	if h.stats != nil {
		s := h.stats()
		res.Stats = &s
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
