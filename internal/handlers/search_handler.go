package handlers

import (
	"podhub/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SearchHandler serves substring search over shows and episodes.
type SearchHandler struct {
	service *services.SearchService
	log     *zap.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(service *services.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{service: service, log: log}
}

// RegisterRoutes registers the search route.
func (h *SearchHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/search", h.HandleSearch)
}

// HandleSearch matches the q parameter against shows and episodes.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	result, err := h.service.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, h.log, "Search failed", err)
	}
	return c.JSON(result)
}
