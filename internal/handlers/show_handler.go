package handlers

import (
	"podhub/internal/middleware"
	"podhub/internal/models"
	"podhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShowHandler handles HTTP requests for shows.
type ShowHandler struct {
	service  *services.ShowService
	validate *validator.Validate
	log      *zap.Logger
}

// NewShowHandler creates a new ShowHandler.
func NewShowHandler(service *services.ShowService, validate *validator.Validate, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service:  service,
		validate: validate,
		log:      log,
	}
}

// RegisterRoutes registers the show routes. /shows/my must precede
// /shows/:id.
func (h *ShowHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	showRoutes := router.Group("/shows")
	showRoutes.Post("/", authRequired, h.HandleCreateShow)
	showRoutes.Get("/", h.HandleGetShows)
	showRoutes.Get("/my", authRequired, h.HandleGetMyShows)
	showRoutes.Get("/:id", h.HandleGetShowByID)
}

// HandleCreateShow creates a show owned by the caller.
func (h *ShowHandler) HandleCreateShow(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	// Role is checked before the payload so listeners always get 403.
	if err := services.RequireRole(user, models.RolePodcaster); err != nil {
		return respondError(c, h.log, "Only podcasters can create shows", err)
	}

	var input models.ShowInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	show, err := h.service.CreateShow(c.UserContext(), user, input)
	if err != nil {
		return respondError(c, h.log, "Could not create show", err)
	}
	return c.Status(fiber.StatusCreated).JSON(show)
}

// HandleGetShows lists all shows.
func (h *ShowHandler) HandleGetShows(c *fiber.Ctx) error {
	shows, err := h.service.ListShows(c.UserContext())
	if err != nil {
		return respondError(c, h.log, "Could not retrieve shows", err)
	}
	return c.JSON(shows)
}

// HandleGetMyShows lists the caller's shows.
func (h *ShowHandler) HandleGetMyShows(c *fiber.Ctx) error {
	shows, err := h.service.ListOwnedShows(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return respondError(c, h.log, "Only podcasters can view their shows", err)
	}
	return c.JSON(shows)
}

// HandleGetShowByID retrieves a single show.
func (h *ShowHandler) HandleGetShowByID(c *fiber.Ctx) error {
	show, err := h.service.GetShow(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, "Show not found", err)
	}
	return c.JSON(show)
}
