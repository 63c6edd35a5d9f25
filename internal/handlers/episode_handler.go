package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"podhub/internal/middleware"
	"podhub/internal/models"
	"podhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EpisodeHandler handles HTTP requests for episodes.
type EpisodeHandler struct {
	service  *services.EpisodeService
	validate *validator.Validate
	log      *zap.Logger
}

// NewEpisodeHandler creates a new EpisodeHandler.
func NewEpisodeHandler(service *services.EpisodeService, validate *validator.Validate, log *zap.Logger) *EpisodeHandler {
	return &EpisodeHandler{
		service:  service,
		validate: validate,
		log:      log,
	}
}

// RegisterRoutes registers the episode routes, including those nested under
// a show.
func (h *EpisodeHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/shows/:id/episodes", authRequired, h.HandleCreateEpisode)
	router.Get("/shows/:id/episodes", h.HandleGetShowEpisodes)

	episodeRoutes := router.Group("/episodes")
	episodeRoutes.Get("/", h.HandleGetEpisodes)
	episodeRoutes.Get("/:id", h.HandleGetEpisodeByID)
}

// HandleCreateEpisode accepts a multipart upload with title, description
// and audio_file, and attaches the new episode to the show.
func (h *EpisodeHandler) HandleCreateEpisode(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := services.RequireRole(user, models.RolePodcaster); err != nil {
		return respondError(c, h.log, "Only podcasters can upload episodes", err)
	}

	var input models.EpisodeInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		return respondError(c, h.log, "Audio file is required",
			fmt.Errorf("%w: audio_file is required", services.ErrValidation))
	}
	data, err := readUpload(fileHeader)
	if err != nil {
		return respondError(c, h.log, "Could not read audio file", err)
	}

	episode, err := h.service.PublishEpisode(c.UserContext(), user, c.Params("id"), input, fileHeader.Filename, data)
	if err != nil {
		return respondError(c, h.log, "Could not create episode", err)
	}
	return c.Status(fiber.StatusCreated).JSON(episode)
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: audio file is empty", services.ErrValidation)
	}
	return data, nil
}

// HandleGetShowEpisodes lists the episodes of a show.
func (h *EpisodeHandler) HandleGetShowEpisodes(c *fiber.Ctx) error {
	episodes, err := h.service.ListEpisodes(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, "Could not retrieve episodes", err)
	}
	return c.JSON(episodes)
}

// HandleGetEpisodes lists all episodes.
func (h *EpisodeHandler) HandleGetEpisodes(c *fiber.Ctx) error {
	episodes, err := h.service.ListAllEpisodes(c.UserContext())
	if err != nil {
		return respondError(c, h.log, "Could not retrieve episodes", err)
	}
	return c.JSON(episodes)
}

// HandleGetEpisodeByID retrieves a single episode.
func (h *EpisodeHandler) HandleGetEpisodeByID(c *fiber.Ctx) error {
	episode, err := h.service.GetEpisode(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, "Episode not found", err)
	}
	return c.JSON(episode)
}
