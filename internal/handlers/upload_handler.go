package handlers

import (
	"podhub/internal/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UploadHandler serves stored audio by its storage reference.
type UploadHandler struct {
	gateway *storage.Gateway
	log     *zap.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(gateway *storage.Gateway, log *zap.Logger) *UploadHandler {
	return &UploadHandler{gateway: gateway, log: log}
}

// RegisterRoutes registers the audio route.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/uploads/:key", h.HandleGetAudio)
}

// HandleGetAudio streams the blob stored under the key parameter.
func (h *UploadHandler) HandleGetAudio(c *fiber.Ctx) error {
	rc, contentType, err := h.gateway.Open(c.UserContext(), c.Params("key"))
	if err != nil {
		return respondError(c, h.log, "Audio not found", err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	// SendStream closes rc once the response is written.
	return c.SendStream(rc)
}
