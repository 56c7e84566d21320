package documents

import (
	"errors"

	"xml-compare-api/core/logger"
	"xml-compare-api/core/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stored documents.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the document routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/documents")
	group.Get("/", h.HandleList)
	group.Put("/*", h.HandleUpload)
	group.Get("/*", h.HandleGet)
	group.Delete("/*", h.HandleDelete)
}

// HandleUpload stores an XML document.
// @Summary Upload Document
// @Description Store the raw XML request body as a document. The document is then addressable as store://{name} in URL comparisons.
// @Tags documents
// @Accept xml
// @Produce json
// @Param name path string true "Document Name"
// @Success 200 {object} map[string]string "Stored"
// @Failure 400 {object} map[string]string "Invalid Name or Content"
// @Failure 500 {object} map[string]string "Storage Error"
// @Router /documents/{name} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	name := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Upload(c.Context(), name, string(c.Body())); err != nil {
		l.Warn("Document upload failed", zap.String("name", name), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status": "stored",
		"name":   name,
		"url":    "store://" + name,
	})
}

// HandleGet returns the raw text of a stored document.
// @Summary Get Document
// @Description Fetch the raw XML of a stored document.
// @Tags documents
// @Accept json
// @Produce xml
// @Param name path string true "Document Name"
// @Success 200 {string} string "Document Text"
// @Failure 400 {object} map[string]string "Invalid Name"
// @Failure 500 {object} map[string]string "Storage Error"
// @Router /documents/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	name := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	text, err := h.service.Get(c.Context(), name)
	if err != nil {
		l.Warn("Document fetch failed", zap.String("name", name), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	return c.SendString(text)
}

// HandleList lists stored documents.
// @Summary List Documents
// @Description List all stored documents with size and modification time.
// @Tags documents
// @Accept json
// @Produce json
// @Success 200 {array} Info "Documents"
// @Failure 500 {object} map[string]string "Storage Error"
// @Router /documents [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	infos, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Document listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(infos)
}

// HandleDelete removes a stored document.
// @Summary Delete Document
// @Description Remove a stored document from the bucket.
// @Tags documents
// @Accept json
// @Produce json
// @Param name path string true "Document Name"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} map[string]string "Invalid Name"
// @Failure 500 {object} map[string]string "Storage Error"
// @Router /documents/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	name := c.Params("*")
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), name); err != nil {
		l.Warn("Document deletion failed", zap.String("name", name), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "deleted", "name": name})
}

// statusFor maps service errors to HTTP statuses.
func statusFor(err error) int {
	var validationErr *validate.ValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
