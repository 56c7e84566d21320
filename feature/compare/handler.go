package compare

import (
	"errors"
	"strconv"

	"xml-compare-api/core/logger"
	"xml-compare-api/core/source"
	"xml-compare-api/core/validate"
	"xml-compare-api/core/xmldiff"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Post("/xml", h.HandleCompareXML)
	group.Post("/xml/batch", h.HandleCompareXMLBatch)
	group.Post("/url", h.HandleCompareURL)
	group.Post("/url/batch", h.HandleCompareURLBatch)
	group.Get("/history", h.HandleHistory)
}

// HandleCompareXML compares two inline XML documents.
// @Summary Compare XML
// @Description Compare two inline XML documents under the supplied ignore rules.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Compare Request"
// @Success 200 {object} xmldiff.Result "Comparison Result"
// @Failure 400 {object} map[string]string "Invalid or Malformed XML"
// @Router /compare/xml [post]
func (h *Handler) HandleCompareXML(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.CompareXML(req)
	if err != nil {
		l.Warn("Comparison failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleCompareXMLBatch runs a batch of inline comparisons.
// @Summary Compare XML Batch
// @Description Run a batch of inline comparisons in submission order. Failed items become zero-value placeholders; the batch never fails as a whole.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Batch Request"
// @Success 200 {object} BatchResult "Batch Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /compare/xml/batch [post]
func (h *Handler) HandleCompareXMLBatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result := h.service.RunBatch(req.Comparisons)
	l.Info("Batch completed",
		zap.Int("total", result.Total),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed))

	return c.JSON(result)
}

// HandleCompareURL compares two URL-sourced documents.
// @Summary Compare URLs
// @Description Fetch two documents by URL (optionally with a session or inline credentials) and compare them.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body URLCompareRequest true "URL Compare Request"
// @Success 200 {object} xmldiff.Result "Comparison Result"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 401 {object} map[string]string "Authentication Failed"
// @Failure 502 {object} map[string]string "Fetch Failed"
// @Router /compare/url [post]
func (h *Handler) HandleCompareURL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req URLCompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.CompareURLs(c.Context(), req)
	if err != nil {
		l.Warn("URL comparison failed",
			zap.String("url1", req.URL1),
			zap.String("url2", req.URL2),
			zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleCompareURLBatch runs a batch of URL comparisons.
// @Summary Compare URL Batch
// @Description Run a batch of URL comparisons through a bounded worker group. Results preserve submission order; failed items become zero-value placeholders.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body BatchURLRequest true "URL Batch Request"
// @Success 200 {object} BatchResult "Batch Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /compare/url/batch [post]
func (h *Handler) HandleCompareURLBatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req BatchURLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result := h.service.RunURLBatch(c.Context(), req.Comparisons)
	l.Info("URL batch completed",
		zap.Int("total", result.Total),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed))

	return c.JSON(result)
}

// HandleHistory lists recent comparison runs.
// @Summary Comparison History
// @Description List the most recent recorded comparison runs, newest first.
// @Tags compare
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of runs (default 50)"
// @Success 200 {array} Run "Recent Runs"
// @Failure 503 {object} map[string]string "History Not Configured"
// @Router /compare/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if h.service.recorder == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "history persistence is not configured",
		})
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid limit"})
		}
		limit = parsed
	}

	runs, err := h.service.recorder.Recent(limit)
	if err != nil {
		l.Error("Failed to load comparison history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}

// statusFor maps service errors to HTTP statuses.
func statusFor(err error) int {
	var validationErr *validate.ValidationError
	var parseErr *xmldiff.ParseError
	var authErr *source.AuthError
	var fetchErr *source.FetchError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &parseErr):
		return fiber.StatusBadRequest
	case errors.As(err, &authErr):
		return fiber.StatusUnauthorized
	case errors.As(err, &fetchErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
