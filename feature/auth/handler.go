package auth

import (
	"errors"

	"xml-compare-api/core/logger"
	"xml-compare-api/core/source"
	"xml-compare-api/core/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoginRequest is the login endpoint payload.
type LoginRequest struct {
	// URL is the login form target.
	URL string `json:"url"`
	// Username is the account name.
	Username string `json:"username"`
	// Password is the account password.
	Password string `json:"password"`
}

// Handler handles HTTP requests for sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/auth")
	group.Post("/login", h.HandleLogin)
	group.Post("/logout/:session_id", h.HandleLogout)
	group.Get("/session/:session_id", h.HandleGetSession)
}

// HandleLogin authenticates against a remote host and creates a session.
// @Summary Login
// @Description Form-POST the credentials to the target URL and store the returned cookies as a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login Request"
// @Success 200 {object} session.Session "Created Session"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 {object} map[string]string "Authentication Failed"
// @Failure 502 {object} map[string]string "Login Host Unreachable"
// @Router /auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	sess, err := h.service.Login(c.Context(), req.URL, req.Username, req.Password)
	if err != nil {
		l.Warn("Login failed", zap.String("url", req.URL), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(sess)
}

// HandleLogout removes a session.
// @Summary Logout
// @Description Remove a stored session by id.
// @Tags auth
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} map[string]string "Logged Out"
// @Failure 404 {object} map[string]string "Session Not Found"
// @Router /auth/logout/{session_id} [post]
func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	id := c.Params("session_id")
	if !h.service.Logout(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(fiber.Map{"status": "logged_out"})
}

// HandleGetSession returns a stored session by id.
// @Summary Get Session
// @Description Fetch a stored session by id.
// @Tags auth
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} session.Session "Session"
// @Failure 404 {object} map[string]string "Session Not Found"
// @Router /auth/session/{session_id} [get]
func (h *Handler) HandleGetSession(c *fiber.Ctx) error {
	id := c.Params("session_id")
	sess, ok := h.service.Session(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return c.JSON(sess)
}

// statusFor maps service errors to HTTP statuses.
func statusFor(err error) int {
	var validationErr *validate.ValidationError
	var authErr *source.AuthError
	var fetchErr *source.FetchError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &authErr):
		return fiber.StatusUnauthorized
	case errors.As(err, &fetchErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
