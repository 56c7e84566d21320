package auth

import (
	"xml-compare-api/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Auth feature.
func NewFeature(client Client, store *session.Store, logger *zap.Logger) *Feature {
	svc := NewService(client, store, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the underlying service so other features can log in
// with inline credentials.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "auth"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
