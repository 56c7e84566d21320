package documents

import (
	"context"

	"xml-compare-api/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Documents feature. client may be nil when no
// object storage is configured; the feature then stays disabled.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger) *Feature {
	if client == nil {
		return &Feature{}
	}
	svc := NewService(client, bucket, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "documents"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes and prepares the bucket.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.EnsureBucket(context.Background()); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
