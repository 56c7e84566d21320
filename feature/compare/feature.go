package compare

import (
	"xml-compare-api/core/session"
	"xml-compare-api/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Compare feature. recorder may be nil when no
// history database is configured.
func NewFeature(fetcher source.Source, sessions *session.Store, auth Authenticator, recorder *Recorder, concurrency int, logger *zap.Logger) *Feature {
	svc := NewService(fetcher, sessions, auth, recorder, concurrency, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "compare"
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
