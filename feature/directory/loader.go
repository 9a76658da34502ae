package directory

import (
	"influencer-scout/core/catalog"
	"influencer-scout/core/ledger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the directory feature. recorder may be nil.
func NewFeature(store *catalog.FileStore, recorder *ledger.Recorder, logger *zap.Logger) *Feature {
	svc := NewService(store, recorder, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "directory"
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
