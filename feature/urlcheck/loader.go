package urlcheck

import (
	"url-reconciler/core/reconcile"
	"url-reconciler/feature/sources"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new urlcheck feature.
func NewFeature(engine *reconcile.Engine, cache *reconcile.ReportCache, srcA, srcB sources.Source, logger *zap.Logger) *Feature {
	svc := NewService(engine, cache, srcA, srcB, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "urlcheck"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.engine != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
