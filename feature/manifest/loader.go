package manifest

import (
	"asset-loader/feature/assets"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	db      *gorm.DB
	service *Service
	handler *Handler
}

// NewFeature creates a new manifest feature. It is disabled when db is nil.
func NewFeature(db *gorm.DB, runner *assets.Service, logger *zap.Logger) *Feature {
	svc := NewService(db, runner, logger)
	return &Feature{db: db, service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "manifests"
}

// IsEnabled reports whether a database connection is available.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load migrates the manifests table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
