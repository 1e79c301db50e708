package manifest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"asset-loader/core/asset"
	"asset-loader/core/database"
	"asset-loader/feature/assets"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no manifest has the requested name.
	ErrNotFound = errors.New("manifest not found")
	// ErrInvalid is returned when a manifest definition is rejected.
	ErrInvalid = errors.New("invalid manifest")
)

// Service stores manifests and runs them through the assets service.
type Service struct {
	db     *gorm.DB
	runner *assets.Service
	logger *zap.Logger
}

// NewService creates a new manifest service.
func NewService(db *gorm.DB, runner *assets.Service, logger *zap.Logger) *Service {
	return &Service{db: db, runner: runner, logger: logger}
}

// Migrate creates or updates the manifests table and verifies its columns.
func (s *Service) Migrate() error {
	if err := s.db.AutoMigrate(&Manifest{}); err != nil {
		return fmt.Errorf("failed to migrate manifests: %w", err)
	}
	missing, err := database.MissingColumns(s.db, Manifest{}.TableName(), columns...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("manifests table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Put creates or replaces the manifest called name. It reports whether the
// manifest was created.
func (s *Service) Put(ctx context.Context, name, mode string, requests any) (*Manifest, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	switch mode {
	case "":
		mode = assets.ModeAll
	case assets.ModeAll, assets.ModeAny:
	default:
		return nil, false, fmt.Errorf("%w: mode must be %q or %q", ErrInvalid, assets.ModeAll, assets.ModeAny)
	}
	if _, err := asset.NewBatch(requests); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	encoded, err := json.Marshal(requests)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	db := s.db.WithContext(ctx)
	var m Manifest
	err = db.Where("name = ?", name).First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = Manifest{Name: name, Mode: mode, Requests: string(encoded)}
		if err := db.Create(&m).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create manifest %s: %w", name, err)
		}
		return &m, true, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to find manifest %s: %w", name, err)
	}

	m.Mode = mode
	m.Requests = string(encoded)
	if err := db.Save(&m).Error; err != nil {
		return nil, false, fmt.Errorf("failed to update manifest %s: %w", name, err)
	}
	return &m, false, nil
}

// Get returns the manifest called name.
func (s *Service) Get(ctx context.Context, name string) (*Manifest, error) {
	var m Manifest
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find manifest %s: %w", name, err)
	}
	return &m, nil
}

// List returns every manifest ordered by name.
func (s *Service) List(ctx context.Context) ([]Manifest, error) {
	var out []Manifest
	if err := s.db.WithContext(ctx).Order("name").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list manifests: %w", err)
	}
	return out, nil
}

// Delete removes the manifest called name.
func (s *Service) Delete(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).Where("name = ?", name).Delete(&Manifest{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete manifest %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Run loads the batch stored under name in its mode.
func (s *Service) Run(ctx context.Context, name string) (*assets.BatchReport, error) {
	m, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	var requests any
	if err := json.Unmarshal([]byte(m.Requests), &requests); err != nil {
		return nil, fmt.Errorf("manifest %s holds malformed requests: %w", name, err)
	}

	s.logger.Debug("Running manifest", zap.String("manifest", name), zap.String("mode", m.Mode))
	return s.runner.Batch(ctx, m.Mode, requests)
}
