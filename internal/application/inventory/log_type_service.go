package inventory

import (
	"context"

	"github.com/marketplace/backend/internal/domain/inventory"
	"go.uber.org/zap"
)

// LogTypeCache caches the movement-type reference table. The table is tiny
// and effectively immutable at runtime, so it is cached as a whole set.
type LogTypeCache interface {
	// GetTypes returns the cached set, or ok=false on a miss.
	GetTypes(ctx context.Context) ([]inventory.InventoryLogType, bool, error)
	// SetTypes stores the full set.
	SetTypes(ctx context.Context, types []inventory.InventoryLogType) error
}

// LogTypeService serves the movement-type reference table with a
// read-through cache. Cache failures fall back to the database; the
// reference table is the source of truth.
type LogTypeService struct {
	repo   inventory.InventoryLogTypeRepository
	cache  LogTypeCache
	logger *zap.Logger
}

// NewLogTypeService creates a new LogTypeService. The cache may be nil, in
// which case every read goes to the repository.
func NewLogTypeService(repo inventory.InventoryLogTypeRepository, cache LogTypeCache, logger *zap.Logger) *LogTypeService {
	return &LogTypeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns all movement types
func (s *LogTypeService) List(ctx context.Context) ([]LogTypeResponse, error) {
	types, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]LogTypeResponse, 0, len(types))
	for i := range types {
		responses = append(responses, ToLogTypeResponse(&types[i]))
	}
	return responses, nil
}

// GetByCode returns a single movement type by its code
func (s *LogTypeService) GetByCode(ctx context.Context, code string) (*LogTypeResponse, error) {
	logType, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToLogTypeResponse(logType)
	return &response, nil
}

func (s *LogTypeService) load(ctx context.Context) ([]inventory.InventoryLogType, error) {
	if s.cache != nil {
		types, ok, err := s.cache.GetTypes(ctx)
		if err != nil {
			s.logger.Warn("movement type cache read failed", zap.Error(err))
		} else if ok {
			return types, nil
		}
	}

	types, err := s.repo.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetTypes(ctx, types); err != nil {
			s.logger.Warn("movement type cache write failed", zap.Error(err))
		}
	}
	return types, nil
}
