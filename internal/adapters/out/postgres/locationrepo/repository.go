package locationrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new location to the database.
func (r *GormLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a location by ID.
func (r *GormLocationRepository) Get(ctx context.Context, id kernel.LocationID) (*location.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether a location with the given ID is stored.
func (r *GormLocationRepository) Exists(ctx context.Context, id kernel.LocationID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&LocationDTO{}).Where("id = ?", id.String()).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves every location in registration order.
func (r *GormLocationRepository) GetAll(ctx context.Context) ([]*location.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]*location.Location, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, nil
}
