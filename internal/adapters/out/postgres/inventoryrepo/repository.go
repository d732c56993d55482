package inventoryrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/inventory"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

func pairKey(aggregate *inventory.Item) string {
	return aggregate.ProductID().String() + "/" + aggregate.LocationID().String()
}

// Add saves a new stock record to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(pairKey(aggregate), aggregate)
	return nil
}

// Update saves an existing stock record to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("product_id = ? AND location_id = ?",
			aggregate.ProductID().String(), aggregate.LocationID().String()).
		Update("quantity", aggregate.Quantity())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(pairKey(aggregate), aggregate)
	return nil
}

// Get retrieves the stock record for a (product, location) pair.
func (r *GormInventoryRepository) Get(
	ctx context.Context, productID kernel.ProductID, locationID kernel.LocationID,
) (*inventory.Item, error) {
	if err := errors.Join(productID.Validate(), locationID.Validate()); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "product_id = ? AND location_id = ?", productID.String(), locationID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", productID.String()+"/"+locationID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stock record in the order records were first created.
// Allocation scans this slice front to back, so the ordering is load-bearing.
func (r *GormInventoryRepository) GetAll(ctx context.Context) ([]*inventory.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*inventory.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
