package commands

import (
	"context"

	"supplychain/internal/core/domain/model/location"
	"supplychain/internal/pkg/errs"
)

// AddLocationCommandHandler handles the business logic for location registration.
// Rejects duplicate location identifiers and persists the new location.
type AddLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewAddLocationCommandHandler creates a handler for location registration operations.
// Requires a LocationUoWFactory for transactional persistence.
func NewAddLocationCommandHandler(uowFactory LocationUoWFactory) AddLocationCommandHandler {
	return AddLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location registration command.
// Returns an error wrapping errs.ErrObjectAlreadyExists when the location ID
// is already registered; the existing location is left untouched.
func (h AddLocationCommandHandler) Handle(ctx context.Context, cmd AddLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locationRepo := uow.LocationRepository()

	exists, err := locationRepo.Exists(ctx, cmd.LocationID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("locationID", cmd.LocationID().String())
	}

	aggregate, err := location.NewLocation(cmd.LocationID(), cmd.Name(), cmd.LocationType())
	if err != nil {
		return err
	}

	if err = locationRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
