package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDeliveryStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	deliveryID, _ := kernel.NewDeliveryID(1)
	orderID, _ := kernel.NewOrderID(1)
	aggregate, err := delivery.NewDelivery(deliveryID, orderID, nil)
	require.NoError(t, err)
	cmd, _ := commands.NewUpdateDeliveryStatusCommand(deliveryID, delivery.Delivered)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, deliveryID).Return(aggregate, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, aggregate.Status())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID, _ := kernel.NewDeliveryID(9)
	cmd, _ := commands.NewUpdateDeliveryStatusCommand(deliveryID, delivery.Delivered)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, deliveryID).
			Return(nil, errs.NewObjectNotFoundError("deliveryID", deliveryID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
