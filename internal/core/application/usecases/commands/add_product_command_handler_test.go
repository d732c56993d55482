package commands_test

import (
	"errors"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID, _ := kernel.NewProductID("P1")
	cmd, _ := commands.NewAddProductCommand(productID, "Whole Milk", "Dairy", nil)

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, productID).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_AlreadyExists(t *testing.T) {
	ctx := t.Context()
	productID, _ := kernel.NewProductID("P1")
	cmd, _ := commands.NewAddProductCommand(productID, "Whole Milk", "Dairy", nil)

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, productID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddProductCommand{} // not constructed properly
	factory := new(MockProductUoWFactory)
	h := commands.NewAddProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddProductCommandIsNotConstructed)
}

func TestAddProductCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	productID, _ := kernel.NewProductID("P1")
	cmd, _ := commands.NewAddProductCommand(productID, "Whole Milk", "Dairy", nil)

	uow := new(MockUoW)
	factory := new(MockProductUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddProductCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	productID, _ := kernel.NewProductID("P1")
	cmd, _ := commands.NewAddProductCommand(productID, "Whole Milk", "Dairy", nil)

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, productID).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
