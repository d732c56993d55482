package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddInventoryCommand_ValidInput(t *testing.T) {
	productID, err := kernel.NewProductID("P1")
	require.NoError(t, err)
	locationID, err := kernel.NewLocationID("L1")
	require.NoError(t, err)

	cmd, err := commands.NewAddInventoryCommand(productID, locationID, 50)

	require.NoError(t, err)
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, locationID, cmd.LocationID())
	assert.Equal(t, 50, cmd.Quantity())
	assert.NoError(t, cmd.Validate())
}

func TestNewAddInventoryCommand_NegativeQuantityAccepted(t *testing.T) {
	// Negative quantities act as manual stock adjustments.
	productID, err := kernel.NewProductID("P1")
	require.NoError(t, err)
	locationID, err := kernel.NewLocationID("L1")
	require.NoError(t, err)

	cmd, err := commands.NewAddInventoryCommand(productID, locationID, -10)

	require.NoError(t, err)
	assert.Equal(t, -10, cmd.Quantity())
}

func TestNewAddInventoryCommand_InvalidIDs(t *testing.T) {
	locationID, err := kernel.NewLocationID("L1")
	require.NoError(t, err)

	_, err = commands.NewAddInventoryCommand(kernel.ProductID{}, locationID, 50)
	require.Error(t, err)

	productID, err := kernel.NewProductID("P1")
	require.NoError(t, err)

	_, err = commands.NewAddInventoryCommand(productID, kernel.LocationID{}, 50)
	require.Error(t, err)
}

func TestAddInventoryCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AddInventoryCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddInventoryCommandIsNotConstructed)
}
