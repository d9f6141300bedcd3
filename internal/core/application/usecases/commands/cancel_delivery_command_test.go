package commands_test

import (
	"testing"

	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelDeliveryCommand_ValidInput(t *testing.T) {
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, "customer unreachable")
	require.NoError(t, err)
	assert.Equal(t, deliveryID, cmd.DeliveryID())
	assert.Equal(t, "customer unreachable", cmd.Reason())
}

func TestNewCancelDeliveryCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewCancelDeliveryCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelReasonIsRequired)
}

func TestNewCancelDeliveryCommand_InvalidDeliveryID(t *testing.T) {
	_, err := commands.NewCancelDeliveryCommand(kernel.UUID{}, "customer unreachable")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
