package delivery_test

import (
	"errors"
	"fmt"
	"testing"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(delivery.Unknown))
		assert.Equal(t, 1, int(delivery.Pending))
		assert.Equal(t, 2, int(delivery.Assigned))
		assert.Equal(t, 3, int(delivery.PickedUp))
		assert.Equal(t, 4, int(delivery.InTransit))
		assert.Equal(t, 5, int(delivery.Delivered))
		assert.Equal(t, 6, int(delivery.Cancelled))
		assert.Equal(t, 7, int(delivery.Failed))
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should use wire representation", func(t *testing.T) {
		assert.Equal(t, "PENDING", delivery.Pending.String())
		assert.Equal(t, "ASSIGNED", delivery.Assigned.String())
		assert.Equal(t, "PICKED_UP", delivery.PickedUp.String())
		assert.Equal(t, "IN_TRANSIT", delivery.InTransit.String())
		assert.Equal(t, "DELIVERED", delivery.Delivered.String())
		assert.Equal(t, "CANCELLED", delivery.Cancelled.String())
		assert.Equal(t, "FAILED", delivery.Failed.String())
		assert.Equal(t, "UNKNOWN", delivery.Unknown.String())
		assert.Equal(t, "UNKNOWN", delivery.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		valid := []delivery.Status{
			delivery.Pending,
			delivery.Assigned,
			delivery.PickedUp,
			delivery.InTransit,
			delivery.Delivered,
			delivery.Cancelled,
			delivery.Failed,
		}

		for _, status := range valid {
			t.Run(status.String(), func(t *testing.T) {
				parsed, err := delivery.StatusFromString(status.String())
				require.NoError(t, err)
				assert.Equal(t, status, parsed)
			})
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "UNKNOWN", "pending", "DONE"} {
			_, err := delivery.StatusFromString(s)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for s := delivery.Pending; s <= delivery.Failed; s++ {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.Unknown, delivery.Status(-1), delivery.Status(8)} {
			t.Run(fmt.Sprintf("value %d", int(s)), func(t *testing.T) {
				err := s.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered, cancelled and failed are terminal", func(t *testing.T) {
		assert.True(t, delivery.Delivered.IsTerminal())
		assert.True(t, delivery.Cancelled.IsTerminal())
		assert.True(t, delivery.Failed.IsTerminal())
	})

	t.Run("active statuses are not terminal", func(t *testing.T) {
		assert.False(t, delivery.Pending.IsTerminal())
		assert.False(t, delivery.Assigned.IsTerminal())
		assert.False(t, delivery.PickedUp.IsTerminal())
		assert.False(t, delivery.InTransit.IsTerminal())
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("happy path follows strict ordering", func(t *testing.T) {
		status := delivery.Pending

		status, err := status.Assign()
		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, status)

		status, err = status.PickUp()
		require.NoError(t, err)
		assert.Equal(t, delivery.PickedUp, status)

		status, err = status.StartTransit()
		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, status)

		status, err = status.Deliver()
		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, status)
	})

	t.Run("pickup from pending is rejected", func(t *testing.T) {
		_, err := delivery.Pending.PickUp()

		require.Error(t, err)
		require.ErrorIs(t, err, delivery.ErrInvalidTransition)

		var transitionErr *delivery.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, delivery.Pending, transitionErr.From)
		assert.Equal(t, "pick up", transitionErr.Event)
	})

	t.Run("illegal transitions are rejected with current state named", func(t *testing.T) {
		testCases := []struct {
			name string
			err  error
		}{
			{"assign from assigned", secondErr(delivery.Assigned.Assign())},
			{"assign from delivered", secondErr(delivery.Delivered.Assign())},
			{"transit from assigned", secondErr(delivery.Assigned.StartTransit())},
			{"deliver from picked up", secondErr(delivery.PickedUp.Deliver())},
			{"deliver from delivered", secondErr(delivery.Delivered.Deliver())},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				require.Error(t, tc.err)
				require.ErrorIs(t, tc.err, delivery.ErrInvalidTransition)
			})
		}
	})

	t.Run("cancel is reachable from every non-terminal status", func(t *testing.T) {
		for _, from := range []delivery.Status{
			delivery.Pending,
			delivery.Assigned,
			delivery.PickedUp,
			delivery.InTransit,
		} {
			t.Run(from.String(), func(t *testing.T) {
				status, err := from.Cancel()
				require.NoError(t, err)
				assert.Equal(t, delivery.Cancelled, status)
			})
		}
	})

	t.Run("cancel is never reachable from a terminal status", func(t *testing.T) {
		for _, from := range []delivery.Status{
			delivery.Delivered,
			delivery.Cancelled,
			delivery.Failed,
		} {
			t.Run(from.String(), func(t *testing.T) {
				_, err := from.Cancel()
				require.Error(t, err)
				require.ErrorIs(t, err, delivery.ErrInvalidTransition)
			})
		}
	})

	t.Run("nothing leaves failed", func(t *testing.T) {
		_, assignErr := delivery.Failed.Assign()
		_, pickUpErr := delivery.Failed.PickUp()
		_, transitErr := delivery.Failed.StartTransit()
		_, deliverErr := delivery.Failed.Deliver()
		_, cancelErr := delivery.Failed.Cancel()

		for _, err := range []error{assignErr, pickUpErr, transitErr, deliverErr, cancelErr} {
			require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		}
	})
}

func TestInvalidTransitionError_Message(t *testing.T) {
	t.Run("names state and event", func(t *testing.T) {
		_, err := delivery.Pending.Deliver()

		require.Error(t, err)
		assert.Equal(t, "invalid status transition: cannot deliver from PENDING", err.Error())
	})
}

func secondErr(_ delivery.Status, err error) error {
	if err == nil {
		return errors.New("expected transition error, got none")
	}
	return err
}
