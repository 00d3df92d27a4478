package order_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Created))
	assert.Equal(t, 2, int(order.Assigned))
	assert.Equal(t, 3, int(order.Completed))
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []order.Status{order.Created, order.Assigned, order.Completed} {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(4), order.Status(100)} {
		t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		})
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Unknown, "Unknown"},
		{order.Created, "Created"},
		{order.Assigned, "Assigned"},
		{order.Completed, "Completed"},
		{order.Status(42), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("Created can be assigned", func(t *testing.T) {
		next, err := order.Created.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)
	})

	t.Run("Assigned cannot be reassigned", func(t *testing.T) {
		_, err := order.Assigned.Assign()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Assigned is not a valid status to assign")
	})

	t.Run("Completed cannot be assigned", func(t *testing.T) {
		_, err := order.Completed.Assign()

		assert.Contains(t, err.Error(), "Completed is not a valid status to assign")
	})

	t.Run("Assigned can be completed", func(t *testing.T) {
		next, err := order.Assigned.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("Created cannot be completed", func(t *testing.T) {
		_, err := order.Created.Complete()

		assert.Contains(t, err.Error(), "Created is not a valid status to complete")
	})

	t.Run("Completed is final", func(t *testing.T) {
		_, err := order.Completed.Complete()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsActive(t *testing.T) {
	assert.False(t, order.Created.IsActive())
	assert.True(t, order.Assigned.IsActive())
	assert.False(t, order.Completed.IsActive())
}

func TestStatus_ValidateCanHaveVehicle(t *testing.T) {
	tests := []struct {
		status     order.Status
		hasVehicle bool
		wantErr    bool
	}{
		{order.Created, false, false},
		{order.Created, true, true},
		{order.Assigned, true, false},
		{order.Assigned, false, true},
		{order.Completed, true, false},
		{order.Completed, false, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s with vehicle %t", tt.status, tt.hasVehicle), func(t *testing.T) {
			err := tt.status.ValidateCanHaveVehicle(tt.hasVehicle)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}
