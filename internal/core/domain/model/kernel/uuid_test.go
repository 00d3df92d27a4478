package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a new UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
		assert.True(t, id1.IsEqual(id1))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name  string
		input string
	}{
		{name: "canonical", input: validUUID},
		{name: "braces", input: "{550e8400-e29b-41d4-a716-446655440000}"},
		{name: "urn prefix", input: "urn:uuid:550e8400-e29b-41d4-a716-446655440000"},
		{name: "no hyphens", input: "550e8400e29b41d4a716446655440000"},
	}

	for _, tt := range tests {
		t.Run("should accept "+tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)

			require.NoError(t, err)
			assert.Equal(t, validUUID, id.String())
		})
	}

	t.Run("should reject malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUID_Validate(t *testing.T) {
	var id kernel.UUID

	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
}
