package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddVehicleCommand(t *testing.T) {
	cmd, err := commands.NewAddVehicleCommand(0)
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.Number())

	_, err = commands.NewAddVehicleCommand(-5)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, commands.AddVehicleCommand{}.Validate(), commands.ErrAddVehicleCommandIsNotConstructed)
}
