package menu

import (
	"strings"
	"testing"

	"logistics/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
)

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 10: "10th",
		11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 101: "101st", 111: "111th",
	}
	for n, want := range tests {
		assert.Equal(t, want, ordinal(n))
	}
}

func TestVehicleTable(t *testing.T) {
	indent := strings.Repeat(" ", 10)
	gap := strings.Repeat(" ", 10)
	rule := strings.Repeat("-", 11)

	table := vehicleTable([]queries.GetAllVehiclesQueryResponse{
		{Number: 1, Available: false},
		{Number: 10, Available: true},
		{Number: 7, Available: true},
	})

	expected := indent + "Available  " + gap + "Unavailable\n" +
		indent + rule + gap + rule + "\n" +
		indent + "10         " + gap + "1          \n" +
		indent + "7          " + gap + "           \n"
	assert.Equal(t, expected, table)
}

func TestVehicleTable_WideNumbers(t *testing.T) {
	table := vehicleTable([]queries.GetAllVehiclesQueryResponse{
		{Number: 123456789012, Available: true},
	})

	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat(" ", 10)+strings.Repeat("-", 12)+strings.Repeat(" ", 10)+strings.Repeat("-", 12), lines[1])
}
