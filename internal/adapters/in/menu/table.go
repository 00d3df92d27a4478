package menu

import (
	"fmt"
	"strconv"
	"strings"

	"logistics/internal/core/application/usecases/queries"
)

// vehicleTable renders vehicle numbers in two left-aligned columns, Available and
// Unavailable, each as wide as its widest cell.
func vehicleTable(vehicles []queries.GetAllVehiclesQueryResponse) string {
	var available, unavailable []string
	width := max(len("Available"), len("Unavailable"))
	for _, v := range vehicles {
		number := strconv.Itoa(v.Number)
		width = max(width, len(number))
		if v.Available {
			available = append(available, number)
		} else {
			unavailable = append(unavailable, number)
		}
	}

	indent := strings.Repeat(" ", tableIndent)
	gap := strings.Repeat(" ", tableGap)
	rule := strings.Repeat("-", width)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%-*s%s%-*s\n", indent, width, "Available", gap, width, "Unavailable")
	fmt.Fprintf(&sb, "%s%s%s%s\n", indent, rule, gap, rule)
	for i := range max(len(available), len(unavailable)) {
		fmt.Fprintf(&sb, "%s%-*s%s%-*s\n", indent, width, cell(available, i), gap, width, cell(unavailable, i))
	}
	return sb.String()
}

func cell(column []string, i int) string {
	if i < len(column) {
		return column[i]
	}
	return ""
}
