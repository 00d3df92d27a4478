package commands

import (
	"logistics/internal/core/domain/model/logistics"
)

// fleetState counts available and busy vehicles. Call it while the unit of work is
// still open.
type fleetState struct {
	available int
	busy      int
}

func countFleet(system *logistics.System) fleetState {
	var state fleetState
	for _, v := range system.Vehicles() {
		if v.IsAvailable() {
			state.available++
		} else {
			state.busy++
		}
	}
	return state
}
