package schedule

import "github.com/shopspring/decimal"

// CheckConfig carries the tunable constants of the conflict check.
// Defaults mirror the dispatcher's rules of thumb for a single mixer truck
// working rural road distances.
type CheckConfig struct {
	// Assumed average road speed used to turn great-circle distance into
	// travel minutes.
	AvgSpeedKmh float64

	// Clamp range for computed travel estimates. Very close sites still
	// cost a few minutes of repositioning; very far ones are capped rather
	// than trusted from straight-line math.
	MinTravelMinutes int
	MaxTravelMinutes int

	// Used when two distinct sites are involved but coordinates are missing
	// for either one. A relocation is known to occur, so the estimate must
	// not collapse to zero.
	DefaultTravelMinutes int

	// Time the truck spends back at the quarry refilling before serving a
	// different site.
	QuarryReloadMinutes int

	// Mixer drum capacity and the day-total multiplier that triggers the
	// reload advisory (total > multiplier * capacity).
	TruckCapacityM3     decimal.Decimal
	DayVolumeMultiplier int64

	// Largest shortfall, in minutes, still worth a soft "shift one of the
	// bookings" hint.
	SmallShiftMinutes int
}

// DefaultCheckConfig returns the production constants.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		AvgSpeedKmh:          50,
		MinTravelMinutes:     5,
		MaxTravelMinutes:     120,
		DefaultTravelMinutes: 30,
		QuarryReloadMinutes:  45,
		TruckCapacityM3:      decimal.NewFromInt(6),
		DayVolumeMultiplier:  2,
		SmallShiftMinutes:    30,
	}
}
