package schedule

import (
	"math"

	"concrete-booking-service/internal/domain"
)

const earthRadiusKm = 6371.0

// TravelMinutes estimates road travel time between two sites in whole
// minutes. Same or unknown identifiers mean no relocation and cost zero.
// Two distinct sites without usable coordinates return the configured
// default: a move is known to happen, so ambiguity biases toward flagging
// a possible issue rather than assuming none.
//
// Pure and deterministic; identical inputs always yield the same estimate.
func TravelMinutes(from, to domain.SiteID, sites map[domain.SiteID]domain.SiteLocation, cfg CheckConfig) int {
	if from == "" || to == "" || from == to {
		return 0
	}

	a, okA := sites[from]
	b, okB := sites[to]
	if !okA || !okB || a.Coords == nil || b.Coords == nil {
		return cfg.DefaultTravelMinutes
	}

	km := haversineKm(*a.Coords, *b.Coords)
	minutes := int(math.Round(km / cfg.AvgSpeedKmh * 60))

	if minutes < cfg.MinTravelMinutes {
		minutes = cfg.MinTravelMinutes
	}
	if minutes > cfg.MaxTravelMinutes {
		minutes = cfg.MaxTravelMinutes
	}
	return minutes
}

// Great-circle distance between two coordinates in kilometers.
func haversineKm(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
