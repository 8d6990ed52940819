package planner

import "github.com/pkordes/trip-planner/internal/domain"

// PlanCities returns the approximate days per city and the number of cities
// for a trip of totalDays. totalDays below 1 yields (0, 0).
func PlanCities(totalDays int) (float64, int) {
	var n int
	switch {
	case totalDays < 1:
		return 0, 0
	case totalDays <= 3:
		n = totalDays
	case totalDays <= 7:
		n = max(2, totalDays/2)
	case totalDays <= 14:
		n = max(3, totalDays/3)
	default:
		n = max(4, totalDays/4)
	}
	return float64(totalDays) / float64(n), n
}

// Distribute assigns day counts to stops in order so they sum to totalDays.
//
// Every stop but the last gets floor(days per city), plus one when the days
// left would otherwise average above days per city for the stops after it.
// The last stop takes the remainder. No stop gets fewer than one day; if
// there are more stops than days the tail is dropped.
func Distribute(stops []domain.PlannedStop, totalDays int) []domain.PlannedStop {
	if totalDays < 1 || len(stops) == 0 {
		return []domain.PlannedStop{}
	}
	if len(stops) > totalDays {
		stops = stops[:totalDays]
	}
	perCity, _ := PlanCities(totalDays)
	base := int(perCity)

	out := make([]domain.PlannedStop, len(stops))
	assigned := 0
	for i, s := range stops {
		left := len(stops) - i - 1
		days := totalDays - assigned
		if left > 0 {
			days = base
			if assigned+days < totalDays {
				remaining := totalDays - assigned - days
				if float64(remaining)/float64(left) > perCity {
					days++
				}
			}
			// keep at least a day for each stop still to place
			days = max(1, min(days, totalDays-assigned-left))
		}
		s.Days = days
		assigned += days
		out[i] = s
	}
	return out
}
