package engine

import "github.com/piwi3910/PlanCut/internal/model"

// ScorePlan rates a plan's overall quality on a 0..1-ish scale. Balanced
// room areas, full connectivity, hitting the requested room count and window
// coverage all push the score up; degraded connections and unreachable rooms
// pull it down. The score drives scenario comparison and the evolutionary
// search.
func ScorePlan(plan model.FloorPlan) float64 {
	stats := model.ComputePlanStats(plan)
	if stats.RoomCount == 0 {
		return 0
	}

	passable := stats.ConnectionCount - stats.DegradedCount
	connectivity := 1.0
	if stats.RoomCount > 1 {
		connectivity = float64(passable) / float64(stats.RoomCount-1)
		if connectivity > 1 {
			connectivity = 1
		}
	}

	attainment := 1.0
	if plan.Metadata.RoomsRequested > 0 {
		attainment = float64(stats.RoomCount) / float64(plan.Metadata.RoomsRequested)
		if attainment > 1 {
			attainment = 1
		}
	}

	windowed := 0
	for _, room := range plan.Rooms {
		if len(room.Windows) > 0 {
			windowed++
		}
	}
	windowCoverage := float64(windowed) / float64(stats.RoomCount)

	score := 0.40*stats.BalanceScore +
		0.25*connectivity +
		0.25*attainment +
		0.10*windowCoverage

	score -= 0.05 * float64(stats.DegradedCount)
	score -= 0.10 * float64(stats.UnreachableCount)

	if score < 0 {
		return 0
	}
	return score
}
