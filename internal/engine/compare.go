package engine

import (
	"context"
	"fmt"

	"github.com/piwi3910/PlanCut/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.PlanSettings
}

// ComparisonResult holds the generated plan and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Plan     model.FloorPlan
	Stats    model.PlanStats
	Score    float64
}

// CompareScenarios generates a plan for each scenario against the same
// footprint and seed and returns the results in scenario order. This
// enables side-by-side comparison of different generation parameters. A
// scenario with invalid settings aborts the comparison.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario, width, height float64, roomCount int, seed int64, types []model.RoomTypeSpec) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		gen := NewWithTypes(scenario.Settings, types)
		plan, err := gen.Generate(ctx, width, height, roomCount, seed)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		results = append(results, ComparisonResult{
			Scenario: scenario,
			Plan:     plan,
			Stats:    model.ComputePlanStats(plan),
			Score:    ScorePlan(plan),
		})
	}

	return results, nil
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current settings, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(baseSettings model.PlanSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	// Scenario: the other algorithm
	altAlgo := baseSettings
	if baseSettings.Algorithm == model.AlgorithmBSP {
		altAlgo.Algorithm = model.AlgorithmEvolved
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Evolved Search",
			Settings: altAlgo,
		})
	} else {
		altAlgo.Algorithm = model.AlgorithmBSP
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Plain Partition",
			Settings: altAlgo,
		})
	}

	// Scenario: wider split range produces more varied room sizes
	wideSplit := baseSettings
	wideSplit.SplitRatioMin = 0.2
	wideSplit.SplitRatioMax = 0.8
	scenarios = append(scenarios, ComparisonScenario{
		Name:     "Wide Split Range [0.2, 0.8]",
		Settings: wideSplit,
	})

	// Scenario: relaxed aspect bias lets elongated rooms survive
	relaxedAspect := baseSettings
	relaxedAspect.AspectSplitHigh = 2.0
	relaxedAspect.AspectSplitLow = 0.5
	scenarios = append(scenarios, ComparisonScenario{
		Name:     "Relaxed Aspect Bias",
		Settings: relaxedAspect,
	})

	// Scenario: larger minimum room area
	if baseSettings.MinRoomArea < 8.0 {
		bigRooms := baseSettings
		bigRooms.MinRoomArea = baseSettings.MinRoomArea * 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Min Room Area %.0f m2", bigRooms.MinRoomArea),
			Settings: bigRooms,
		})
	}

	return scenarios
}
