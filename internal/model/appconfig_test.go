package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultAlgorithm != defaults.Algorithm {
		t.Errorf("Algorithm mismatch: config=%s settings=%s", cfg.DefaultAlgorithm, defaults.Algorithm)
	}
	if cfg.DefaultMinRoomArea != defaults.MinRoomArea {
		t.Errorf("MinRoomArea mismatch: config=%f settings=%f", cfg.DefaultMinRoomArea, defaults.MinRoomArea)
	}
	if cfg.DefaultDoorWidth != defaults.DoorWidth {
		t.Errorf("DoorWidth mismatch: config=%f settings=%f", cfg.DefaultDoorWidth, defaults.DoorWidth)
	}
	if cfg.DefaultRoomHeight != defaults.RoomHeightDefault {
		t.Errorf("RoomHeight mismatch: config=%f settings=%f", cfg.DefaultRoomHeight, defaults.RoomHeightDefault)
	}
	if cfg.RecentPlans == nil {
		t.Error("RecentPlans should not be nil")
	}
}

func TestAppConfigApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultMinRoomArea = 6.0
	cfg.DefaultMaxDepth = 5
	cfg.DefaultDoorWidth = 1.0

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.MinRoomArea != 6.0 {
		t.Errorf("expected MinRoomArea=6.0, got %f", s.MinRoomArea)
	}
	if s.MaxDepth != 5 {
		t.Errorf("expected MaxDepth=5, got %d", s.MaxDepth)
	}
	if s.DoorWidth != 1.0 {
		t.Errorf("expected DoorWidth=1.0, got %f", s.DoorWidth)
	}
}

func TestAddRecentPlan(t *testing.T) {
	cfg := DefaultAppConfig()

	cfg.AddRecentPlan("/plans/a.json")
	cfg.AddRecentPlan("/plans/b.json")
	if len(cfg.RecentPlans) != 2 || cfg.RecentPlans[0] != "/plans/b.json" {
		t.Errorf("newest plan should be first, got %v", cfg.RecentPlans)
	}

	// Re-adding moves to the front without duplicating.
	cfg.AddRecentPlan("/plans/a.json")
	if len(cfg.RecentPlans) != 2 || cfg.RecentPlans[0] != "/plans/a.json" {
		t.Errorf("re-added plan should move to front, got %v", cfg.RecentPlans)
	}
}

func TestAddRecentPlanCapsLength(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 15; i++ {
		cfg.AddRecentPlan(string(rune('a'+i)) + ".json")
	}
	if len(cfg.RecentPlans) != maxRecentPlans {
		t.Errorf("expected %d recent plans, got %d", maxRecentPlans, len(cfg.RecentPlans))
	}
	if cfg.RecentPlans[0] != "o.json" {
		t.Errorf("expected newest first, got %v", cfg.RecentPlans[0])
	}
}
