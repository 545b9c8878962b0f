package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/piwi3910/PlanCut/internal/model"
	"github.com/piwi3910/PlanCut/internal/telemetry"
)

// Generator runs the full layout pipeline: partition, type assignment,
// connectivity and opening placement.
type Generator struct {
	Settings model.PlanSettings
	Types    []model.RoomTypeSpec
}

// New creates a Generator using the built-in room type table.
func New(settings model.PlanSettings) *Generator {
	return &Generator{
		Settings: settings,
		Types:    model.DefaultRoomTypeTable(),
	}
}

// NewWithTypes creates a Generator with a custom room type table. A nil or
// empty table falls back to the built-ins.
func NewWithTypes(settings model.PlanSettings, types []model.RoomTypeSpec) *Generator {
	if len(types) == 0 {
		types = model.DefaultRoomTypeTable()
	}
	return &Generator{Settings: settings, Types: types}
}

// Generate produces a floor plan for the footprint. The only error it can
// return is a configuration error, reported before any layout work starts;
// on well-formed input generation always succeeds and records relaxations
// as metadata warnings. Identical inputs produce identical plans.
func (g *Generator) Generate(ctx context.Context, width, height float64, roomCount int, seed int64) (model.FloorPlan, error) {
	tracer := telemetry.Tracer("engine")
	ctx, span := tracer.Start(ctx, "plan.generate")
	defer span.End()

	startTime := time.Now()
	span.SetAttributes(
		attribute.Float64("plan.width", width),
		attribute.Float64("plan.height", height),
		attribute.Int("plan.rooms_requested", roomCount),
		attribute.Int64("plan.seed", seed),
		attribute.String("plan.algorithm", string(g.Settings.Algorithm)),
	)

	if err := g.validateRequest(width, height, roomCount); err != nil {
		return model.FloorPlan{}, err
	}

	var plan model.FloorPlan
	if g.Settings.Algorithm == model.AlgorithmEvolved {
		plan = EvolvePlan(ctx, g.Settings, g.Types, width, height, roomCount, seed)
	} else {
		rng := rand.New(rand.NewSource(seed))
		plan = buildPlan(g.Settings, g.Types, width, height, roomCount, seed, rng)
	}

	span.SetAttributes(
		attribute.Int("plan.rooms", len(plan.Rooms)),
		attribute.Int("plan.connections", len(plan.Connections)),
		attribute.Int("plan.warnings", len(plan.Metadata.Warnings)),
		attribute.Int64("plan.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return plan, nil
}

// validateRequest checks everything that can be rejected before layout
// starts. Requests the partitioner could never satisfy within its depth
// bound are configuration errors, not runtime failures.
func (g *Generator) validateRequest(width, height float64, roomCount int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: footprint %gx%g must have positive dimensions", model.ErrConfig, width, height)
	}
	if roomCount < 1 {
		return fmt.Errorf("%w: room count must be at least 1, got %d", model.ErrConfig, roomCount)
	}
	if err := g.Settings.Validate(); err != nil {
		return err
	}
	if width*height < g.Settings.MinRoomArea {
		return fmt.Errorf("%w: footprint area %g is below min_room_area %g",
			model.ErrConfig, width*height, g.Settings.MinRoomArea)
	}
	if maxRooms := 1 << g.Settings.MaxDepth; roomCount > maxRooms {
		return fmt.Errorf("%w: room count %d cannot be reached within max_depth %d (limit %d)",
			model.ErrConfig, roomCount, g.Settings.MaxDepth, maxRooms)
	}
	return nil
}

// Generate runs the full pipeline with the built-in room type table.
func Generate(ctx context.Context, width, height float64, roomCount int, seed int64, settings model.PlanSettings) (model.FloorPlan, error) {
	return New(settings).Generate(ctx, width, height, roomCount, seed)
}

// buildPlan is the pure pipeline core: every random decision comes from src,
// so replaying the same source reproduces the same plan byte for byte.
func buildPlan(s model.PlanSettings, types []model.RoomTypeSpec, width, height float64, roomCount int, seed int64, src splitSource) model.FloorPlan {
	tree, warnings := buildTree(width, height, roomCount, src, s)

	rooms, assignWarnings := assignRooms(&tree, types, s)
	warnings = append(warnings, assignWarnings...)

	conns, shares, connectWarnings := resolveConnections(rooms, s)
	warnings = append(warnings, connectWarnings...)

	dims := model.Dimensions{Width: width, Height: height}
	warnings = append(warnings, placeOpenings(rooms, conns, shares, dims, s)...)

	if len(rooms) < roomCount {
		warnings = append(warnings, fmt.Sprintf("requested %d rooms, produced %d", roomCount, len(rooms)))
	}

	return model.FloorPlan{
		Version:     model.PlanVersion,
		ID:          planID(s.Algorithm, width, height, roomCount, seed),
		Dimensions:  dims,
		Rooms:       rooms,
		Connections: conns,
		Metadata: model.PlanMetadata{
			Seed:           seed,
			RoomsRequested: roomCount,
			Algorithm:      s.Algorithm,
			Warnings:       warnings,
		},
	}
}

// planID derives a stable UUID from the generation inputs, so identical
// requests share an id and differing ones never collide in practice.
func planID(algorithm model.Algorithm, width, height float64, roomCount int, seed int64) string {
	key := fmt.Sprintf("plancut:%s:%s:%g:%g:%d:%d", model.PlanVersion, algorithm, width, height, roomCount, seed)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}
