// PlanCut — Procedural Floor Plan Generator
//
// A command-line tool that partitions a rectangular building footprint
// into rooms, assigns room types, resolves connectivity and places
// door and window openings, then exports the result as JSON, PDF,
// DXF or XLSX.
//
// Build:
//   go build -o plancut ./cmd/plancut
//
// Examples:
//   plancut -width 12 -height 9 -rooms 5 -seed 42 -out plan.json -pdf plan.pdf
//   plancut -preset "Apartment 10x8" -algorithm evolved -xlsx rooms.xlsx
//   plancut -footprint site.dxf -rooms 6 -types roomtypes.csv -out plan.json
//   plancut -validate plan.json

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/piwi3910/PlanCut/internal/engine"
	"github.com/piwi3910/PlanCut/internal/export"
	"github.com/piwi3910/PlanCut/internal/importer"
	"github.com/piwi3910/PlanCut/internal/model"
	"github.com/piwi3910/PlanCut/internal/project"
	"github.com/piwi3910/PlanCut/internal/telemetry"
	"github.com/piwi3910/PlanCut/internal/validate"
)

type cliOptions struct {
	width     float64
	height    float64
	footprint string
	preset    string
	rooms     int
	seed      int64
	algorithm string
	minArea   float64
	maxDepth  int
	doorWidth float64
	typesFile string

	outJSON    string
	outPDF     string
	outDXF     string
	outXLSX    string
	outLabels  string
	statsFlag  bool
	compare    bool
	validateIn string

	saveTemplate string
	fromTemplate string
}

func main() {
	opts := parseFlags()

	// Missing .env is the normal case; only a present-but-broken file matters.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}
	setupLogger()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		slog.Warn("telemetry disabled", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				slog.Warn("telemetry shutdown failed", "error", err)
			}
		}()
	}

	if err := run(ctx, opts); err != nil {
		slog.Error("plancut failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() cliOptions {
	var opts cliOptions
	flag.Float64Var(&opts.width, "width", 0, "footprint width in meters")
	flag.Float64Var(&opts.height, "height", 0, "footprint height in meters")
	flag.StringVar(&opts.footprint, "footprint", "", "DXF file with the building outline (bounding box becomes the footprint)")
	flag.StringVar(&opts.preset, "preset", "", "footprint preset name from the library")
	flag.IntVar(&opts.rooms, "rooms", 0, "requested room count")
	flag.Int64Var(&opts.seed, "seed", 1, "generation seed (same inputs + same seed = same plan)")
	flag.StringVar(&opts.algorithm, "algorithm", "", "partition algorithm: bsp or evolved")
	flag.Float64Var(&opts.minArea, "min-area", 0, "minimum room area in m² (override)")
	flag.IntVar(&opts.maxDepth, "max-depth", 0, "maximum partition depth (override)")
	flag.Float64Var(&opts.doorWidth, "door-width", 0, "door width in meters (override)")
	flag.StringVar(&opts.typesFile, "types", "", "room type table to import (CSV or XLSX)")

	flag.StringVar(&opts.outJSON, "out", "", "write the plan as JSON to this path")
	flag.StringVar(&opts.outPDF, "pdf", "", "write a rendered plan + summary PDF to this path")
	flag.StringVar(&opts.outDXF, "dxf", "", "write a CAD drawing (DXF) to this path")
	flag.StringVar(&opts.outXLSX, "xlsx", "", "write room/opening/wall schedules (XLSX) to this path")
	flag.StringVar(&opts.outLabels, "labels", "", "write QR room labels PDF to this path")
	flag.BoolVar(&opts.statsFlag, "stats", false, "print plan statistics to stdout")
	flag.BoolVar(&opts.compare, "compare", false, "generate the plan under each default scenario and print a comparison table")
	flag.StringVar(&opts.validateIn, "validate", "", "validate an existing plan JSON file and exit")

	flag.StringVar(&opts.saveTemplate, "save-template", "", "save the generation inputs as a named template")
	flag.StringVar(&opts.fromTemplate, "from-template", "", "load footprint, seed and settings from a named template")
	flag.Parse()
	return opts
}

// setupLogger configures slog from LOG_LEVEL and LOG_FORMAT. Logs go to
// stderr so stdout stays clean for -stats and -compare output.
func setupLogger() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func run(ctx context.Context, opts cliOptions) error {
	if opts.validateIn != "" {
		return validateExisting(opts.validateIn)
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		slog.Warn("could not load app config, using defaults", "error", err)
		config = model.DefaultAppConfig()
	}

	settings := model.DefaultSettings()
	config.ApplyToSettings(&settings)

	width, height, roomCount := config.LastWidth, config.LastHeight, config.LastRoomCount
	seed := opts.seed
	var types []model.RoomTypeSpec

	if opts.fromTemplate != "" {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return fmt.Errorf("load templates: %w", err)
		}
		tmpl := store.FindByName(opts.fromTemplate)
		if tmpl == nil {
			return fmt.Errorf("template %q not found", opts.fromTemplate)
		}
		width, height, roomCount = tmpl.Width, tmpl.Height, tmpl.RoomCount
		seed = tmpl.Seed
		settings = tmpl.Settings
		types = tmpl.RoomTypes
		slog.Info("loaded template", "name", tmpl.Name, "id", tmpl.ID)
	}

	width, height, err = resolveFootprint(opts, width, height, &roomCount)
	if err != nil {
		return err
	}
	applyOverrides(opts, &settings, &roomCount, &seed)

	if opts.typesFile != "" {
		types, err = importRoomTypes(opts.typesFile)
		if err != nil {
			return err
		}
	}
	if types == nil {
		types, err = project.LoadRoomTypeTable("")
		if err != nil {
			return err
		}
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	if opts.compare {
		return runComparison(ctx, settings, types, width, height, roomCount, seed)
	}

	slog.Info("generating plan",
		"width", width, "height", height, "rooms", roomCount,
		"seed", seed, "algorithm", settings.Algorithm)

	gen := engine.NewWithTypes(settings, types)
	plan, err := gen.Generate(ctx, width, height, roomCount, seed)
	if err != nil {
		return err
	}
	for _, w := range plan.Metadata.Warnings {
		slog.Warn("generation relaxation", "detail", w)
	}
	if errs := validate.Check(plan); len(errs) > 0 {
		for _, line := range validate.FormatValidationErrors(errs) {
			slog.Error("generated plan failed validation", "detail", line)
		}
	}

	if opts.saveTemplate != "" {
		if err := saveTemplate(opts.saveTemplate, width, height, roomCount, seed, settings, types); err != nil {
			return err
		}
	}

	if err := writeOutputs(opts, plan, settings); err != nil {
		return err
	}

	if opts.statsFlag {
		printStats(plan)
	}

	// Remember the footprint and plan path for next time. Failure to
	// persist preferences is not worth a non-zero exit.
	config.LastWidth, config.LastHeight, config.LastRoomCount = width, height, roomCount
	if opts.outJSON != "" {
		if abs, err := filepath.Abs(opts.outJSON); err == nil {
			config.AddRecentPlan(abs)
		}
	}
	if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
		slog.Warn("could not save app config", "error", err)
	}
	return nil
}

// resolveFootprint picks the footprint source in priority order:
// DXF file, library preset, explicit -width/-height, saved defaults.
func resolveFootprint(opts cliOptions, width, height float64, roomCount *int) (float64, float64, error) {
	switch {
	case opts.footprint != "":
		result := importer.ImportFootprintDXF(opts.footprint)
		if len(result.Errors) > 0 {
			return 0, 0, fmt.Errorf("footprint import: %s", strings.Join(result.Errors, "; "))
		}
		for _, w := range result.Warnings {
			slog.Warn("footprint import", "detail", w)
		}
		slog.Info("imported footprint", "file", opts.footprint,
			"width", result.Width, "height", result.Height)
		return result.Width, result.Height, nil

	case opts.preset != "":
		library, _, err := project.LoadOrCreateLibrary()
		if err != nil {
			return 0, 0, fmt.Errorf("load library: %w", err)
		}
		preset := library.FindFootprintByName(opts.preset)
		if preset == nil {
			return 0, 0, fmt.Errorf("footprint preset %q not found (available: %s)",
				opts.preset, strings.Join(library.FootprintNames(), ", "))
		}
		*roomCount = preset.RoomCount
		return preset.Width, preset.Height, nil

	default:
		if opts.width > 0 {
			width = opts.width
		}
		if opts.height > 0 {
			height = opts.height
		}
		return width, height, nil
	}
}

func applyOverrides(opts cliOptions, settings *model.PlanSettings, roomCount *int, seed *int64) {
	if opts.rooms > 0 {
		*roomCount = opts.rooms
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			*seed = opts.seed
		}
	})
	if opts.algorithm != "" {
		settings.Algorithm = model.Algorithm(opts.algorithm)
	}
	if opts.minArea > 0 {
		settings.MinRoomArea = opts.minArea
	}
	if opts.maxDepth > 0 {
		settings.MaxDepth = opts.maxDepth
	}
	if opts.doorWidth > 0 {
		settings.DoorWidth = opts.doorWidth
	}
}

func importRoomTypes(path string) ([]model.RoomTypeSpec, error) {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportExcel(path)
	default:
		return nil, fmt.Errorf("unsupported room type table format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("room type import: %s", strings.Join(result.Errors, "; "))
	}
	for _, w := range result.Warnings {
		slog.Warn("room type import", "detail", w)
	}
	if len(result.Specs) == 0 {
		return nil, fmt.Errorf("room type table %s contains no usable rows", path)
	}
	slog.Info("imported room types", "file", path, "count", len(result.Specs))
	return result.Specs, nil
}

func validateExisting(path string) error {
	plan, err := project.LoadPlan(path)
	if err != nil {
		return err
	}
	errs := validate.Check(plan)
	if len(errs) == 0 {
		fmt.Printf("%s: valid (%d rooms, %d connections)\n", path, len(plan.Rooms), len(plan.Connections))
		return nil
	}
	for _, line := range validate.FormatValidationErrors(errs) {
		fmt.Printf("%s: %s\n", path, line)
	}
	return fmt.Errorf("%d validation error(s)", len(errs))
}

func runComparison(ctx context.Context, settings model.PlanSettings, types []model.RoomTypeSpec, width, height float64, roomCount int, seed int64) error {
	scenarios := engine.BuildDefaultScenarios(settings)
	results, err := engine.CompareScenarios(ctx, scenarios, width, height, roomCount, seed, types)
	if err != nil {
		return err
	}
	fmt.Printf("%-24s %6s %8s %8s %8s %7s %7s %8s\n",
		"Scenario", "Rooms", "MeanA", "Balance", "Doors", "Windows", "Degr", "Score")
	for _, r := range results {
		fmt.Printf("%-24s %6d %8.2f %8.3f %8d %7d %7d %8.3f\n",
			r.Scenario.Name,
			r.Stats.RoomCount,
			r.Stats.MeanRoomArea,
			r.Stats.BalanceScore,
			r.Stats.DoorCount,
			r.Stats.WindowCount,
			r.Stats.DegradedCount,
			r.Score)
	}
	return nil
}

func saveTemplate(name string, width, height float64, roomCount int, seed int64, settings model.PlanSettings, types []model.RoomTypeSpec) error {
	store, err := project.LoadDefaultTemplates()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	tmpl := model.NewPlanTemplate(name, "", model.Project{
		Name:      name,
		Width:     width,
		Height:    height,
		RoomCount: roomCount,
		Seed:      seed,
		Settings:  settings,
		RoomTypes: types,
	})
	store.Add(tmpl)
	if err := project.SaveDefaultTemplates(store); err != nil {
		return fmt.Errorf("save templates: %w", err)
	}
	slog.Info("saved template", "name", name, "id", tmpl.ID)
	return nil
}

func writeOutputs(opts cliOptions, plan model.FloorPlan, settings model.PlanSettings) error {
	if opts.outJSON != "" {
		if err := project.SavePlan(opts.outJSON, plan); err != nil {
			return err
		}
		slog.Info("wrote plan", "path", opts.outJSON)
	}
	if opts.outPDF != "" {
		if err := export.ExportPDF(opts.outPDF, plan, settings); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		slog.Info("wrote PDF", "path", opts.outPDF)
	}
	if opts.outDXF != "" {
		if err := export.ExportDXF(opts.outDXF, plan); err != nil {
			return fmt.Errorf("dxf export: %w", err)
		}
		slog.Info("wrote DXF", "path", opts.outDXF)
	}
	if opts.outXLSX != "" {
		if err := export.ExportXLSX(opts.outXLSX, plan); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
		slog.Info("wrote XLSX", "path", opts.outXLSX)
	}
	if opts.outLabels != "" {
		if err := export.ExportRoomLabels(opts.outLabels, plan); err != nil {
			return fmt.Errorf("label export: %w", err)
		}
		slog.Info("wrote room labels", "path", opts.outLabels)
	}
	return nil
}

func printStats(plan model.FloorPlan) {
	stats := model.ComputePlanStats(plan)
	walls := model.ComputeWallStats(plan)

	fmt.Printf("Plan %s (%gm x %gm, seed %d, %s)\n",
		plan.ID, plan.Dimensions.Width, plan.Dimensions.Height,
		plan.Metadata.Seed, plan.Metadata.Algorithm)
	fmt.Printf("  Rooms:        %d (mean %.2f m², min %.2f, max %.2f, balance %.3f)\n",
		stats.RoomCount, stats.MeanRoomArea, stats.MinRoomArea, stats.MaxRoomArea, stats.BalanceScore)
	fmt.Printf("  Openings:     %d doors, %d windows\n", stats.DoorCount, stats.WindowCount)
	fmt.Printf("  Connections:  %d (%d degraded, %d unreachable rooms)\n",
		stats.ConnectionCount, stats.DegradedCount, stats.UnreachableCount)
	fmt.Printf("  Walls:        %.2f m shared, %.2f m exterior, %.2f m net\n",
		walls.TotalShared, walls.TotalExterior, walls.TotalNet)

	typeNames := make([]string, 0, len(stats.AreaByType))
	for t := range stats.AreaByType {
		typeNames = append(typeNames, string(t))
	}
	sort.Strings(typeNames)
	for _, t := range typeNames {
		fmt.Printf("  %-13s %.2f m²\n", t+":", stats.AreaByType[model.RoomType(t)])
	}
	for _, w := range plan.Metadata.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
