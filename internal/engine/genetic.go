package engine

import (
	"context"
	"math/rand"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/piwi3910/PlanCut/internal/model"
	"github.com/piwi3910/PlanCut/internal/telemetry"
)

// GeneticConfig holds parameters for the evolutionary plan search.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentSize int
	EliteCount     int
	GenomeLength   int
}

// DefaultGeneticConfig returns sensible default parameters.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 40,
		Generations:    60,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
		GenomeLength:   128,
	}
}

// chromosome represents a candidate solution: the stream of split decisions
// that drives one partition run. Every gene is a value in [0, 1], consumed
// in order wherever the partitioner would draw a random number.
type chromosome struct {
	genes   []float64
	fitness float64
}

// genomeSource replays recorded decisions to the partitioner and falls back
// to a seeded stream once the genome is exhausted. It satisfies splitSource.
type genomeSource struct {
	genes    []float64
	pos      int
	fallback *rand.Rand
}

func (g *genomeSource) Float64() float64 {
	if g.pos < len(g.genes) {
		v := g.genes[g.pos]
		g.pos++
		return v
	}
	return g.fallback.Float64()
}

// geneticPlanner implements the genetic algorithm for plan search.
type geneticPlanner struct {
	settings  model.PlanSettings
	config    GeneticConfig
	types     []model.RoomTypeSpec
	width     float64
	height    float64
	roomCount int
	seed      int64
	rng       *rand.Rand
}

// newGeneticPlanner creates a new genetic planner instance.
func newGeneticPlanner(settings model.PlanSettings, config GeneticConfig, types []model.RoomTypeSpec, width, height float64, roomCount int, seed int64) *geneticPlanner {
	return &geneticPlanner{
		settings:  settings,
		config:    config,
		types:     types,
		width:     width,
		height:    height,
		roomCount: roomCount,
		seed:      seed,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// evolve runs the genetic algorithm and returns the best plan found.
func (g *geneticPlanner) evolve() model.FloorPlan {
	// Initialize population
	population := g.initPopulation()

	// Evaluate initial population
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	// Evolution loop
	for gen := 0; gen < g.config.Generations; gen++ {
		// Sort by fitness descending (higher is better)
		sort.Slice(population, func(i, j int) bool {
			return population[i].fitness > population[j].fitness
		})

		newPop := make([]chromosome, 0, g.config.PopulationSize)

		// Elitism: carry over the best individuals unchanged
		eliteCount := g.config.EliteCount
		if eliteCount > len(population) {
			eliteCount = len(population)
		}
		for i := 0; i < eliteCount; i++ {
			newPop = append(newPop, g.copyChromosome(population[i]))
		}

		// Fill rest of population with offspring
		for len(newPop) < g.config.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)

			child := g.crossover(parent1, parent2)

			g.mutate(&child)

			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}

		population = newPop
	}

	// Find best individual
	sort.Slice(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})

	return g.decode(population[0])
}

// initPopulation creates the initial random population.
func (g *geneticPlanner) initPopulation() []chromosome {
	population := make([]chromosome, g.config.PopulationSize)

	for i := range population {
		genes := make([]float64, g.config.GenomeLength)
		for j := range genes {
			genes[j] = g.rng.Float64()
		}
		population[i] = chromosome{genes: genes}
	}

	// Also seed one chromosome that replays the plain partition stream,
	// so the search starts from the direct BSP result
	if g.config.PopulationSize > 0 {
		replay := g.createReplayChromosome()
		population[0] = replay
	}

	return population
}

// createReplayChromosome records the decision stream the direct partitioner
// would draw for this seed. Decoding it reproduces the plain BSP plan.
func (g *geneticPlanner) createReplayChromosome() chromosome {
	src := rand.New(rand.NewSource(g.seed))
	genes := make([]float64, g.config.GenomeLength)
	for i := range genes {
		genes[i] = src.Float64()
	}
	return chromosome{genes: genes}
}

// evaluate computes the fitness of a chromosome by decoding it into a plan
// and scoring the layout.
func (g *geneticPlanner) evaluate(c chromosome) float64 {
	return ScorePlan(g.decode(c))
}

// decode converts a chromosome into an actual floor plan by running the
// partition pipeline against the recorded decision stream. The fallback
// stream continues where the genome ends, positioned as if the genome's
// draws had come from the seed stream itself.
func (g *geneticPlanner) decode(c chromosome) model.FloorPlan {
	fallback := rand.New(rand.NewSource(g.seed))
	for i := 0; i < len(c.genes); i++ {
		fallback.Float64()
	}
	src := &genomeSource{genes: c.genes, fallback: fallback}
	return buildPlan(g.settings, g.types, g.width, g.height, g.roomCount, g.seed, src)
}

// tournamentSelect picks the best individual from a random tournament.
func (g *geneticPlanner) tournamentSelect(population []chromosome) chromosome {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return g.copyChromosome(best)
}

// crossover splices two decision streams at a single random cut point.
func (g *geneticPlanner) crossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.genes)
	if n <= 2 {
		return g.copyChromosome(parent1)
	}

	point := 1 + g.rng.Intn(n-1)

	child := chromosome{genes: make([]float64, n)}
	copy(child.genes[:point], parent1.genes[:point])
	copy(child.genes[point:], parent2.genes[point:])

	return child
}

// mutate applies random mutations to a chromosome.
func (g *geneticPlanner) mutate(c *chromosome) {
	n := len(c.genes)
	if n < 2 {
		return
	}

	// Perturb mutation: nudge one decision by a small amount
	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		v := c.genes[i] + (g.rng.Float64()-0.5)*0.2
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		c.genes[i] = v
	}

	// Reroll mutation: replace one decision outright
	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		c.genes[i] = g.rng.Float64()
	}

	// Inversion mutation: reverse a segment of the stream (less frequent)
	if g.rng.Float64() < g.config.MutationRate*0.5 {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
			i++
			j--
		}
	}
}

// copyChromosome creates a deep copy of a chromosome.
func (g *geneticPlanner) copyChromosome(c chromosome) chromosome {
	genes := make([]float64, len(c.genes))
	copy(genes, c.genes)
	return chromosome{genes: genes, fitness: c.fitness}
}

// EvolvePlan runs the evolutionary plan search. The initial population
// always contains the direct partition result for the same seed, so the
// returned plan never scores below the plain BSP plan.
func EvolvePlan(ctx context.Context, settings model.PlanSettings, types []model.RoomTypeSpec, width, height float64, roomCount int, seed int64) model.FloorPlan {
	tracer := telemetry.Tracer("engine")
	_, span := tracer.Start(ctx, "plan.evolve")
	defer span.End()

	config := DefaultGeneticConfig()

	// Scale the search for larger plans
	if roomCount > 8 {
		config.Generations = 90
	}
	if roomCount > 16 {
		config.Generations = 120
		config.PopulationSize = 60
	}

	ga := newGeneticPlanner(settings, config, types, width, height, roomCount, seed)
	plan := ga.evolve()

	span.SetAttributes(
		attribute.Int("evolve.population", config.PopulationSize),
		attribute.Int("evolve.generations", config.Generations),
		attribute.Float64("evolve.best_score", ScorePlan(plan)),
	)

	return plan
}
