// Command ga runs the genetic engine against two worked examples:
// OneMax (maximize the number of set bits in an integer vector) and a
// traveling-salesman route (minimize tour distance via permutation
// codec, order crossover, and swap mutation). Generalizes the
// teacher's cmd/ga/main.go, which drove the old ga.GA directly against
// OneMaxChromosome/TSPChromosome; here both examples are expressed
// purely through engine.Problem/Codec/Alter instances.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/aram/geneticengine/engine"
	"github.com/aram/geneticengine/genome"
	"github.com/aram/geneticengine/objective"
	"github.com/aram/geneticengine/operators"
	"github.com/aram/geneticengine/random"
)

func main() {
	example := flag.String("example", "onemax", "the example to run (onemax or tsp)")
	generations := flag.Int("generations", 100, "number of generations to evolve")
	flag.Parse()

	switch *example {
	case "onemax":
		runOneMax(*generations)
	case "tsp":
		runTSP(*generations)
	default:
		log.Fatalf("unknown example: %s", *example)
	}
}

func runOneMax(generations int) {
	const geneCount = 20
	rng := random.New()

	codec := genome.NewFlatIntVectorCodec(rng, geneCount, 0, 1)
	problem := engine.NewProblem[[]int](codec, func(bits []int) genome.Score {
		sum := 0
		for _, b := range bits {
			sum += b
		}
		return genome.ScoreFromInt(sum)
	})

	e, err := engine.New[[]int](
		problem,
		engine.WithObjective[[]int](objective.Single(objective.Maximize)),
		engine.WithPopulationSize[[]int](100),
		engine.WithAlterers[[]int](
			operators.NewUniformMutator(0.01),
			operators.NewUniformCrossover(0.8),
		),
	)
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}

	ctx, err := e.Run(generations)
	if err != nil {
		log.Fatalf("failed to run genetic algorithm: %v", err)
	}

	bitCount := 0
	for _, b := range ctx.Best {
		bitCount += b
	}
	fmt.Printf("best bit count: %d (of %d)\n", bitCount, geneCount)
	fmt.Printf("best score: %v\n", ctx.Score.AsInt())
}

func runTSP(generations int) {
	cities, err := loadCities("examples/tsp.csv")
	if err != nil {
		log.Printf("falling back to built-in cities (%v)", err)
		cities = sampleCities()
	}
	if len(cities) < 2 {
		log.Fatalf("need at least 2 cities for TSP, got %d", len(cities))
	}
	fmt.Printf("running TSP over %d cities\n", len(cities))

	rng := random.New()
	codec := genome.NewPermutationCodec(rng, cities)
	problem := engine.NewProblem[[]City](codec, func(route []City) genome.Score {
		return genome.ScoreFromFloat32(float32(routeDistance(route)))
	})

	e, err := engine.New[[]City](
		problem,
		engine.WithObjective[[]City](objective.Single(objective.Minimize)),
		engine.WithPopulationSize[[]City](100),
		engine.WithOffspringFraction[[]City](0.85),
		engine.WithAlterers[[]City](
			operators.NewSwapMutator(0.02),
			operators.NewOrderCrossover(0.85),
		),
	)
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}

	ctx, err := e.Run(generations)
	if err != nil {
		log.Fatalf("failed to run genetic algorithm: %v", err)
	}

	fmt.Printf("best route distance: %.2f\n", routeDistance(ctx.Best))

	if err := VisualizeTSP(ctx.Best, "tsp_route.svg"); err != nil {
		log.Fatalf("failed to visualize TSP route: %v", err)
	}
	fmt.Println("TSP route visualization saved to tsp_route.svg")
}

func routeDistance(route []City) float64 {
	if len(route) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(route)-1; i++ {
		total += distance(route[i], route[i+1])
	}
	total += distance(route[len(route)-1], route[0])
	return total
}

func distance(a, b City) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func sampleCities() []City {
	return []City{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 10, Y: 5},
		{Name: "C", X: 20, Y: 0},
		{Name: "D", X: 15, Y: 15},
		{Name: "E", X: 5, Y: 12},
		{Name: "F", X: 25, Y: 20},
	}
}

func loadCities(filename string) ([]City, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file must contain at least a header and one data row")
	}

	cities := make([]City, 0, len(records)-1)
	for i, record := range records {
		if i == 0 {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("row %d: expected at least 3 columns (name, x, y), got %d", i+1, len(record))
		}
		name := record[0]
		if name == "" {
			return nil, fmt.Errorf("row %d: city name cannot be empty", i+1)
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid x coordinate %q: %w", i+1, record[1], err)
		}
		y, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid y coordinate %q: %w", i+1, record[2], err)
		}
		cities = append(cities, City{Name: name, X: x, Y: y})
	}
	return cities, nil
}
