package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Voultapher/heritage-pathfind/internal/dataset"
	"github.com/Voultapher/heritage-pathfind/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		persons      = flag.Int("persons", cfg.NumPersons, "number of persons to generate")
		generations  = flag.Int("generations", cfg.Generations, "number of generations in the family forest")
		fatherChance = flag.Float64("father-chance", cfg.FatherChance, "probability a person has a known father")
		motherChance = flag.Float64("mother-chance", cfg.MotherChance, "probability a person has a known mother")
		spouseChance = flag.Float64("spouse-chance", cfg.SpouseChance, "probability of spouse links within a generation")
		seed         = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		output       = flag.String("output", "data/relationships.csv", "path of the generated dataset")
		schemaPath   = flag.String("schema", "", "Optional YAML schema mapping for the output columns")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumPersons:   *persons,
		Generations:  *generations,
		FatherChance: clampProbability(*fatherChance),
		MotherChance: clampProbability(*motherChance),
		SpouseChance: clampProbability(*spouseChance),
		Seed:         *seed,
	}

	schema := dataset.DefaultSchema()
	if *schemaPath != "" {
		loaded, err := dataset.LoadSchema(*schemaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load schema: %v\n", err)
			os.Exit(1)
		}
		schema = loaded
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	ds, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if err := generator.WriteDataset(ds.Records, *output, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d persons and %d relationship records into %s\n",
		len(ds.Persons), len(ds.Records), *output)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
