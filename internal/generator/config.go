package generator

// Config drives the synthetic genealogy generator.
type Config struct {
	NumPersons   int
	Generations  int
	FatherChance float64
	MotherChance float64
	SpouseChance float64
	Seed         int64
}

// DefaultConfig returns baseline settings producing a connected family forest
// with a few isolated branches.
func DefaultConfig() Config {
	return Config{
		NumPersons:   1000,
		Generations:  6,
		FatherChance: 0.9,
		MotherChance: 0.85,
		SpouseChance: 0.4,
		Seed:         42,
	}
}
