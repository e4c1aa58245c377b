package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// Dataset contains the generated persons and the relationship records that
// reference them.
type Dataset struct {
	Persons []domain.Person
	Records []domain.Record
}

// Generator produces synthetic genealogy data aligned with the dataset schema:
// generations of persons linked by Father/Mother/Spouse records. Identical
// seeds yield identical datasets.
type Generator struct {
	cfg   Config
	rand  *rand.Rand
	names nameFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.NumPersons <= 0 {
		cfg.NumPersons = DefaultConfig().NumPersons
	}
	if cfg.Generations <= 0 {
		cfg.Generations = DefaultConfig().Generations
	}
	if cfg.Generations > cfg.NumPersons {
		cfg.Generations = cfg.NumPersons
	}
	if cfg.FatherChance <= 0 {
		cfg.FatherChance = DefaultConfig().FatherChance
	}
	if cfg.MotherChance <= 0 {
		cfg.MotherChance = DefaultConfig().MotherChance
	}
	if cfg.SpouseChance < 0 {
		cfg.SpouseChance = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(cfg.Seed)),
		names: defaultNameFragments(),
	}
}

// Generate synthesises the family forest. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	perGeneration := g.cfg.NumPersons / g.cfg.Generations
	if perGeneration == 0 {
		perGeneration = 1
	}

	var (
		persons     []domain.Person
		records     []domain.Record
		generations [][]int // indexes into persons per generation
		nextID      = domain.PersonID(1)
		line        = 2 // line 1 is the header row
	)

	emit := func(source domain.Person, kind string, target domain.PersonID) {
		records = append(records, domain.Record{
			SourceID:   source.ID,
			SourceName: source.Name,
			SourceAge:  source.Age,
			Kind:       kind,
			TargetID:   target,
			Line:       line,
		})
		line++
	}

	for gen := 0; gen < g.cfg.Generations; gen++ {
		count := perGeneration
		if gen == g.cfg.Generations-1 {
			count = g.cfg.NumPersons - perGeneration*(g.cfg.Generations-1)
		}

		var indexes []int
		for i := 0; i < count; i++ {
			if err := ctx.Err(); err != nil {
				return Dataset{}, err
			}

			person := domain.Person{ID: nextID}
			nextID++

			age := g.randomAge(gen)
			person.Age = &age

			fatherIdx, motherIdx := -1, -1
			if gen > 0 {
				previous := generations[gen-1]
				if g.rand.Float64() < g.cfg.FatherChance {
					fatherIdx = previous[g.rand.Intn(len(previous))]
				}
				if g.rand.Float64() < g.cfg.MotherChance {
					candidate := previous[g.rand.Intn(len(previous))]
					if candidate != fatherIdx {
						motherIdx = candidate
					}
				}
			}

			person.Name = g.randomName(persons, fatherIdx)
			persons = append(persons, person)
			indexes = append(indexes, len(persons)-1)

			if fatherIdx >= 0 {
				emit(persons[fatherIdx], "Father", person.ID)
			}
			if motherIdx >= 0 {
				emit(persons[motherIdx], "Mother", person.ID)
			}
		}
		generations = append(generations, indexes)

		// Pair some persons within the generation.
		for i := 0; i+1 < len(indexes); i += 2 {
			if g.rand.Float64() < g.cfg.SpouseChance {
				a := persons[indexes[i]]
				b := persons[indexes[i+1]]
				emit(a, "Spouse", b.ID)
				emit(b, "Spouse", a.ID)
			}
		}
	}

	return Dataset{Persons: persons, Records: records}, nil
}

func (g *Generator) randomAge(gen int) int {
	// Older generations first; ~25 years per generation plus jitter.
	base := (g.cfg.Generations - gen) * 25
	return base + g.rand.Intn(10)
}

func (g *Generator) randomName(persons []domain.Person, fatherIdx int) string {
	given := g.names.given[g.rand.Intn(len(g.names.given))]
	surname := g.names.surnames[g.rand.Intn(len(g.names.surnames))]
	if fatherIdx >= 0 {
		if inherited := surnameOf(persons[fatherIdx].Name); inherited != "" {
			surname = inherited
		}
	}
	return fmt.Sprintf("%s %s", given, surname)
}

func surnameOf(full string) string {
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == ' ' {
			return full[i+1:]
		}
	}
	return ""
}

type nameFragments struct {
	given    []string
	surnames []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		given: []string{
			"Anna", "Bruno", "Clara", "David", "Elena", "Franz", "Greta",
			"Henrik", "Ida", "Jonas", "Karla", "Lukas", "Marta", "Niklas",
			"Olga", "Paul", "Rosa", "Stefan", "Theresa", "Viktor",
		},
		surnames: []string{
			"Achterberg", "Brandt", "Claussen", "Dreyer", "Eichel",
			"Falkner", "Grunewald", "Hartmann", "Imhof", "Jaeger",
			"Kessler", "Lindemann", "Moser", "Neumann", "Ostermann",
		},
	}
}
