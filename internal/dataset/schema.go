package dataset

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Columns maps logical record fields to zero-based column positions in the
// dataset. Age is optional; nil means the dataset carries no age column.
type Columns struct {
	SourceID   int  `yaml:"source_id" validate:"min=0"`
	SourceName int  `yaml:"source_name" validate:"min=0"`
	Age        *int `yaml:"age,omitempty"`
	Kind       int  `yaml:"kind" validate:"min=0"`
	TargetID   int  `yaml:"target_id" validate:"min=0"`
}

// Schema describes how to slice one dataset line into a record.
type Schema struct {
	Delimiter string  `yaml:"delimiter" validate:"required,len=1"`
	HasHeader bool    `yaml:"has_header"`
	Columns   Columns `yaml:"columns"`
}

// DefaultSchema matches the original dataset layout: semicolon-delimited with
// a header row, columns id;name;age;kind;relative.
func DefaultSchema() Schema {
	age := 2
	return Schema{
		Delimiter: ";",
		HasHeader: true,
		Columns: Columns{
			SourceID:   0,
			SourceName: 1,
			Age:        &age,
			Kind:       3,
			TargetID:   4,
		},
	}
}

// LoadSchema reads and validates a YAML schema mapping file.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("read schema %s: %w", path, err)
	}
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return Schema{}, fmt.Errorf("decode schema %s: %w", path, err)
	}
	if err := schema.Validate(); err != nil {
		return Schema{}, fmt.Errorf("schema %s: %w", path, err)
	}
	return schema, nil
}

// Validate checks structural constraints and column uniqueness.
func (s Schema) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if s.Columns.Age != nil && *s.Columns.Age < 0 {
		return fmt.Errorf("age column index %d is negative", *s.Columns.Age)
	}
	seen := make(map[int]string, 5)
	check := func(name string, idx int) error {
		if prev, ok := seen[idx]; ok {
			return fmt.Errorf("columns %s and %s share index %d", prev, name, idx)
		}
		seen[idx] = name
		return nil
	}
	cols := s.Columns
	if err := check("source_id", cols.SourceID); err != nil {
		return err
	}
	if err := check("source_name", cols.SourceName); err != nil {
		return err
	}
	if cols.Age != nil {
		if err := check("age", *cols.Age); err != nil {
			return err
		}
	}
	if err := check("kind", cols.Kind); err != nil {
		return err
	}
	return check("target_id", cols.TargetID)
}

// Width returns the minimum number of fields a data line must split into.
func (s Schema) Width() int {
	max := s.Columns.SourceID
	for _, idx := range []int{s.Columns.SourceName, s.Columns.Kind, s.Columns.TargetID} {
		if idx > max {
			max = idx
		}
	}
	if s.Columns.Age != nil && *s.Columns.Age > max {
		max = *s.Columns.Age
	}
	return max + 1
}

var validate = validator.New()
