package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSchema_Valid(t *testing.T) {
	if err := DefaultSchema().Validate(); err != nil {
		t.Fatalf("default schema must validate: %v", err)
	}
	if got := DefaultSchema().Width(); got != 5 {
		t.Fatalf("expected width 5, got %d", got)
	}
}

func TestSchema_RejectsDuplicateColumns(t *testing.T) {
	schema := DefaultSchema()
	schema.Columns.TargetID = schema.Columns.SourceID
	if err := schema.Validate(); err == nil {
		t.Fatal("expected duplicate column error")
	}
}

func TestSchema_RejectsBadDelimiter(t *testing.T) {
	schema := DefaultSchema()
	schema.Delimiter = ";;"
	if err := schema.Validate(); err == nil {
		t.Fatal("expected delimiter length error")
	}

	schema.Delimiter = ""
	if err := schema.Validate(); err == nil {
		t.Fatal("expected missing delimiter error")
	}
}

func TestLoadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	content := `
delimiter: ","
has_header: false
columns:
  source_id: 2
  source_name: 3
  kind: 1
  target_id: 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	schema, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("LoadSchema: %v", err)
	}
	if schema.Delimiter != "," || schema.HasHeader {
		t.Fatalf("unexpected schema: %+v", schema)
	}
	if schema.Columns.Age != nil {
		t.Fatalf("expected no age column, got %v", *schema.Columns.Age)
	}
	if schema.Width() != 4 {
		t.Fatalf("expected width 4, got %d", schema.Width())
	}
}

func TestLoadSchema_InvalidMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	content := `
delimiter: ";"
columns:
  source_id: 0
  source_name: 0
  kind: 1
  target_id: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	if _, err := LoadSchema(path); err == nil {
		t.Fatal("expected validation error for duplicate indices")
	}
}
