package generator

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Voultapher/heritage-pathfind/internal/dataset"
	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// WriteDataset serializes the records as a relationship CSV honoring the
// provided schema mapping, so the output can be fed straight back into the
// parser or into the ingest command.
func WriteDataset(records []domain.Record, path string, schema dataset.Schema) error {
	if err := schema.Validate(); err != nil {
		return fmt.Errorf("invalid dataset schema: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if schema.HasHeader {
		if err := writeRow(w, headerRow(schema), schema.Delimiter); err != nil {
			return err
		}
	}
	for _, record := range records {
		if err := writeRow(w, dataRow(record, schema), schema.Delimiter); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func headerRow(schema dataset.Schema) []string {
	row := make([]string, schema.Width())
	cols := schema.Columns
	row[cols.SourceID] = "PersonID"
	row[cols.SourceName] = "Person"
	if cols.Age != nil {
		row[*cols.Age] = "Age"
	}
	row[cols.Kind] = "Relationship"
	row[cols.TargetID] = "RelativeID"
	return row
}

func dataRow(record domain.Record, schema dataset.Schema) []string {
	row := make([]string, schema.Width())
	cols := schema.Columns
	row[cols.SourceID] = record.SourceID.String()
	row[cols.SourceName] = record.SourceName
	if cols.Age != nil && record.SourceAge != nil {
		row[*cols.Age] = strconv.Itoa(*record.SourceAge)
	}
	row[cols.Kind] = record.Kind
	row[cols.TargetID] = record.TargetID.String()
	return row
}

func writeRow(w *bufio.Writer, fields []string, delimiter string) error {
	for i, field := range fields {
		if i > 0 {
			if _, err := w.WriteString(delimiter); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(field); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
