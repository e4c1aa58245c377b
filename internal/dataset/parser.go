package dataset

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Parser turns dataset lines into validated records according to a schema
// mapping. It is stateless apart from the schema; parsing fails fast on the
// first bad line so a partial graph is never built from rejected data.
type Parser struct {
	schema Schema
}

// NewParser validates the schema and returns a Parser for it.
func NewParser(schema Schema) (*Parser, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset schema: %w", err)
	}
	return &Parser{schema: schema}, nil
}

// ParseAll reads every line from r and returns the records in file order.
// Line numbers are 1-based and count the header row when present.
func (p *Parser) ParseAll(r io.Reader) ([]domain.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []domain.Record
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 && p.schema.HasHeader {
			continue
		}
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		record, err := p.ParseLine(raw, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return records, nil
}

// ParseLine validates and converts a single data line. line is the 1-based
// position reported in parse failures.
func (p *Parser) ParseLine(raw string, line int) (domain.Record, error) {
	if !utf8.ValidString(raw) {
		return domain.Record{}, &domain.ParseError{
			Kind:   domain.MalformedRecord,
			Line:   line,
			Detail: "invalid UTF-8 byte sequence",
		}
	}

	fields := strings.Split(raw, p.schema.Delimiter)
	if len(fields) < p.schema.Width() {
		return domain.Record{}, &domain.ParseError{
			Kind:   domain.MalformedRecord,
			Line:   line,
			Detail: fmt.Sprintf("expected at least %d fields, got %d", p.schema.Width(), len(fields)),
		}
	}

	cols := p.schema.Columns
	sourceID, err := p.requiredID(fields, cols.SourceID, "source_id", line)
	if err != nil {
		return domain.Record{}, err
	}
	targetID, err := p.requiredID(fields, cols.TargetID, "target_id", line)
	if err != nil {
		return domain.Record{}, err
	}

	kind := sanitize(fields[cols.Kind])
	if kind == "" {
		return domain.Record{}, &domain.ParseError{
			Kind:   domain.MissingField,
			Line:   line,
			Field:  "kind",
			Detail: "required field is empty",
		}
	}

	record := domain.Record{
		SourceID:   sourceID,
		SourceName: sanitize(fields[cols.SourceName]),
		Kind:       kind,
		TargetID:   targetID,
		Line:       line,
	}

	if cols.Age != nil {
		if raw := strings.TrimSpace(fields[*cols.Age]); raw != "" {
			age, err := strconv.Atoi(raw)
			if err != nil || age < 0 {
				return domain.Record{}, &domain.ParseError{
					Kind:   domain.InvalidMetadata,
					Line:   line,
					Field:  "age",
					Detail: fmt.Sprintf("%q is not a non-negative integer", raw),
				}
			}
			record.SourceAge = &age
		}
	}

	return record, nil
}

func (p *Parser) requiredID(fields []string, idx int, name string, line int) (domain.PersonID, error) {
	raw := strings.TrimSpace(fields[idx])
	if raw == "" {
		return 0, &domain.ParseError{
			Kind:   domain.MissingField,
			Line:   line,
			Field:  name,
			Detail: "required field is empty",
		}
	}
	id, err := domain.ParsePersonID(raw)
	if err != nil {
		return 0, &domain.ParseError{
			Kind:   domain.MalformedRecord,
			Line:   line,
			Field:  name,
			Detail: fmt.Sprintf("%q is not a valid person identifier", raw),
		}
	}
	return id, nil
}

// sanitize collapses whitespace and trims the result.
func sanitize(value string) string {
	value = whitespaceRegex.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}
