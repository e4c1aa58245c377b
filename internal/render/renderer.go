// Package render serializes an ancestry path into the program's output format:
// one line per hop ("<Name>(<n>) is <Kind> of") plus a terminal line with no
// relationship phrase. The parenthesized value is the person's age when known,
// otherwise their identifier.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

// Lines renders the path as ordered output lines. A zero-hop path yields a
// single line for the one person.
func Lines(path domain.AncestryPath) []string {
	lines := make([]string, 0, len(path.Steps))
	for i, step := range path.Steps {
		if i < len(path.Steps)-1 {
			lines = append(lines, fmt.Sprintf("%s is %s of", formatPerson(step.Person), step.Kind))
		} else {
			lines = append(lines, formatPerson(step.Person))
		}
	}
	return lines
}

// Write renders the path to w, one line per hop, newline-terminated.
func Write(w io.Writer, path domain.AncestryPath) error {
	lines := Lines(path)
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func formatPerson(p domain.Person) string {
	if p.Age != nil {
		return fmt.Sprintf("%s(%d)", p.Name, *p.Age)
	}
	return fmt.Sprintf("%s(%s)", p.Name, p.ID)
}
