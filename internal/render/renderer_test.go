package render

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/Voultapher/heritage-pathfind/internal/domain"
)

func TestLines_HopsAndTerminal(t *testing.T) {
	age := 44
	path := domain.AncestryPath{
		Steps: []domain.PathStep{
			{Person: domain.Person{ID: 20, Name: "Name A"}, Kind: "Father"},
			{Person: domain.Person{ID: 6, Name: "Name B", Age: &age}, Kind: "Mother"},
			{Person: domain.Person{ID: 1, Name: "Name C"}},
		},
	}

	want := []string{
		"Name A(20) is Father of",
		"Name B(44) is Mother of",
		"Name C(1)",
	}
	if got := Lines(path); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines:\n got %q\nwant %q", got, want)
	}
}

func TestLines_ZeroHop(t *testing.T) {
	path := domain.AncestryPath{
		Steps: []domain.PathStep{
			{Person: domain.Person{ID: 7, Name: "Solo"}},
		},
	}
	want := []string{"Solo(7)"}
	if got := Lines(path); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines: %q", got)
	}
}

func TestWrite(t *testing.T) {
	path := domain.AncestryPath{
		Steps: []domain.PathStep{
			{Person: domain.Person{ID: 20, Name: "Name A"}, Kind: "Father"},
			{Person: domain.Person{ID: 1, Name: "Name C"}},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "Name A(20) is Father of\nName C(1)\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestWrite_EmptyPath(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, domain.AncestryPath{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty path, got %q", buf.String())
	}
}
