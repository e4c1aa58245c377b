package domain

import "strconv"

// PersonID is the dataset's primary key for a person.
type PersonID int64

// ParsePersonID parses a decimal person identifier.
func ParsePersonID(raw string) (PersonID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return PersonID(id), nil
}

func (id PersonID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Person aggregates the canonical person node data. Name and Age are optional:
// a person referenced only as the target of a relationship carries no
// attributes until a record names them as the source.
type Person struct {
	ID   PersonID
	Name string
	Age  *int
}

// Record is one validated row of the relationship dataset: the source person's
// attributes plus a directed link (ancestor -> descendant) to the target.
// Line is the 1-based position in the input file, kept for diagnostics.
type Record struct {
	SourceID   PersonID
	SourceName string
	SourceAge  *int
	Kind       string
	TargetID   PersonID
	Line       int
}

// Relationship is a directed labeled edge between two persons.
type Relationship struct {
	SourceID PersonID
	TargetID PersonID
	Kind     string
}
