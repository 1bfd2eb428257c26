package core

import "strings"

type Ordering struct {
	Field     string
	Ascending bool
}

func (ord Ordering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}

// ParseOrdering reads a comma separated list of fields, a leading "-" meaning descending.
// eg: "class,-performance"
func ParseOrdering(val string) []Ordering {
	if strings.TrimSpace(val) == "" {
		return nil
	}

	var orderings []Ordering
	for _, field := range strings.Split(val, ",") {
		field = CleanString(field, true /* lower */)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		orderings = append(orderings, Ordering{Field: field, Ascending: !descending})
	}
	return orderings
}
