package adapter

// Prop names one of the adapter's inputs.
type Prop int

const (
	Mode Prop = iota
	Columns
	Records
	Limit
	Page
	Total
)

var propNames = map[Prop]string{
	Mode:    "mode",
	Columns: "columns",
	Records: "records",
	Limit:   "limit",
	Page:    "page",
	Total:   "total",
}

func (prop Prop) String() string {
	return propNames[prop]
}

// Changes is the set of inputs assigned in one update batch.
type Changes map[Prop]bool

// NewChanges creates a set holding props.
func NewChanges(props ...Prop) Changes {
	changes := Changes{}
	for _, prop := range props {
		changes[prop] = true
	}
	return changes
}

// Has reports whether prop changed.
func (changes Changes) Has(prop Prop) bool {
	return changes[prop]
}

// HasAny reports whether any of props changed.
func (changes Changes) HasAny(props ...Prop) bool {
	for _, prop := range props {
		if changes[prop] {
			return true
		}
	}
	return false
}

func (changes Changes) clone() Changes {
	cloned := make(Changes, len(changes))
	for prop, changed := range changes {
		cloned[prop] = changed
	}
	return cloned
}

func (changes Changes) names() (names []string) {
	for prop := Mode; prop <= Total; prop++ {
		if changes[prop] {
			names = append(names, prop.String())
		}
	}
	return
}
