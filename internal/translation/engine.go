package translation

import "strings"

// Fields names the record keys the engine reads.
type Fields struct {
	Name string
	Type string
}

// DefaultFields returns the standard record keys.
func DefaultFields() Fields {
	return Fields{Name: "name", Type: "type"}
}

// Engine computes coverage, duplicate and translation results over records.
type Engine struct {
	fields Fields
}

// NewEngine builds an engine reading the given fields. Blank field names fall
// back to the defaults.
func NewEngine(fields Fields) Engine {
	defaults := DefaultFields()
	if strings.TrimSpace(fields.Name) == "" {
		fields.Name = defaults.Name
	}
	if strings.TrimSpace(fields.Type) == "" {
		fields.Type = defaults.Type
	}
	return Engine{fields: fields}
}

// Fields returns the record keys this engine reads.
func (e Engine) Fields() Fields {
	return e.fields
}

// Coverage describes how many distinct record names the table translates.
// Name lists keep the order in which names first appear in the records.
type Coverage struct {
	Unique  []string `json:"unique"`
	Covered []string `json:"covered"`
	Missing []string `json:"missing"`
	// Rate is len(Covered)/len(Unique), or 0 when there are no names.
	Rate float64 `json:"rate"`
}

// Duplicate lists the type values of every record sharing one canonical name.
type Duplicate struct {
	Name  string `json:"name"`
	Types []any  `json:"types"`
}

// Translation is the outcome of rewriting record names.
type Translation struct {
	Records  Records `json:"records"`
	Replaced int     `json:"replaced"`
	// NotFound holds the original name values that had no table entry.
	NotFound []any `json:"not_found"`
}

// Coverage collects the distinct non-empty canonical names of records and
// splits them by whether table has an entry.
func (e Engine) Coverage(records Records, table Table) Coverage {
	coverage := Coverage{
		Unique:  []string{},
		Covered: []string{},
		Missing: []string{},
	}
	seen := make(map[string]struct{})
	for _, record := range records {
		name := Normalize(record[e.fields.Name])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		coverage.Unique = append(coverage.Unique, name)
		if _, ok := table[name]; ok {
			coverage.Covered = append(coverage.Covered, name)
		} else {
			coverage.Missing = append(coverage.Missing, name)
		}
	}
	if len(coverage.Unique) > 0 {
		coverage.Rate = float64(len(coverage.Covered)) / float64(len(coverage.Unique))
	}
	return coverage
}

// Duplicates groups records by canonical name and reports every name carried
// by two or more records, with the raw type value of each record in order.
// A missing type field is reported as nil.
func (e Engine) Duplicates(records Records) []Duplicate {
	order := make([]string, 0)
	types := make(map[string][]any)
	for _, record := range records {
		name := Normalize(record[e.fields.Name])
		if name == "" {
			continue
		}
		if _, ok := types[name]; !ok {
			order = append(order, name)
		}
		types[name] = append(types[name], record[e.fields.Type])
	}

	duplicates := make([]Duplicate, 0)
	for _, name := range order {
		if len(types[name]) < 2 {
			continue
		}
		duplicates = append(duplicates, Duplicate{Name: name, Types: types[name]})
	}
	return duplicates
}

// Translate returns a deep copy of records with every matched name replaced
// by its translation. Records without a name pass through and are not
// reported as missing. The input collection is left untouched.
func (e Engine) Translate(records Records, table Table) Translation {
	translated := records.Clone()
	if translated == nil {
		translated = Records{}
	}
	result := Translation{
		Records:  translated,
		NotFound: []any{},
	}
	for _, record := range translated {
		original := record[e.fields.Name]
		name := Normalize(original)
		if name == "" {
			continue
		}
		if replacement, ok := table[name]; ok {
			record[e.fields.Name] = replacement
			result.Replaced++
			continue
		}
		result.NotFound = append(result.NotFound, original)
	}
	return result
}
