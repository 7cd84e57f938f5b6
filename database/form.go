package database

import (
	"regexp"
	"strconv"
)

// FieldSpec is the form engine's view of one column: everything a caller
// needs to render an input field and validate what was typed into it.
type FieldSpec struct {
	Name       string
	Type       TypeClass
	Required   bool // NOT NULL constraint
	PrimaryKey bool
}

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// BuildFieldSpecs derives field specifications from a table schema, in
// column declaration order.
func BuildFieldSpecs(tbl Table) []FieldSpec {
	specs := make([]FieldSpec, 0, len(tbl.Columns))
	for _, col := range tbl.Columns {
		specs = append(specs, FieldSpec{
			Name:       col.Name,
			Type:       col.Type,
			Required:   col.NotNull,
			PrimaryKey: col.PKRank > 0,
		})
	}
	return specs
}

// Validate checks raw user input against the field's type class and returns
// the typed value to bind. Blank input maps to nil for every type class;
// required-ness is enforced at save time by BuildValues, not here.
func (f FieldSpec) Validate(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}

	switch f.Type {
	case TypeInteger:
		if !integerPattern.MatchString(raw) {
			return nil, ValidationErr(f.Name, f.Type, raw)
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, ValidationErr(f.Name, f.Type, raw)
		}
		return n, nil
	case TypeReal:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, ValidationErr(f.Name, f.Type, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

// BuildValues runs the save-time pass over a full set of raw inputs and
// assembles the Record to write.
//
// A blank primary key on a new record is omitted entirely so the database
// assigns the key. A blank NOT NULL numeric field is rejected here; a blank
// NOT NULL text field is passed through as NULL and left to the database's
// own constraint. That last part mirrors the original front end's behavior
// and is kept as-is.
func BuildValues(tbl Table, raw map[string]string, editing bool) (Record, error) {
	for name := range raw {
		if _, ok := tbl.Column(name); !ok {
			return nil, UnknownColumnErr(tbl.Name, name)
		}
	}

	values := Record{}

	for _, spec := range BuildFieldSpecs(tbl) {
		val, err := spec.Validate(raw[spec.Name])
		if err != nil {
			return nil, err
		}

		if val == nil {
			if spec.PrimaryKey {
				// On a new record the database assigns the key; on an edit
				// the key identifies the row and cannot be blanked out.
				if !editing {
					continue
				}
				return nil, MissingRequiredFieldErr(spec.Name)
			}
			if spec.Required && (spec.Type == TypeInteger || spec.Type == TypeReal) {
				return nil, MissingRequiredFieldErr(spec.Name)
			}
		}

		values[spec.Name] = val
	}

	return values, nil
}
