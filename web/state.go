// Package web binds sort state to the query string of a table view URL
// and computes the header indicators a rendering layer needs.
package web

import (
	"net/url"

	"github.com/gorilla/schema"

	"github.com/tableaux-project/sortable"
)

var (
	decoder = schema.NewDecoder()
	encoder = schema.NewEncoder()
)

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// State is the sort state as carried in a URL query, e.g.
// ?sort=person_name&dir=DESC.
type State struct {
	Sort string             `schema:"sort"`
	Dir  sortable.Direction `schema:"dir"`
}

// ParseState decodes the sort state from URL query values. Unknown query
// keys are ignored, and any direction other than DESC normalizes to ASC.
func ParseState(values url.Values) (State, error) {
	var state State
	if err := decoder.Decode(&state, values); err != nil {
		return State{}, err
	}

	if state.Dir != sortable.DirectionDesc {
		state.Dir = sortable.DirectionAsc
	}

	return state, nil
}

// Values encodes the state back into URL query values, for building
// header links.
func (state State) Values() (url.Values, error) {
	values := url.Values{}
	if err := encoder.Encode(&state, values); err != nil {
		return nil, err
	}

	return values, nil
}

// Apply restores a decoded state onto a sorter. The fields map translates
// the external field names to field values; names not in the map leave
// the sorter untouched. Restoring is absolute, so applying the same URL
// twice yields the same state.
func Apply[T any, F sortable.Field[T]](sorter *sortable.Sorter[T, F], fields map[string]F, state State) bool {
	field, exists := fields[state.Sort]
	if !exists {
		return false
	}

	sorter.SetField(field, state.Dir)
	return true
}

// Indicator describes how a column header reflects the sort state.
// Active is true for the header of the active field. The glyph is "↓"
// for ascending, "↑" for descending, "↕" for an inactive reversible
// field, and empty for unsortable fields.
type Indicator struct {
	Active bool
	Glyph  string
}

// IndicatorFor computes the header indicator of a field under the
// sorter's current state.
func IndicatorFor[T any, F sortable.Field[T]](sorter *sortable.Sorter[T, F], field F) Indicator {
	sortBy := field.SortBy()
	if sortBy == nil {
		return Indicator{}
	}

	activeField, activeDirection := sorter.State()
	active := activeField == field

	direction := sortBy.Direction()
	if active {
		direction = activeDirection
	} else if sortBy.Reversible() {
		return Indicator{Glyph: "↕"}
	}

	glyph := "↓"
	if direction == sortable.DirectionDesc {
		glyph = "↑"
	}

	return Indicator{Active: active, Glyph: glyph}
}
