package state

import "github.com/samber/lo"

// FilterSet keeps the selected values per filter category. It is immutable.
type FilterSet struct {
	selected map[string]map[string]struct{}
}

func NewFilterSet() FilterSet {
	return FilterSet{selected: map[string]map[string]struct{}{}}
}

// Toggle removes value from category if present and inserts it otherwise.
// Other categories are shared with the receiver.
func (f FilterSet) Toggle(category, value string) FilterSet {
	selected := make(map[string]map[string]struct{}, len(f.selected)+1)
	for c, values := range f.selected {
		selected[c] = values
	}

	values := make(map[string]struct{}, len(f.selected[category])+1)
	for v := range f.selected[category] {
		values[v] = struct{}{}
	}
	if _, ok := values[value]; ok {
		delete(values, value)
	} else {
		values[value] = struct{}{}
	}

	if len(values) == 0 {
		delete(selected, category)
	} else {
		selected[category] = values
	}
	return FilterSet{selected: selected}
}

func (f FilterSet) Has(category, value string) bool {
	_, ok := f.selected[category][value]
	return ok
}

// Selected returns the category's values ordered as in order.
func (f FilterSet) Selected(category string, order []string) []string {
	return lo.Filter(order, func(value string, _ int) bool {
		return f.Has(category, value)
	})
}

// Clear returns a set with nothing selected.
func (f FilterSet) Clear() FilterSet {
	return NewFilterSet()
}

func (f FilterSet) IsEmpty() bool {
	return len(f.selected) == 0
}

func (f FilterSet) Equal(other FilterSet) bool {
	if len(f.selected) != len(other.selected) {
		return false
	}
	for category, values := range f.selected {
		if len(values) != len(other.selected[category]) {
			return false
		}
		for value := range values {
			if !other.Has(category, value) {
				return false
			}
		}
	}
	return true
}

type Filterable interface {
	FilterValue(category string) (string, bool)
}

// Matches reports whether item passes filter: values within a category are OR-ed,
// categories are AND-ed, and empty categories impose nothing.
func Matches[T Filterable](item T, filter FilterSet) bool {
	for category, values := range filter.selected {
		if len(values) == 0 {
			continue
		}
		value, ok := item.FilterValue(category)
		if !ok {
			return false
		}
		if _, found := values[value]; !found {
			return false
		}
	}
	return true
}
