// Package ucd turns Unicode break-property tables into a compact packed
// form: a sorted, non-overlapping list of codepoint ranges, each tagged with
// a small enumerated property value, serialized as fixed-field base-36 text.
package ucd

import "sort"

// Enum is one registered property value. Index is assigned in first-seen
// order and never changes; it determines the value's one-character code in
// the packed encoding. NormalizedFrom holds every raw source name that was
// folded into this value, sorted.
type Enum struct {
	Index          int
	Name           string
	NormalizedFrom []string
}

// Code returns the single-character serialization of the value: indices
// 0-25 map to 'A'-'Z', 26-51 to 'a'-'z'. Pack rejects registries larger
// than that before codes are emitted, so Code assumes Index < 52.
func (e *Enum) Code() byte {
	if e.Index < 26 {
		return 'A' + byte(e.Index)
	}
	return 'a' + byte(e.Index-26)
}

// Enums is an append-only registry of property values, ordered by first
// registration. Indices are always exactly 0..Len()-1.
type Enums struct {
	values []*Enum
	byName map[string]*Enum
}

func NewEnums() *Enums {
	return &Enums{byName: map[string]*Enum{}}
}

// Add registers name if it is new and returns its value. Registering an
// existing name returns the existing value unchanged, so Add doubles as the
// idempotent seeding operation for a family's default property.
func (es *Enums) Add(name string) *Enum {
	if v, ok := es.byName[name]; ok {
		return v
	}
	v := &Enum{Index: len(es.values), Name: name}
	es.values = append(es.values, v)
	es.byName[name] = v
	return v
}

// AddNormalized registers raw as a source spelling of the canonical target
// value and returns that value.
func (es *Enums) AddNormalized(target, raw string) *Enum {
	v := es.Add(target)
	for _, s := range v.NormalizedFrom {
		if s == raw {
			return v
		}
	}
	v.NormalizedFrom = append(v.NormalizedFrom, raw)
	sort.Strings(v.NormalizedFrom)
	return v
}

// ByName looks up a registered value without registering it.
func (es *Enums) ByName(name string) (*Enum, bool) {
	v, ok := es.byName[name]
	return v, ok
}

// Values returns the registered values in index order. The returned slice
// is the registry's own; callers must not modify it.
func (es *Enums) Values() []*Enum {
	return es.values
}

func (es *Enums) Len() int {
	return len(es.values)
}
