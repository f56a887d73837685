package model

import "encoding/json"

// WindowID is an opaque compositor window handle in canonical decimal
// form. It is only stable within one compositor session.
type WindowID string

// Opt is an explicit optional. Known is false when the backend query
// for the value failed, which is distinct from a legitimate zero value.
type Opt[T any] struct {
	Value T
	Known bool
}

// Some wraps a successfully queried value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Known: true}
}

// None is an unavailable value.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Or returns the value, or def when it is unavailable.
func (o Opt[T]) Or(def T) T {
	if !o.Known {
		return def
	}
	return o.Value
}

// MarshalYAML renders the value, or null when unavailable.
func (o Opt[T]) MarshalYAML() (interface{}, error) {
	if !o.Known {
		return nil, nil
	}
	return o.Value, nil
}

// MarshalJSON renders the value, or null when unavailable.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Known {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// WindowRecord is a best-effort view of one window. Every field except
// ID may be unavailable when the corresponding property query failed.
type WindowRecord struct {
	ID         WindowID    `yaml:"id"         json:"id"`
	Class      Opt[string] `yaml:"class"      json:"class"`
	Title      Opt[string] `yaml:"title"      json:"title"`
	Desktop    Opt[int]    `yaml:"desktop"    json:"desktop"`
	Geometry   Opt[string] `yaml:"geometry"   json:"geometry"`
	Minimized  Opt[bool]   `yaml:"minimized"  json:"minimized"`
	Maximized  Opt[bool]   `yaml:"maximized"  json:"maximized"`
	Fullscreen Opt[bool]   `yaml:"fullscreen" json:"fullscreen"`
}

// Identified reports whether the record carries at least one of class
// or title. Windows with neither are treated as noise (helper and
// tooltip surfaces) and excluded from listings.
func (r WindowRecord) Identified() bool {
	return r.Class.Known || r.Title.Known
}
