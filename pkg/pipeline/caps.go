package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// IntRange is an unresolved integer capability field.
type IntRange struct {
	Min int
	Max int
}

func (r IntRange) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

func (r IntRange) nearest(target int) int {
	if target < r.Min {
		return r.Min
	}
	if target > r.Max {
		return r.Max
	}
	return target
}

// FractionRange is an unresolved fraction capability field.
type FractionRange struct {
	Min Fraction
	Max Fraction
}

func (r FractionRange) String() string {
	return fmt.Sprintf("[%s,%s]", r.Min, r.Max)
}

func (r FractionRange) nearest(target Fraction) Fraction {
	if target.Float64() < r.Min.Float64() {
		return r.Min
	}
	if target.Float64() > r.Max.Float64() {
		return r.Max
	}
	return target
}

// Structure is one named entry of a capability set. Field values are either
// concrete (int, string, Fraction) or ranges still to be fixated (IntRange,
// FractionRange).
type Structure struct {
	fields map[string]interface{}
	name   string
}

func NewStructure(name string) *Structure {
	return &Structure{
		fields: make(map[string]interface{}),
		name:   name,
	}
}

func (s *Structure) Name() string {
	return s.name
}

func (s *Structure) Set(name string, v interface{}) *Structure {
	s.fields[name] = v
	return s
}

func (s *Structure) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

func (s *Structure) Get(name string) (interface{}, bool) {
	v, ok := s.fields[name]
	return v, ok
}

// Int returns the value of a fixed integer field.
func (s *Structure) Int(name string) (int, bool) {
	v, ok := s.fields[name].(int)
	return v, ok
}

// Fraction returns the value of a fixed fraction field.
func (s *Structure) Fraction(name string) (Fraction, bool) {
	v, ok := s.fields[name].(Fraction)
	return v, ok
}

// Str returns the value of a string field.
func (s *Structure) Str(name string) (string, bool) {
	v, ok := s.fields[name].(string)
	return v, ok
}

// FixateFieldNearestInt resolves an integer range field to the value of the
// range nearest to target. Fixed or absent fields are left untouched.
func (s *Structure) FixateFieldNearestInt(name string, target int) {
	if r, ok := s.fields[name].(IntRange); ok {
		s.fields[name] = r.nearest(target)
	}
}

// FixateFieldNearestFraction resolves a fraction range field to the value of
// the range nearest to target. Fixed or absent fields are left untouched.
func (s *Structure) FixateFieldNearestFraction(name string, target Fraction) {
	if r, ok := s.fields[name].(FractionRange); ok {
		s.fields[name] = r.nearest(target)
	}
}

// Fixate resolves all remaining range fields to their lower bound.
func (s *Structure) Fixate() {
	for name, v := range s.fields {
		switch r := v.(type) {
		case IntRange:
			s.fields[name] = r.Min
		case FractionRange:
			s.fields[name] = r.Min
		}
	}
}

// Fixed reports whether no range field remains.
func (s *Structure) Fixed() bool {
	for _, v := range s.fields {
		switch v.(type) {
		case IntRange, FractionRange:
			return false
		}
	}
	return true
}

func (s *Structure) Copy() *Structure {
	c := NewStructure(s.name)
	for name, v := range s.fields {
		c.fields[name] = v
	}
	return c
}

func (s *Structure) String() string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	ss := []string{s.name}
	for _, name := range names {
		ss = append(ss, fmt.Sprintf("%s=%v", name, s.fields[name]))
	}
	return strings.Join(ss, ", ")
}

// Caps is a negotiable capability set exchanged between a source and its
// downstream consumer.
type Caps struct {
	ss []*Structure
}

func NewCaps(ss ...*Structure) *Caps {
	return &Caps{ss: ss}
}

func (c *Caps) Len() int {
	return len(c.ss)
}

// Structure returns the idx-th structure, or nil when out of range.
func (c *Caps) Structure(idx int) *Structure {
	if idx < 0 || idx >= len(c.ss) {
		return nil
	}
	return c.ss[idx]
}

func (c *Caps) Copy() *Caps {
	ss := make([]*Structure, len(c.ss))
	for idx, s := range c.ss {
		ss[idx] = s.Copy()
	}
	return NewCaps(ss...)
}

// Fixed reports whether every structure is fully fixated.
func (c *Caps) Fixed() bool {
	for _, s := range c.ss {
		if !s.Fixed() {
			return false
		}
	}
	return true
}

func (c *Caps) String() string {
	ss := make([]string, len(c.ss))
	for idx, s := range c.ss {
		ss[idx] = s.String()
	}
	return strings.Join(ss, "; ")
}
