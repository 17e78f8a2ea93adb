package testpattern

import "slices"

// Metadata labels a source in logs and events.
type Metadata struct {
	Description string
	Name        string
	Tags        []string
}

// Merge overlays i on top of m, deduplicating tags, and returns the result.
func (m Metadata) Merge(i Metadata) Metadata {
	if i.Description != "" {
		m.Description = i.Description
	}
	if i.Name != "" {
		m.Name = i.Name
	}
	for _, t := range i.Tags {
		if !slices.Contains(m.Tags, t) {
			m.Tags = append(m.Tags, t)
		}
	}
	return m
}
