// Package video provides the Video domain entity.
package video

import (
	"strings"

	"golang.org/x/text/cases"
)

// Video represents an entry in the video catalog.
// Videos are created when the catalog is loaded and never change afterwards.
type Video struct {
	ID    string   `yaml:"id" toml:"id" validate:"required"`       // Unique video identifier
	Title string   `yaml:"title" toml:"title" validate:"required"` // Display title
	Tags  []string `yaml:"tags" toml:"tags"`                       // Tags in catalog order, e.g. "#cat"
}

// Fold returns the case-folded form of s used for case-insensitive keys and matching.
// A Caser keeps state between calls, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// HasTag reports whether the video carries the tag, ignoring case.
func (v Video) HasTag(tag string) bool {
	key := Fold(tag)
	for _, t := range v.Tags {
		if Fold(t) == key {
			return true
		}
	}
	return false
}

// TitleContains reports whether term occurs in the title, ignoring case.
func (v Video) TitleContains(term string) bool {
	return strings.Contains(Fold(v.Title), Fold(term))
}

// CloneTags returns a copy of the tag list so callers cannot mutate the entity.
func (v Video) CloneTags() []string {
	if v.Tags == nil {
		return nil
	}
	tags := make([]string, len(v.Tags))
	copy(tags, v.Tags)
	return tags
}
