// Package filter provides the filter chain used to select videos for search and random play.
package filter

import (
	"github.com/osa030/videoplayer/internal/domain/video"
)

// Result represents the result of a filter check.
type Result struct {
	Accepted bool
	Code     string // e.g., "title_mismatch", "tag_mismatch", "flagged"
}

// Accept returns an accepted result.
func Accept() Result {
	return Result{Accepted: true}
}

// Reject returns a rejected result with the given code.
func Reject(code string) Result {
	return Result{Accepted: false, Code: code}
}

// Filter is the interface for video filters.
type Filter interface {
	// Name returns the filter name.
	Name() string
	// Check performs the filter check.
	Check(v video.Video) Result
}

// TitleFilter accepts videos whose title contains the term, ignoring case.
type TitleFilter struct {
	Term string
}

func (f *TitleFilter) Name() string {
	return "title_filter"
}

func (f *TitleFilter) Check(v video.Video) Result {
	if v.TitleContains(f.Term) {
		return Accept()
	}
	return Reject("title_mismatch")
}

// TagFilter accepts videos carrying the tag, ignoring case.
type TagFilter struct {
	Tag string
}

func (f *TagFilter) Name() string {
	return "tag_filter"
}

func (f *TagFilter) Check(v video.Video) Result {
	if v.HasTag(f.Tag) {
		return Accept()
	}
	return Reject("tag_mismatch")
}

// FlagChecker reports whether a video is flagged.
type FlagChecker interface {
	IsFlagged(videoID string) bool
}

// FlaggedFilter rejects flagged videos.
type FlaggedFilter struct {
	flags FlagChecker
}

// NewFlaggedFilter creates a new flagged video filter.
func NewFlaggedFilter(flags FlagChecker) *FlaggedFilter {
	return &FlaggedFilter{flags: flags}
}

func (f *FlaggedFilter) Name() string {
	return "flagged_filter"
}

func (f *FlaggedFilter) Check(v video.Video) Result {
	if f.flags.IsFlagged(v.ID) {
		return Reject("flagged")
	}
	return Accept()
}
