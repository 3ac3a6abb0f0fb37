package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideo_HasTag(t *testing.T) {
	v := Video{ID: "amazing_cats_video_id", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}}

	tests := []struct {
		name     string
		tag      string
		expected bool
	}{
		{name: "exact match", tag: "#cat", expected: true},
		{name: "different case", tag: "#CAT", expected: true},
		{name: "partial tag", tag: "#ca", expected: false},
		{name: "missing hash", tag: "cat", expected: false},
		{name: "unknown tag", tag: "#dog", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.HasTag(tt.tag))
		})
	}
}

func TestVideo_TitleContains(t *testing.T) {
	v := Video{ID: "v1", Title: "Amazing Cats"}

	tests := []struct {
		name     string
		term     string
		expected bool
	}{
		{name: "lower case term", term: "cat", expected: true},
		{name: "upper case term", term: "AMAZING", expected: true},
		{name: "regex metacharacters are literal", term: "c.ts", expected: false},
		{name: "no match", term: "dog", expected: false},
		{name: "empty term", term: "", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.TitleContains(tt.term))
		})
	}
}

func TestVideo_CloneTags(t *testing.T) {
	v := Video{ID: "v1", Tags: []string{"#a", "#b"}}

	tags := v.CloneTags()
	tags[0] = "#changed"

	assert.Equal(t, []string{"#a", "#b"}, v.Tags)
	assert.Nil(t, Video{ID: "v2"}.CloneTags())
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("My Playlist"), Fold("my playlist"))
	assert.Equal(t, Fold("STRASSE"), Fold("strasse"))
	assert.NotEqual(t, Fold("abc"), Fold("abd"))
}
