package filter

import (
	"github.com/osa030/videoplayer/internal/domain/video"
)

// Chain executes filters in sequence.
type Chain struct {
	filters []Filter
}

// NewChain creates a new filter chain.
func NewChain(filters ...Filter) *Chain {
	c := &Chain{
		filters: make([]Filter, 0, len(filters)),
	}
	for _, f := range filters {
		c.Add(f)
	}
	return c
}

// Add adds a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Execute runs all filters in sequence.
// Returns immediately if any filter rejects the video.
func (c *Chain) Execute(v video.Video) Result {
	for _, f := range c.filters {
		result := f.Check(v)
		if !result.Accepted {
			return result
		}
	}
	return Accept()
}

// Apply returns the videos accepted by every filter, keeping their order.
func (c *Chain) Apply(videos []video.Video) []video.Video {
	result := make([]video.Video, 0, len(videos))
	for _, v := range videos {
		if c.Execute(v).Accepted {
			result = append(result, v)
		}
	}
	return result
}
