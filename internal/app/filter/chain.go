package filter

import (
	"github.com/osa030/vidbox/internal/domain/video"
)

// Chain executes filters in sequence.
type Chain struct {
	filters []Filter
}

// NewChain creates a new filter chain.
func NewChain() *Chain {
	return &Chain{
		filters: make([]Filter, 0),
	}
}

// NewDefaultChain creates a chain with every registered filter, ordered by name.
func NewDefaultChain() *Chain {
	c := NewChain()
	for _, name := range RegisteredNames() {
		c.Add(registry[name]())
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

// Playable returns the videos accepted by every filter, preserving order.
func (c *Chain) Playable(videos []video.Video) []video.Video {
	result := make([]video.Video, 0, len(videos))
	for _, v := range videos {
		if c.Execute(v).Accepted {
			result = append(result, v)
		}
	}
	return result
}

// Filters returns all filters in the chain.
func (c *Chain) Filters() []Filter {
	return c.filters
}
