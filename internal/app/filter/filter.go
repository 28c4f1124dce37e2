// Package filter provides the playability gate applied before a video is
// played or added to a playlist.
package filter

import "github.com/osa030/vidbox/internal/domain/video"

// Result represents the result of a filter check.
type Result struct {
	Accepted bool
	Code     string // e.g., "flagged"
	Reason   string // Detail for the caller, e.g. the flag reason
}

// Accept returns an accepted result.
func Accept() Result {
	return Result{Accepted: true}
}

// Reject returns a rejected result with the given code and reason.
func Reject(code, reason string) Result {
	return Result{Accepted: false, Code: code, Reason: reason}
}

// Filter is the interface for playability filters.
type Filter interface {
	// Name returns the filter name.
	Name() string
	// Description returns a human-readable description.
	Description() string
	// ReturnCodes returns the codes this filter can return.
	ReturnCodes() []string
	// Check performs the filter check.
	Check(v video.Video) Result
}

// registry holds registered filter factories.
var registry = make(map[string]func() Filter)

// Register registers a filter factory.
func Register(name string, factory func() Filter) {
	registry[name] = factory
}

// GetRegistered returns all registered filter factories.
func GetRegistered() map[string]func() Filter {
	return registry
}
