package filter

import (
	"sort"

	"github.com/osa030/vidbox/internal/domain/video"
)

// CodeFlagged is returned for videos carrying a moderation flag.
const CodeFlagged = "flagged"

// FlaggedFilter rejects flagged videos.
type FlaggedFilter struct{}

func (f *FlaggedFilter) Name() string {
	return "flagged_video_filter"
}

func (f *FlaggedFilter) Description() string {
	return "Rejects videos that carry a moderation flag"
}

func (f *FlaggedFilter) ReturnCodes() []string {
	return []string{CodeFlagged}
}

func (f *FlaggedFilter) Check(v video.Video) Result {
	if v.IsFlagged() {
		return Reject(CodeFlagged, v.Flag)
	}
	return Accept()
}

// Err converts a rejection into the matching domain error.
// Returns nil for accepted results.
func (r Result) Err() error {
	if r.Accepted {
		return nil
	}
	if r.Code == CodeFlagged {
		return &video.FlaggedError{Reason: r.Reason}
	}
	return &RejectedError{Code: r.Code, Reason: r.Reason}
}

// RejectedError reports a rejection by a filter without a dedicated domain error.
type RejectedError struct {
	Code   string
	Reason string
}

func (e *RejectedError) Error() string {
	return "rejected by filter: " + e.Code + " (" + e.Reason + ")"
}

// RegisteredNames returns registered filter names in sorted order.
func RegisteredNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("flagged_video_filter", func() Filter {
		return &FlaggedFilter{}
	})
}
