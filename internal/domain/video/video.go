// Package video provides the Video domain entity.
package video

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrFlagged is matched by every FlaggedError.
var ErrFlagged = errors.New("video is currently flagged")

// Video represents a catalog video.
// Everything except Flag is immutable once the catalog is loaded.
type Video struct {
	ID    string   // Stable identifier
	Title string   // Unique within the catalog
	Tags  []string // Ordered tags, e.g. "#cat"
	Flag  string   // Moderation reason; empty when not flagged
}

// IsFlagged reports whether the video carries a moderation flag.
func (v *Video) IsFlagged() bool {
	return v.Flag != ""
}

// TagString returns the tags joined by a single space.
func (v *Video) TagString() string {
	return strings.Join(v.Tags, " ")
}

// Describe renders "title (id) [tags]".
func (v *Video) Describe() string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, v.TagString())
}

// DescribeWithFlag renders Describe plus the flag suffix when flagged.
func (v *Video) DescribeWithFlag() string {
	if !v.IsFlagged() {
		return v.Describe()
	}
	return fmt.Sprintf("%s - FLAGGED (reason: %s)", v.Describe(), v.Flag)
}

// FlaggedError is returned when an action is blocked by a moderation flag.
type FlaggedError struct {
	Reason string
}

func (e *FlaggedError) Error() string {
	return fmt.Sprintf("video is currently flagged (reason: %s)", e.Reason)
}

// Is makes errors.Is(err, ErrFlagged) hold for any FlaggedError.
func (e *FlaggedError) Is(target error) bool {
	return target == ErrFlagged
}

// FlagReason extracts the reason from a FlaggedError anywhere in err's chain.
func FlagReason(err error) (string, bool) {
	var fe *FlaggedError
	if errors.As(err, &fe) {
		return fe.Reason, true
	}
	return "", false
}
