package validation

import (
	"regexp"
	"strings"

	"github.com/nijaru/yt-kb/errors"
)

var videoIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateVideoID checks that id looks like a YouTube video id.
func ValidateVideoID(id string) error {
	const op = "validation.ValidateVideoID"

	id = strings.TrimSpace(id)
	if id == "" {
		return errors.InvalidInput(op, &ValidationError{Message: "video id is required"}, "")
	}
	if !videoIDRE.MatchString(id) {
		return errors.InvalidInput(op, &ValidationError{Message: "invalid video id: " + id}, "")
	}
	return nil
}
