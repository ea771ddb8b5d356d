package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPath marks a music root that is missing or unreadable. Fatal for
	// the whole run.
	ErrPath = errors.New("path error")
	// ErrInput marks an unusable playlist input file. Fatal for the run.
	ErrInput = errors.New("input error")
	// ErrOutput marks a failure writing the playlist artifact.
	ErrOutput = errors.New("output error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation string, err error) error {
	detail := buildDetail(component, operation)
	if marker == nil {
		marker = ErrOutput
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether an error must abort the run rather than degrade to
// a per-query skip.
func IsFatal(err error) bool {
	return errors.Is(err, ErrPath) || errors.Is(err, ErrInput) || errors.Is(err, ErrOutput)
}

func buildDetail(component, operation string) string {
	parts := make([]string, 0, 2)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
