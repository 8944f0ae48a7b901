package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iliyamo/fyyur/internal/monitoring"
	"github.com/iliyamo/fyyur/internal/repository"
)

// ValidationError reports form fields that failed validation. Nothing
// has been written when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "Please fix the following errors: " + strings.Join(parts, "; ")
}

// PersistenceError wraps an unexpected storage failure. Its message is
// safe to show to clients; the wrapped driver error is not.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("An error occurred. %s could not be completed.", e.Op)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// outcome classifies err for the write metrics.
func outcome(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return monitoring.OutcomeOK
	case errors.As(err, &verr):
		return monitoring.OutcomeValidation
	case errors.Is(err, repository.ErrNotFound):
		return monitoring.OutcomeNotFound
	case errors.Is(err, repository.ErrConflict):
		return monitoring.OutcomeConflict
	default:
		return monitoring.OutcomeError
	}
}
