package errs

import (
	"strings"

	"github.com/pkg/errors"
)

// Multi collects multiple errors into a single error value. It is used by
// config Validate() implementations and by the pipeline to report per-topic
// failures without aborting the whole run.
type Multi struct {
	errors []error
}

func NewMulti() *Multi {
	return &Multi{
		errors: []error{},
	}
}

func (m *Multi) Add(err error) {
	if err == nil {
		return
	}

	m.errors = append(m.errors, err)
}

func (m *Multi) Err(format string, args ...interface{}) {
	if len(args) == 0 {
		m.Add(errors.New(format))
		return
	}

	m.Add(errors.Errorf(format, args...))
}

func (m *Multi) Error() string {
	if !m.HasErrors() {
		return ""
	}

	strErrs := make([]string, len(m.errors))
	for i := range m.errors {
		strErrs[i] = m.errors[i].Error()
	}

	return strings.Join(strErrs, "; ")
}

func (m *Multi) StackTrace() errors.StackTrace {
	if !m.HasErrors() {
		return nil
	}

	for _, curErr := range m.errors {
		var errWithStack stackTracer
		if errors.As(curErr, &errWithStack) {
			return errWithStack.StackTrace()
		}
	}

	return errors.StackTrace{}
}

func (m *Multi) HasErrors() bool {
	return len(m.errors) > 0
}
