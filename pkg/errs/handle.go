package errs

import (
	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Handle logs err with its stack trace when one is attached. With stop=true the
// process is terminated via logrus.Panic.
func Handle(err error, stop bool) {
	if err == nil {
		return
	}

	tracer, ok := errors.Cause(err).(stackTracer)
	if !ok {
		if stop {
			logging.Panic(err)
		} else {
			logging.Error(err)
		}
		return
	}

	if stop {
		logging.Panicf("%v\n%+v", err, tracer.StackTrace())
	} else {
		logging.Errorf("%v\n%+v", err, tracer.StackTrace())
	}
}
