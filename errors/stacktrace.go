package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is implemented by errors created by pkg/errors.
type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found while unwrapping given
// error, or nil.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
}

// internalFuncs lists the functions of this package that create or wrap
// errors. They are never the interesting part of a stack trace.
var internalFuncs = []string{
	"remit/errors.Wrap",
	"remit/errors.Wrapf",
	"remit/errors.Recover",
}

// trimInternal cuts off the frames that belong to this package and to the
// runtime, so that the first frame points to where the error was created.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	for len(st) > 0 && (matchesFunc(st[0], internalFuncs...) || matchesFile(st[0], "/runtime/")) {
		st = st[1:]
	}
	for l := len(st) - 1; l > 0 && matchesFile(st[l], "/runtime/"); l-- {
		st = st[:l]
	}
	return st
}

func matchesFile(f errors.Frame, substrs ...string) bool {
	file, _ := fileLine(f)
	for _, sub := range substrs {
		if strings.Contains(file, sub) {
			return true
		}
	}
	return false
}

func matchesFunc(f errors.Frame, suffixes ...string) bool {
	fn := runtime.FuncForPC(uintptr(f) - 1)
	if fn == nil {
		return false
	}
	name := fn.Name()
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func fileLine(f errors.Frame) (string, int) {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(pc)
}

func writeSimpleFrame(s io.Writer, f errors.Frame) {
	file, line := fileLine(f)
	// cut file at "github.com/"
	chunks := strings.SplitN(file, "github.com/", 2)
	if len(chunks) == 2 {
		file = chunks[1]
	}
	fmt.Fprintf(s, " [%s:%d]", file, line)
}
