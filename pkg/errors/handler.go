package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type slot struct{ h ErrorHandler }

var (
	current  atomic.Pointer[slot]
	fallback ErrorHandler = &LogHandler{}
)

// Handler returns the process-wide ErrorHandler. Until SetHandler is called
// it is a LogHandler writing to stderr.
func Handler() ErrorHandler {
	if s := current.Load(); s != nil {
		return s.h
	}
	return fallback
}

// SetHandler installs h and returns the handler it replaces. A nil h
// restores the stderr LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = fallback
	}
	prev := current.Swap(&slot{h: h})
	if prev == nil {
		return fallback
	}
	return prev.h
}

// Report hands a failure of op to the handler, stamped with the time and the
// caller's stack. A nil err is ignored.
func Report(op string, kind ErrorKind, err error) {
	if err == nil {
		return
	}
	Handler().HandleError(&EngineError{
		Op:         op,
		Kind:       kind,
		Err:        err,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// Recover reports a panic of the current goroutine as a PanicError and
// stops it. It only works when deferred directly:
//
//	defer errors.Recover("runtime.Executor.run")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	Handler().HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack renders the stack of its caller, one function per entry
// followed by its file and line. Frames below the goroutine entry are cut.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var b strings.Builder
	for {
		f, more := frames.Next()
		if f.Function == "runtime.goexit" {
			break
		}
		if f.Function != "" {
			fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}
