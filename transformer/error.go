package transformer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"data-accessor/kind"
	"data-accessor/node"
)

// Error parts an ErrorConverter can extract.
const (
	PartType    = "type"
	PartMessage = "message"
	PartCode    = "code"
	PartFile    = "file"
	PartLine    = "line"
	PartTrace   = "trace"
	PartCause   = "cause"
)

var defaultErrorParts = []string{PartType, PartMessage, PartCode}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type coder interface {
	Code() int
}

// ErrorConverter extracts parts of an error into an Object (keyed by part),
// an Array (values in part order) or a String (the message alone).
type ErrorConverter struct {
	parts  []string
	target kind.Type
}

// NewErrorConverter creates an ErrorConverter. Nil parts select type,
// message and code; unknown parts are ignored. A None target defaults to
// Object.
func NewErrorConverter(parts []string, target kind.Type) (*ErrorConverter, error) {
	if parts == nil {
		parts = defaultErrorParts
	}

	target = resolve(target, kind.Object)
	if !isErrorTarget(target) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, target)
	}

	known := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case PartType, PartMessage, PartCode, PartFile, PartLine, PartTrace, PartCause:
			known = append(known, part)
		}
	}

	return &ErrorConverter{parts: known, target: target}, nil
}

func isErrorTarget(t kind.Type) bool {
	return t == kind.Array || t == kind.Object || t == kind.String
}

func (c *ErrorConverter) CanTransform(value any, target kind.Type) bool {
	err, ok := value.(error)
	if !ok || node.Dispatch(err) == node.DispatcherNull {
		return false
	}

	return isErrorTarget(resolve(target, c.target))
}

func (c *ErrorConverter) Transform(value any, target kind.Type) (any, error) {
	if !c.CanTransform(value, target) {
		return nil, unsupported(value, target, "error conversion for %s is not supported")
	}

	err := value.(error)

	switch resolve(target, c.target) {
	case kind.String:
		return err.Error(), nil
	case kind.Array:
		values := make([]any, 0, len(c.parts))
		for _, part := range c.parts {
			values = append(values, errorPart(err, part))
		}
		return values, nil
	}

	object := make(map[string]any, len(c.parts))
	for _, part := range c.parts {
		object[part] = errorPart(err, part)
	}

	return object, nil
}

func errorPart(err error, part string) any {
	switch part {
	case PartType:
		return node.TypeName(err)
	case PartMessage:
		return err.Error()
	case PartCode:
		var c coder
		if errors.As(err, &c) {
			return c.Code()
		}
		return 0
	case PartFile:
		file, _ := topFrame(err)
		return file
	case PartLine:
		_, line := topFrame(err)
		return line
	case PartTrace:
		return trace(err)
	case PartCause:
		return cause(err)
	}

	return nil
}

func stackTrace(err error) errors.StackTrace {
	var st stackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}

	return nil
}

// topFrame returns the file and line where the outermost stack of err was
// recorded, or zero values for errors without a stack.
func topFrame(err error) (string, int) {
	st := stackTrace(err)
	if len(st) == 0 {
		return "", 0
	}

	_, file, _ := strings.Cut(fmt.Sprintf("%+s", st[0]), "\n\t")
	line, _ := strconv.Atoi(fmt.Sprintf("%d", st[0]))

	return file, line
}

func trace(err error) []string {
	st := stackTrace(err)
	frames := make([]string, 0, len(st))
	for _, frame := range st {
		text, _ := frame.MarshalText()
		frames = append(frames, string(text))
	}

	return frames
}

// cause returns the error wrapped by err. Wrappers that only add a stack
// repeat the message of what they wrap and are skipped.
func cause(err error) error {
	next := errors.Unwrap(err)
	for next != nil && next.Error() == err.Error() {
		next = errors.Unwrap(next)
	}

	return next
}

// Parts returns the parts this converter extracts, in order.
func (c *ErrorConverter) Parts() []string {
	return slices.Clone(c.parts)
}
