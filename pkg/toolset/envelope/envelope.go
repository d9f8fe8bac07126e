// Package envelope normalizes backend responses into the uniform result
// envelope returned by every tool: the resource payload rendered as 2-space
// indented JSON on success, {"error": "..."} on any failure. No error ever
// propagates past a tool call; everything a backend raises is logged and
// collapsed into the envelope.
package envelope

import (
	"fmt"
	"reflect"

	"github.com/aac-tools/aac-mcp-server/pkg/logging"
	"github.com/aac-tools/aac-mcp-server/pkg/output"
)

// Normalizable is implemented by backend resource types that carry a typed
// view alongside their raw payload. Values that don't implement it (plain
// mappings, lists, scalars) pass through normalization unchanged.
type Normalizable interface {
	ToPlainValue() interface{}
}

// Precondition describes the existence/state read performed before a gated
// operation. The lookup result decides three separate outcomes: a lookup
// error becomes a generic failure envelope, an absent result becomes
// "<Resource> <id> not found", and a non-empty Guard message short-circuits
// with that message. The two failure paths are deliberately never merged.
type Precondition struct {
	// Resource is the capitalized resource kind used in the not-found
	// message, e.g. "Schedule" or "Wrangled dataset".
	Resource string

	// ID identifies the target resource.
	ID string

	// Lookup reads the target resource. A (nil, nil) return means the
	// resource does not exist.
	Lookup func() (interface{}, error)

	// Guard optionally inspects the found resource; a non-empty return
	// aborts the operation with that message.
	Guard func(found interface{}) string
}

var formatter = output.NewFormatter()

// Error returns the canonical error envelope for msg.
func Error(msg string) string {
	text, err := formatter.FormatJSON(map[string]string{"error": msg})
	if err != nil {
		return fmt.Sprintf("{\n  \"error\": %q\n}", msg)
	}
	return text
}

// Errorf returns the canonical error envelope for a formatted message.
func Errorf(format string, args ...interface{}) string {
	return Error(fmt.Sprintf(format, args...))
}

// MissingParameter returns the envelope for an absent or empty required
// identifier. No backend call is made for these.
func MissingParameter(name string) string {
	return Errorf("%s is required", name)
}

// Failure logs a failed backend call and wraps it in an error envelope.
// opContext names the operation including the offending identifier, e.g.
// "deleting schedule s1".
func Failure(opContext string, err error) string {
	logging.Error("Error %s: %v", opContext, err)
	return Errorf("Error %s: %v", opContext, err)
}

// Render normalizes and serializes a backend result. Serialization failures
// collapse into the error envelope like any other failure.
func Render(opContext string, result interface{}) string {
	text, err := formatter.FormatJSON(output.Sanitize(normalize(result)))
	if err != nil {
		return Failure(opContext, err)
	}
	return text
}

// Invoke runs a backend call and renders its result.
func Invoke(opContext string, call func() (interface{}, error)) string {
	return Run(opContext, nil, call)
}

// Run evaluates the precondition, if any, then runs the primary call and
// renders its result. Exactly one envelope is produced per invocation.
func Run(opContext string, pre *Precondition, call func() (interface{}, error)) string {
	if pre != nil {
		found, err := pre.Lookup()
		if err != nil {
			return Failure(opContext, err)
		}
		if isAbsent(found) {
			logging.Error("%s %s not found", pre.Resource, pre.ID)
			return Errorf("%s %s not found", pre.Resource, pre.ID)
		}
		if pre.Guard != nil {
			if msg := pre.Guard(found); msg != "" {
				logging.Error("%s", msg)
				return Error(msg)
			}
		}
	}

	result, err := call()
	if err != nil {
		return Failure(opContext, err)
	}
	return Render(opContext, result)
}

// normalize flattens values that expose a plain-mapping view and passes
// everything else through unchanged. Absent values render as JSON null.
func normalize(v interface{}) interface{} {
	if isAbsent(v) {
		return nil
	}
	if n, ok := v.(Normalizable); ok {
		return n.ToPlainValue()
	}
	return v
}

// isAbsent reports whether a lookup result is the null-equivalent the
// platform uses for missing resources: a nil interface, or a typed nil
// pointer, map or slice.
func isAbsent(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
