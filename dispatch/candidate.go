package dispatch

import (
	"path"
	"reflect"
	"runtime"
	"strings"

	"specializer/shape"
	"specializer/utils"
)

// Form names the Specialize* variant a candidate was registered with.
type Form int

const (
	FormSpecialize Form = iota
	FormParam
	FormReturn
	FormMap
	FormMapParam
	FormMapReturn
)

func (f Form) String() string {
	switch f {
	case FormSpecialize:
		return "specialize"
	case FormParam:
		return "specialize_param"
	case FormReturn:
		return "specialize_return"
	case FormMap:
		return "specialize_map"
	case FormMapParam:
		return "specialize_map_param"
	case FormMapReturn:
		return "specialize_map_return"
	default:
		return "unknown"
	}
}

// IsMap reports whether the form runs pre- and post-maps around the core
// function.
func (f Form) IsMap() bool {
	return f >= FormMap && f <= FormMapReturn
}

// Candidate describes one guarded transformation in a builder's chain.
type Candidate struct {
	// Index is the registration position, starting at 0.
	Index int
	Form  Form
	// Func names the closure that decided the candidate's shapes.
	Func string
	// Param is the shape the input must have. For forms that elide the
	// parameter check it is the builder's own input shape.
	Param shape.Descriptor
	// Return is the shape the candidate produces. For forms that elide the
	// return check it is the builder's own target shape.
	Return shape.Descriptor
	// ParamChecked and ReturnChecked tell which halves of the guard apply.
	ParamChecked  bool
	ReturnChecked bool
	// ExactParam is set when the parameter must match by descriptor alone,
	// without value-level admission. Map forms cast the premapped value
	// back to the input type and need it.
	ExactParam bool
}

// Guard returns a short human-readable guard, e.g. "Owned(int32) -> Owned(int32)".
func (c Candidate) Guard() string {
	param, ret := "_", "_"
	if c.ParamChecked {
		param = c.Param.String()
	}

	if c.ReturnChecked {
		ret = c.Return.String()
	}

	return param + " -> " + ret
}

// funcName returns "pkg.Name" for the function fn points to, or an empty
// string when fn is nil or not a function.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}

	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}

	pkg, name := utils.Unpack2(strings.SplitN(utils.Second(path.Split(rf.Name())), ".", 2))
	if name == "" {
		return pkg
	}

	return pkg + "." + name
}
