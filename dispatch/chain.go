package dispatch

import (
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"specializer/shape"
)

type state int

const (
	stateBuilding state = iota
	stateConsumed
	stateSealed
)

func (s state) String() string {
	switch s {
	case stateBuilding:
		return "building"
	case stateConsumed:
		return "consumed"
	case stateSealed:
		return "sealed"
	default:
		return "unknown"
	}
}

// entry is a candidate together with its guard and the closure to run.
// C is the closure type of the flavor, synchronous or asynchronous.
type entry[T, C any] struct {
	meta Candidate
	// param reports how the input value compares with meta.Param.
	param func(T) shape.Verdict
	// ret is the static comparison of meta.Return with the builder's target.
	ret shape.Verdict
	// dry performs the casts that precede the first closure call.
	dry  func(T) error
	call C
}

func (e *entry[T, C]) admits(v T) bool {
	return e.ret == shape.VerdictMatch && e.param(v) == shape.VerdictMatch
}

// chain is the flavor-independent part of a builder: the input, the
// fallback and the candidates in registration order.
type chain[T, C any] struct {
	input    T
	fallback C
	entries  []entry[T, C]
	target   shape.Descriptor
	opts     options
	state    state
}

func newChain[T, U, C any](input T, fallback C, opts []Option) chain[T, C] {
	return chain[T, C]{
		input:    input,
		fallback: fallback,
		target:   shape.DescriptorOf[U](),
		opts:     newOptions(opts),
	}
}

// claim moves the chain out of the building state or panics if it has
// already left it.
func (c *chain[T, C]) claim(op string, next state) {
	c.mustBuild(op)
	c.state = next
}

// mustBuild panics unless the chain is still being built.
func (c *chain[T, C]) mustBuild(op string) {
	if c.state != stateBuilding {
		panic(fmt.Errorf("%w: %s called on a %s builder", ErrBuilderConsumed, op, c.state))
	}
}

// next is the index the next registered candidate gets.
func (c *chain[T, C]) next() int {
	return len(c.entries)
}

// extend consumes c and returns a chain with e appended.
func (c *chain[T, C]) extend(op string, e entry[T, C]) chain[T, C] {
	c.claim(op, stateConsumed)

	return chain[T, C]{
		input:    c.input,
		fallback: c.fallback,
		entries:  append(slices.Clip(c.entries), e),
		target:   c.target,
		opts:     c.opts,
	}
}

// resolve returns the index and closure of the most recently added
// candidate whose guard holds, or -1 and the fallback.
func (c *chain[T, C]) resolve() (int, C) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].admits(c.input) {
			return i, c.entries[i].call
		}
	}

	return -1, c.fallback
}

// seal resolves the chain, releases everything it holds and returns the
// input together with the selected closure.
func (c *chain[T, C]) seal(op string) (T, C) {
	c.claim(op, stateSealed)

	idx, call := c.resolve()
	c.logResolved(idx)

	input := c.input

	var (
		zeroT T
		zeroC C
	)
	c.input, c.fallback, c.entries = zeroT, zeroC, nil

	return input, call
}

func (c *chain[T, C]) logResolved(idx int) {
	ce := c.opts.logger.Check(zap.DebugLevel, "dispatch resolved")
	if ce == nil {
		return
	}

	fields := []zap.Field{
		zap.String("builder", c.opts.name),
		zap.Stringer("input", shape.DescriptorOf[T]()),
		zap.Stringer("target", c.target),
		zap.Int("candidates", len(c.entries)),
		zap.Int("selected", idx),
	}

	if idx < 0 {
		fields = append(fields, zap.String("func", "fallback"))
	} else {
		m := c.entries[idx].meta
		fields = append(fields,
			zap.Stringer("form", m.Form),
			zap.String("func", m.Func),
			zap.String("guard", m.Guard()),
		)
	}

	ce.Write(fields...)
}

// guardSpec says which halves of a candidate's guard apply.
type guardSpec struct {
	checkParam  bool
	checkReturn bool
	exactParam  bool
}

var guardSpecs = map[Form]guardSpec{
	FormSpecialize: {checkParam: true, checkReturn: true},
	FormParam:      {checkParam: true},
	FormReturn:     {checkReturn: true},
	FormMap:        {checkParam: true, checkReturn: true, exactParam: true},
	FormMapParam:   {checkParam: true, exactParam: true},
	FormMapReturn:  {checkReturn: true},
}

// newEntry builds the guard of a candidate taking P and producing R in a
// builder from T to U. fn is only used to name the candidate.
func newEntry[T, U, P, R, C any](index int, form Form, fn any) entry[T, C] {
	gs := guardSpecs[form]

	meta := Candidate{
		Index:         index,
		Form:          form,
		Func:          funcName(fn),
		Param:         shape.DescriptorOf[P](),
		Return:        shape.DescriptorOf[R](),
		ParamChecked:  gs.checkParam,
		ReturnChecked: gs.checkReturn,
		ExactParam:    gs.exactParam,
	}

	e := entry[T, C]{meta: meta, ret: shape.VerdictMatch}

	if gs.checkReturn {
		e.ret = shape.Compare(meta.Return, shape.DescriptorOf[U]())
	}

	input := shape.DescriptorOf[T]()

	e.dry = func(T) error { return nil }
	if gs.checkParam {
		e.dry = func(v T) error {
			p, err := tryCast[P](v, meta, "param")
			if err != nil || !gs.exactParam {
				return err
			}

			_, err = tryCast[T](p, meta, "premap")

			return err
		}
	}

	switch {
	case !gs.checkParam:
		e.param = func(T) shape.Verdict { return shape.VerdictMatch }

	case gs.exactParam:
		verdict := shape.Compare(input, meta.Param)
		e.param = func(T) shape.Verdict { return verdict }

	default:
		verdict := shape.Compare(input, meta.Param)
		e.param = func(v T) shape.Verdict {
			if verdict != shape.VerdictMatch && shape.Accepts(v, meta.Param) {
				return shape.VerdictMatch
			}

			return verdict
		}
	}

	return e
}

// tryCast is a cast that a guard already vouched for, reporting an
// *InvariantError when the shapes still disagree.
func tryCast[U, T any](v T, meta Candidate, stage string) (U, error) {
	u, ok := shape.CastBorrowed[U](v)
	if !ok {
		return u, &InvariantError{
			Candidate: meta,
			Stage:     stage,
			From:      shape.DescriptorOf[T]().String(),
			To:        shape.DescriptorOf[U]().String(),
		}
	}

	return u, nil
}

func mustCast[U, T any](v T, meta Candidate, stage string) U {
	u, err := tryCast[U](v, meta, stage)
	if err != nil {
		panic(err)
	}

	return u
}

func mustFunc(fn any, op string) {
	if v := reflect.ValueOf(fn); !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Errorf("%w: %s", ErrNilFunc, op))
	}
}
