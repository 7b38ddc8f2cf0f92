package dispatch

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"specializer/internal/diagnostic"
	"specializer/shape"
)

// Report is the outcome of evaluating every guard of a builder against its
// input without running anything. The casts leading to the selected
// candidate are tried as well; a failure shows up as an error diagnostic.
type Report struct {
	Builder     string                 `yaml:"builder,omitempty"`
	Input       string                 `yaml:"input"`
	Target      string                 `yaml:"target"`
	Selected    int                    `yaml:"selected"`
	Candidates  []CandidateReport      `yaml:"candidates"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics"`
}

// CandidateReport is the evaluation of one candidate's guard.
type CandidateReport struct {
	Index    int    `yaml:"index"`
	Form     string `yaml:"form"`
	Func     string `yaml:"func,omitempty"`
	Guard    string `yaml:"guard"`
	Param    string `yaml:"param"`
	Return   string `yaml:"return"`
	Admitted bool   `yaml:"admitted"`
}

// UsesFallback reports whether Run would call the fallback.
func (r Report) UsesFallback() bool {
	return r.Selected < 0
}

// Err returns an error wrapping ErrInvariantViolation when the selected
// candidate could not receive the input although its guard holds, or nil.
func (r Report) Err() error {
	if !r.Diagnostics.HasErrors() {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvariantViolation, r.Diagnostics.Error())
}

// YAML renders the report.
func (r Report) YAML() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dispatch report: %w", err)
	}

	return out, nil
}

func explain[T, C any](c *chain[T, C]) Report {
	c.mustBuild("Explain")

	input := shape.DescriptorOf[T]()
	idx, _ := c.resolve()

	r := Report{
		Builder:    c.opts.name,
		Input:      input.String(),
		Target:     c.target.String(),
		Selected:   idx,
		Candidates: make([]CandidateReport, 0, len(c.entries)),
	}

	for i := range c.entries {
		e := &c.entries[i]
		param := e.param(c.input)

		r.Candidates = append(r.Candidates, CandidateReport{
			Index:    e.meta.Index,
			Form:     e.meta.Form.String(),
			Func:     e.meta.Func,
			Guard:    e.meta.Guard(),
			Param:    param.String(),
			Return:   e.ret.String(),
			Admitted: e.admits(c.input),
		})

		if param != shape.VerdictMatch {
			r.Diagnostics.AddInfo(diagnostic.CodeParamMismatch,
				fmt.Sprintf("%s does not fit %s: %s", input, e.meta.Param, param), e.meta.Index, e.meta.Guard())
		}

		if e.ret != shape.VerdictMatch {
			r.Diagnostics.AddInfo(diagnostic.CodeReturnMismatch,
				fmt.Sprintf("%s does not fit %s: %s", e.meta.Return, c.target, e.ret), e.meta.Index, e.meta.Guard())
		}
	}

	r.Diagnostics.Merge(shadowed(c.entries, input))

	if idx >= 0 {
		e := &c.entries[idx]
		if err := e.dry(c.input); err != nil {
			r.Diagnostics.AddError(diagnostic.CodeInvariant, err.Error(), e.meta.Index, e.meta.Guard())
		}
	}

	return r
}

func shadowed[T, C any](entries []entry[T, C], input shape.Descriptor) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	for i := range entries {
		if j := shadowedBy(entries, i, input); j >= 0 {
			m := entries[i].meta
			d.AddWarning(diagnostic.CodeShadowed,
				fmt.Sprintf("candidate #%d admits every input this one does", j), m.Index, m.Guard())
		}
	}

	return d
}

// shadowedBy returns the index of the nearest later candidate that admits
// whatever candidate i admits, or -1.
func shadowedBy[T, C any](entries []entry[T, C], i int, input shape.Descriptor) int {
	cur := entries[i].meta

	for j := i + 1; j < len(entries); j++ {
		later := entries[j]
		if later.ret != shape.VerdictMatch {
			continue
		}

		m := later.meta
		if !m.ParamChecked || shape.Matches(input, m.Param) {
			return j
		}

		if !m.ExactParam && cur.ParamChecked && shape.Matches(cur.Param, m.Param) {
			return j
		}
	}

	return -1
}
