package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeParamMismatch, "input is Owned(int16)", 0, "Owned(int32) -> Owned(int32)")
	d.AddWarning(CodeShadowed, "candidate #1 always wins", 0, "")
	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())

	var other Diagnostics
	other.AddError("broken", "cast failed", -1, "")
	d.Merge(other)

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(), "[broken] cast failed")
	assert.Len(t, d.ByCode(CodeShadowed), 1)
	assert.Empty(t, d.ByCode(CodeReturnMismatch))
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "full",
			diag: Diagnostic{Code: CodeParamMismatch, Message: "kind_mismatch", Candidate: 2, Guard: "Owned(int) -> _"},
			want: "#2 [Owned(int) -> _]: [param-mismatch] kind_mismatch",
		},
		{
			name: "no candidate",
			diag: Diagnostic{Code: "x", Message: "m", Candidate: -1},
			want: "[x] m",
		},
		{
			name: "bare",
			diag: Diagnostic{Message: "m", Candidate: -1},
			want: "m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestSeverityYAML(t *testing.T) {
	out, err := yaml.Marshal(Diagnostic{Severity: DiagnosticWarning, Code: CodeShadowed, Message: "m", Candidate: 1})
	require.NoError(t, err)
	assert.Equal(t, "severity: warning\ncode: shadowed\nmessage: m\ncandidate: 1\n", string(out))
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
