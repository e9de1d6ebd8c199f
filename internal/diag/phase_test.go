package diag_test

import (
	"testing"

	"simplec/internal/diag"
)

func TestPhaseString(t *testing.T) {
	cases := map[diag.Phase]string{
		diag.Lex:      "Lex",
		diag.Syntax:   "Syntax",
		diag.Semantic: "Semantic",
		diag.Phase(99): "Unknown",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
