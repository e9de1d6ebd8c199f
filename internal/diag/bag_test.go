package diag_test

import (
	"testing"

	"simplec/internal/diag"
)

func TestBagEmitSnapshotOrder(t *testing.T) {
	b := diag.NewBag(10)
	if b.HasErrors() {
		t.Fatalf("fresh bag must report no errors")
	}
	b.Emit(diag.Diagnostic{Phase: diag.Lex, Line: 3, Message: "bad char"})
	b.Emit(diag.Diagnostic{Phase: diag.Syntax, Line: 1, Message: "missing ;"})
	b.Emit(diag.Diagnostic{Phase: diag.Semantic, Line: 2, Message: "undeclared"})

	got := b.Snapshot()
	if len(got) != 3 {
		t.Fatalf("Snapshot() len = %d, want 3", len(got))
	}
	wantPhases := []diag.Phase{diag.Lex, diag.Syntax, diag.Semantic}
	for i, p := range wantPhases {
		if got[i].Phase != p {
			t.Errorf("Snapshot()[%d].Phase = %v, want %v", i, got[i].Phase, p)
		}
	}
	if !b.HasErrors() {
		t.Fatalf("bag with emitted diagnostics must report errors")
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
}

func TestBagCapacityStopsAccepting(t *testing.T) {
	b := diag.NewBag(1)
	b.Emit(diag.Diagnostic{Phase: diag.Syntax, Line: 1, Message: "first"})
	b.Emit(diag.Diagnostic{Phase: diag.Syntax, Line: 2, Message: "dropped"})
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (capacity enforced)", b.Len())
	}
}

func TestBagSnapshotIsACopy(t *testing.T) {
	b := diag.NewBag(4)
	b.Emit(diag.Diagnostic{Phase: diag.Syntax, Line: 1, Message: "x"})
	snap := b.Snapshot()
	snap[0].Message = "mutated"
	if b.Snapshot()[0].Message != "x" {
		t.Errorf("mutating Snapshot() result affected the bag's internal state")
	}
}
