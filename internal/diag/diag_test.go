package diag_test

import (
	"testing"

	"github.com/ecsdsl/compiler/internal/diag"
	"github.com/ecsdsl/compiler/internal/loc"
)

func TestSortAndDedupOrdersByLineColumn(t *testing.T) {
	a := diag.New(diag.StageSema, diag.CodeSemaDuplicateComponent, "a", loc.NewSpan(loc.NewText(1, 0), loc.NewText(1, 0)))
	b := diag.New(diag.StageSema, diag.CodeSemaDuplicateComponent, "b", loc.NewSpan(loc.NewText(0, 5), loc.NewText(0, 5)))
	c := diag.New(diag.StageSema, diag.CodeSemaDuplicateComponent, "c", loc.NewSpan(loc.NewText(0, 0), loc.NewText(0, 0)))

	got := diag.SortAndDedup([]diag.Diagnostic{a, b, c})
	want := []string{"c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %d diagnostics, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Message != w {
			t.Fatalf("index %d: expected message %q, got %q", i, w, got[i].Message)
		}
	}
}

func TestSortAndDedupRemovesAdjacentDuplicates(t *testing.T) {
	span := loc.NewSpan(loc.NewText(0, 0), loc.NewText(0, 0))
	d := diag.New(diag.StageSema, diag.CodeSemaReservedID, "dup", span)

	got := diag.SortAndDedup([]diag.Diagnostic{d, d, d})
	if len(got) != 1 {
		t.Fatalf("expected duplicates to collapse to one entry, got %d", len(got))
	}
}
