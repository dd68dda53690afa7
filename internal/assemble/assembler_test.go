package assemble

import (
	"errors"
	"testing"

	"github.com/mirrorpress/mirrorpress/internal/model"
)

// TestAssembleNothingRendered verifies the empty-document guard.
func TestAssembleNothingRendered(t *testing.T) {
	t.Parallel()

	t.Run("no pages is fatal", func(t *testing.T) {
		t.Parallel()

		a := New("out.pdf")
		err := a.Assemble(nil, nil)
		if !errors.Is(err, ErrNothingRendered) {
			t.Errorf("expected ErrNothingRendered, got %v", err)
		}
	})

	t.Run("toc alone does not make a document", func(t *testing.T) {
		t.Parallel()

		a := New("out.pdf")
		toc := &model.RenderedPage{File: "toc.pdf", OrderIndex: model.TOCOrderIndex}
		err := a.Assemble(toc, nil)
		if !errors.Is(err, ErrNothingRendered) {
			t.Errorf("expected ErrNothingRendered, got %v", err)
		}
	})
}

// TestPageStarts tests outline target computation in the merged document.
func TestPageStarts(t *testing.T) {
	t.Parallel()

	t.Run("no preceding pages", func(t *testing.T) {
		t.Parallel()

		starts := pageStarts(0, []int{1, 3, 2})
		want := []int{1, 2, 5}
		for i := range want {
			if starts[i] != want[i] {
				t.Errorf("starts[%d] = %d, want %d", i, starts[i], want[i])
			}
		}
	})

	t.Run("toc pages shift every content start", func(t *testing.T) {
		t.Parallel()

		// A two-page table of contents occupies merged pages 1-2, so the
		// first content page starts at 3.
		starts := pageStarts(2, []int{4, 1, 2})
		want := []int{3, 7, 8}
		for i := range want {
			if starts[i] != want[i] {
				t.Errorf("starts[%d] = %d, want %d", i, starts[i], want[i])
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		if starts := pageStarts(1, nil); len(starts) != 0 {
			t.Errorf("expected no starts, got %v", starts)
		}
	})
}

// TestBuildOutline tests bookmark tree construction from depths.
func TestBuildOutline(t *testing.T) {
	t.Parallel()

	page := func(title string, depth int) *model.RenderedPage {
		return &model.RenderedPage{Title: title, Depth: depth}
	}

	t.Run("flat sequence yields flat outline", func(t *testing.T) {
		t.Parallel()

		pages := []*model.RenderedPage{page("A", 0), page("B", 0), page("C", 0)}
		starts := []int{2, 5, 9}

		bms := buildOutline(pages, starts)

		if len(bms) != 3 {
			t.Fatalf("expected 3 bookmarks, got %d", len(bms))
		}
		for i, want := range []int{2, 5, 9} {
			if bms[i].PageFrom != want {
				t.Errorf("bookmark %d PageFrom = %d, want %d", i, bms[i].PageFrom, want)
			}
		}
	})

	t.Run("deeper pages nest under predecessor", func(t *testing.T) {
		t.Parallel()

		pages := []*model.RenderedPage{
			page("Intro", 0),
			page("Guide", 0),
			page("Setup", 1),
			page("Usage", 1),
			page("FAQ", 0),
		}
		starts := []int{1, 3, 6, 8, 10}

		bms := buildOutline(pages, starts)

		if len(bms) != 3 {
			t.Fatalf("expected 3 top-level bookmarks, got %d", len(bms))
		}
		if bms[1].Title != "Guide" || len(bms[1].Kids) != 2 {
			t.Fatalf("expected Guide with 2 kids, got %+v", bms[1])
		}
		if bms[1].Kids[0].Title != "Setup" || bms[1].Kids[0].PageFrom != 6 {
			t.Errorf("unexpected first kid: %+v", bms[1].Kids[0])
		}
		if bms[2].Title != "FAQ" || bms[2].PageFrom != 10 {
			t.Errorf("unexpected last bookmark: %+v", bms[2])
		}
	})

	t.Run("multi-level nesting", func(t *testing.T) {
		t.Parallel()

		pages := []*model.RenderedPage{
			page("A", 0),
			page("B", 1),
			page("C", 2),
			page("D", 1),
		}
		starts := []int{1, 2, 3, 4}

		bms := buildOutline(pages, starts)

		if len(bms) != 1 {
			t.Fatalf("expected 1 top-level bookmark, got %d", len(bms))
		}
		kids := bms[0].Kids
		if len(kids) != 2 || kids[0].Title != "B" || kids[1].Title != "D" {
			t.Fatalf("expected B and D under A, got %+v", kids)
		}
		if len(kids[0].Kids) != 1 || kids[0].Kids[0].Title != "C" {
			t.Errorf("expected C under B, got %+v", kids[0].Kids)
		}
	})

	t.Run("orphaned deep start is flattened", func(t *testing.T) {
		t.Parallel()

		pages := []*model.RenderedPage{page("Lost", 3), page("Top", 0)}
		starts := []int{1, 2}

		bms := buildOutline(pages, starts)

		if len(bms) != 2 {
			t.Fatalf("expected 2 top-level bookmarks, got %d: %+v", len(bms), bms)
		}
		if bms[0].Title != "Lost" || bms[1].Title != "Top" {
			t.Errorf("unexpected titles: %+v", bms)
		}
	})
}
