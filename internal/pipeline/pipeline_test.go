package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/mirrorpress/mirrorpress/internal/model"
)

// recordStep appends its name to a shared trace when executed.
type recordStep struct {
	name  string
	trace *[]string
	err   error
}

func (s *recordStep) Name() string { return s.name }

func (s *recordStep) Do(_ context.Context, _ *model.ConversionReport) error {
	*s.trace = append(*s.trace, s.name)
	return s.err
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("steps run in order", func(t *testing.T) {
		t.Parallel()

		var trace []string
		p := New()
		p.AddSteps(
			&recordStep{name: "first", trace: &trace},
			&recordStep{name: "second", trace: &trace},
			&recordStep{name: "third", trace: &trace},
		)

		report := model.NewConversionReport("/tmp/mirror")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"first", "second", "third"}
		if len(trace) != len(want) {
			t.Fatalf("expected %d steps executed, got %d", len(want), len(trace))
		}
		for i, name := range want {
			if trace[i] != name {
				t.Errorf("step %d = %q, want %q", i, trace[i], name)
			}
			if report.PerformedSteps[i] != name {
				t.Errorf("performed step %d = %q, want %q", i, report.PerformedSteps[i], name)
			}
		}
	})

	t.Run("fatal error stops the pipeline", func(t *testing.T) {
		t.Parallel()

		fatal := errors.New("mirror not found")
		var trace []string
		p := New()
		p.AddSteps(
			&recordStep{name: "first", trace: &trace},
			&recordStep{name: "second", trace: &trace, err: fatal},
			&recordStep{name: "third", trace: &trace},
		)

		report := model.NewConversionReport("/tmp/mirror")
		err := p.Execute(context.Background(), report)
		if !errors.Is(err, fatal) {
			t.Fatalf("expected fatal error, got %v", err)
		}

		if len(trace) != 2 {
			t.Errorf("expected 2 steps executed, got %d: %v", len(trace), trace)
		}
		if !errors.Is(report.Error, fatal) {
			t.Errorf("report.Error = %v, want %v", report.Error, fatal)
		}
		if report.ErrorMessage != fatal.Error() {
			t.Errorf("report.ErrorMessage = %q", report.ErrorMessage)
		}
		// Only the successful step is recorded.
		if len(report.PerformedSteps) != 1 || report.PerformedSteps[0] != "first" {
			t.Errorf("unexpected performed steps: %v", report.PerformedSteps)
		}
	})

	t.Run("cancellation stops before the next step", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var trace []string
		p := New()
		p.AddSteps(&recordStep{name: "first", trace: &trace})

		report := model.NewConversionReport("/tmp/mirror")
		err := p.Execute(ctx, report)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(trace) != 0 {
			t.Errorf("expected no steps executed, got %v", trace)
		}
	})
}

func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	var trace []string
	p := New()
	p.AddSteps(
		&recordStep{name: "discover_pages", trace: &trace},
		&recordStep{name: "resolve_order", trace: &trace},
	)

	if p.StepCount() != 2 {
		t.Errorf("StepCount = %d, want 2", p.StepCount())
	}
	names := p.StepNames()
	if names[0] != "discover_pages" || names[1] != "resolve_order" {
		t.Errorf("unexpected names: %v", names)
	}
}
