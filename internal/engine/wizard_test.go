package engine

import "testing"

func TestProceedGatedOnDecisionText(t *testing.T) {
	w := NewWizard()
	w.Next()
	if w.Step != StepDecisionInput {
		t.Fatalf("empty decision should not advance, at %s", w.Step)
	}
	w.DecisionText = "   \t  "
	w.Next()
	if w.Step != StepDecisionInput {
		t.Fatalf("whitespace decision should not advance, at %s", w.Step)
	}
	w.DecisionText = "take the job offer"
	w.Next()
	if w.Step != StepStyleSelection {
		t.Fatalf("expected style_selection, at %s", w.Step)
	}
}

func TestEdgeTransitionsAreNoOps(t *testing.T) {
	w := NewWizard()
	w.Previous()
	if w.Step != StepDecisionInput {
		t.Fatalf("previous from first step moved to %s", w.Step)
	}
	w.Step = StepGeneration
	w.Next()
	w.Previous()
	if w.Step != StepGeneration {
		t.Fatalf("generation should block both directions, at %s", w.Step)
	}
	w.Step = StepReview
	w.Previous()
	if w.Step != StepReview {
		t.Fatalf("review should not step back into generation, at %s", w.Step)
	}
	w.Next()
	if w.Step != StepReview {
		t.Fatalf("review is terminal, at %s", w.Step)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	for _, start := range StepOrder {
		w := NewWizard()
		w.DecisionText = "quit and travel"
		w.Style = StyleSketch
		w.Tone = ToneChallenging
		w.TimelineLength = 7.5
		w.PathCount = 5
		w.Generated = &Timeline{Title: "stale"}
		w.Step = start
		w.Reset()
		if w.Step != StepDecisionInput || w.DecisionText != "" {
			t.Fatalf("reset from %s left step=%s text=%q", start, w.Step, w.DecisionText)
		}
		if w.Style != DefaultStyle || w.Tone != DefaultTone {
			t.Fatalf("reset from %s left style=%s tone=%s", start, w.Style, w.Tone)
		}
		if w.TimelineLength != DefaultTimelineLength || w.PathCount != DefaultPathCount {
			t.Fatalf("reset from %s left length=%v paths=%d", start, w.TimelineLength, w.PathCount)
		}
		if w.Generated != nil {
			t.Fatalf("reset from %s kept generated timeline", start)
		}
	}
}

func TestGenerationLifecycle(t *testing.T) {
	w := NewWizard()
	w.DecisionText = "adopt a dog"
	w.Next()
	w.Next()
	if w.Step != StepParameterTuning {
		t.Fatalf("expected parameter_tuning, at %s", w.Step)
	}
	w.BeginGeneration()
	if w.Step != StepGeneration {
		t.Fatalf("expected generation, at %s", w.Step)
	}
	w.CompleteGeneration(Timeline{Title: "done"})
	if w.Step != StepReview || w.Generated == nil || w.Generated.Title != "done" {
		t.Fatalf("completion should land in review with result, at %s", w.Step)
	}
}

func TestCancelGenerationReturnsToTuning(t *testing.T) {
	w := NewWizard()
	w.Step = StepGeneration
	w.CancelGeneration()
	if w.Step != StepParameterTuning || w.Generated != nil {
		t.Fatalf("cancel should return to tuning without output, at %s", w.Step)
	}
	// cancel outside generation is a no-op
	w.Step = StepReview
	w.CancelGeneration()
	if w.Step != StepReview {
		t.Fatalf("cancel from review moved to %s", w.Step)
	}
}
