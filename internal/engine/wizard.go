package engine

import "strings"

// Wizard defaults restored by Reset.
const (
	DefaultStyle          = StyleRealistic
	DefaultTone           = ToneBalanced
	DefaultTimelineLength = 3.0
	DefaultPathCount      = 3
)

// Wizard drives the linear timeline-creator flow. Transitions happen only via
// explicit Next/Previous calls; out-of-range moves are no-ops.
type Wizard struct {
	Step           WizardStep
	DecisionText   string
	Style          TimelineStyle
	Tone           EmotionalTone
	TimelineLength float64 // seconds
	PathCount      int
	Generated      *Timeline
}

// NewWizard returns a wizard at the first step with the documented defaults.
func NewWizard() Wizard {
	w := Wizard{}
	w.Reset()
	return w
}

func stepIndex(step WizardStep) int {
	for i, s := range StepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// CanProceed reports whether the current step's readiness gate is satisfied.
// Decision input requires non-empty trimmed text; the other input steps are
// always ready; generation and review never advance via Next.
func (w *Wizard) CanProceed() bool {
	switch w.Step {
	case StepDecisionInput:
		return strings.TrimSpace(w.DecisionText) != ""
	case StepStyleSelection, StepParameterTuning:
		return true
	default:
		return false
	}
}

// Next advances one step when the gate allows it. No-op otherwise.
func (w *Wizard) Next() {
	if !w.CanProceed() {
		return
	}
	idx := stepIndex(w.Step)
	if idx < 0 || idx+1 >= len(StepOrder) {
		return
	}
	w.Step = StepOrder[idx+1]
}

// Previous steps back one state. The first step and the generation/review pair
// do not move backward: generation is in flight and review is terminal.
func (w *Wizard) Previous() {
	if w.Step == StepGeneration || w.Step == StepReview {
		return
	}
	idx := stepIndex(w.Step)
	if idx <= 0 {
		return
	}
	w.Step = StepOrder[idx-1]
}

// BeginGeneration jumps from parameter tuning into the generation state. The
// caller owns the progress loop and calls CompleteGeneration when done.
func (w *Wizard) BeginGeneration() {
	if w.Step != StepParameterTuning {
		return
	}
	w.Step = StepGeneration
}

// CompleteGeneration stores the result and auto-advances to review.
func (w *Wizard) CompleteGeneration(t Timeline) {
	if w.Step != StepGeneration {
		return
	}
	w.Generated = &t
	w.Step = StepReview
}

// CancelGeneration aborts an in-flight generation and returns to tuning.
func (w *Wizard) CancelGeneration() {
	if w.Step != StepGeneration {
		return
	}
	w.Generated = nil
	w.Step = StepParameterTuning
}

// Reset restores all fields to fixed defaults and clears generated output.
// Valid from any state.
func (w *Wizard) Reset() {
	w.Step = StepDecisionInput
	w.DecisionText = ""
	w.Style = DefaultStyle
	w.Tone = DefaultTone
	w.TimelineLength = DefaultTimelineLength
	w.PathCount = DefaultPathCount
	w.Generated = nil
}
