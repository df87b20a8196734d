package engine

// String backed enums for DB interoperability.

type TimelineStyle string
type EmotionalTone string
type EmotionalIndicator string
type WizardStep string
type QuickAction string

const (
	StyleRealistic TimelineStyle = "realistic"
	StyleCinematic TimelineStyle = "cinematic"
	StyleAnimated  TimelineStyle = "animated"
	StyleSketch    TimelineStyle = "sketch"
)

var AllStyles = []TimelineStyle{StyleRealistic, StyleCinematic, StyleAnimated, StyleSketch}

const (
	ToneOptimistic  EmotionalTone = "optimistic"
	ToneRealistic   EmotionalTone = "realistic"
	ToneChallenging EmotionalTone = "challenging"
	ToneBalanced    EmotionalTone = "balanced"
)

var AllTones = []EmotionalTone{ToneOptimistic, ToneRealistic, ToneChallenging, ToneBalanced}

const (
	IndicatorHopeful   EmotionalIndicator = "hopeful"
	IndicatorSteady    EmotionalIndicator = "steady"
	IndicatorUncertain EmotionalIndicator = "uncertain"
	IndicatorTense     EmotionalIndicator = "tense"
)

var AllIndicators = []EmotionalIndicator{IndicatorHopeful, IndicatorSteady, IndicatorUncertain, IndicatorTense}

const (
	StepDecisionInput   WizardStep = "decision_input"
	StepStyleSelection  WizardStep = "style_selection"
	StepParameterTuning WizardStep = "parameter_tuning"
	StepGeneration      WizardStep = "generation"
	StepReview          WizardStep = "review"
)

// StepOrder is the strict linear progression of the creator wizard.
var StepOrder = []WizardStep{StepDecisionInput, StepStyleSelection, StepParameterTuning, StepGeneration, StepReview}

const (
	ActionNewTimeline QuickAction = "new_timeline"
	ActionViewLibrary QuickAction = "view_library"
	ActionDailyWisdom QuickAction = "daily_wisdom"
	ActionCoach       QuickAction = "coach"
)

var AllQuickActions = []QuickAction{ActionNewTimeline, ActionViewLibrary, ActionDailyWisdom, ActionCoach}

// Description returns the user-facing blurb for a visual style. Exhaustive: every
// style case must have a mapping; additions here fail loudly in enums_test.
func (s TimelineStyle) Description() string {
	switch s {
	case StyleRealistic:
		return "Lifelike footage, grounded settings and natural light"
	case StyleCinematic:
		return "Film-grade framing with dramatic color grading"
	case StyleAnimated:
		return "Stylized animation with vivid, expressive motion"
	case StyleSketch:
		return "Hand-drawn storyboard frames, loose and personal"
	}
	return ""
}

func (s TimelineStyle) Icon() string {
	switch s {
	case StyleRealistic:
		return "camera"
	case StyleCinematic:
		return "film"
	case StyleAnimated:
		return "sparkles"
	case StyleSketch:
		return "pencil"
	}
	return ""
}

func (t EmotionalTone) Description() string {
	switch t {
	case ToneOptimistic:
		return "Leans into the upside of every branch"
	case ToneRealistic:
		return "Plays the odds straight, no sugarcoating"
	case ToneChallenging:
		return "Surfaces the hard paths you might avoid"
	case ToneBalanced:
		return "Weighs bright and difficult futures evenly"
	}
	return ""
}

func (t EmotionalTone) Icon() string {
	switch t {
	case ToneOptimistic:
		return "sun"
	case ToneRealistic:
		return "scales"
	case ToneChallenging:
		return "mountain"
	case ToneBalanced:
		return "yin-yang"
	}
	return ""
}

func (i EmotionalIndicator) Description() string {
	switch i {
	case IndicatorHopeful:
		return "Momentum is on your side in this branch"
	case IndicatorSteady:
		return "A stable path without major swings"
	case IndicatorUncertain:
		return "Outcomes here hinge on factors outside your control"
	case IndicatorTense:
		return "Expect friction before this path settles"
	}
	return ""
}

func (i EmotionalIndicator) Icon() string {
	switch i {
	case IndicatorHopeful:
		return "arrow-up"
	case IndicatorSteady:
		return "minus"
	case IndicatorUncertain:
		return "question"
	case IndicatorTense:
		return "zap"
	}
	return ""
}

func (w WizardStep) Title() string {
	switch w {
	case StepDecisionInput:
		return "Describe Your Decision"
	case StepStyleSelection:
		return "Choose a Style"
	case StepParameterTuning:
		return "Tune Parameters"
	case StepGeneration:
		return "Generating"
	case StepReview:
		return "Review"
	}
	return ""
}

func (a QuickAction) Title() string {
	switch a {
	case ActionNewTimeline:
		return "New Timeline"
	case ActionViewLibrary:
		return "Library"
	case ActionDailyWisdom:
		return "Daily Wisdom"
	case ActionCoach:
		return "Coach"
	}
	return ""
}

func (a QuickAction) Icon() string {
	switch a {
	case ActionNewTimeline:
		return "plus"
	case ActionViewLibrary:
		return "stack"
	case ActionDailyWisdom:
		return "lightbulb"
	case ActionCoach:
		return "compass"
	}
	return ""
}

// Bias converts a tone to the weight slope used by the mock generator. Positive
// slopes favor early paths, negative favor late paths, zero is uniform.
func (t EmotionalTone) Bias() float64 {
	switch t {
	case ToneOptimistic:
		return 1.0
	case ToneChallenging:
		return -1.0
	default:
		return 0.0
	}
}

// ToneForBias is the inverse of Bias. Unknown values settle on balanced.
func ToneForBias(bias float64) EmotionalTone {
	switch {
	case bias > 0:
		return ToneOptimistic
	case bias < 0:
		return ToneChallenging
	default:
		return ToneBalanced
	}
}

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (s TimelineStyle) Validate() bool      { return contains(AllStyles, s) }
func (t EmotionalTone) Validate() bool      { return contains(AllTones, t) }
func (i EmotionalIndicator) Validate() bool { return contains(AllIndicators, i) }
func (w WizardStep) Validate() bool         { return contains(StepOrder, w) }
func (a QuickAction) Validate() bool        { return contains(AllQuickActions, a) }

// List helpers
func ListStyles() []TimelineStyle          { return append([]TimelineStyle{}, AllStyles...) }
func ListTones() []EmotionalTone           { return append([]EmotionalTone{}, AllTones...) }
func ListIndicators() []EmotionalIndicator { return append([]EmotionalIndicator{}, AllIndicators...) }
func ListSteps() []WizardStep              { return append([]WizardStep{}, StepOrder...) }
func ListQuickActions() []QuickAction      { return append([]QuickAction{}, AllQuickActions...) }
