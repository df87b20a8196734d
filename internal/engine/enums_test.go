package engine

import "testing"

func TestStyleMappingsTotal(t *testing.T) {
	for _, s := range AllStyles {
		if s.Description() == "" {
			t.Fatalf("style %q missing description", s)
		}
		if s.Icon() == "" {
			t.Fatalf("style %q missing icon", s)
		}
	}
}

func TestToneMappingsTotal(t *testing.T) {
	for _, tone := range AllTones {
		if tone.Description() == "" {
			t.Fatalf("tone %q missing description", tone)
		}
		if tone.Icon() == "" {
			t.Fatalf("tone %q missing icon", tone)
		}
	}
}

func TestIndicatorMappingsTotal(t *testing.T) {
	for _, i := range AllIndicators {
		if i.Description() == "" || i.Icon() == "" {
			t.Fatalf("indicator %q mapping incomplete", i)
		}
	}
}

func TestStepAndActionTitlesTotal(t *testing.T) {
	for _, s := range StepOrder {
		if s.Title() == "" {
			t.Fatalf("step %q missing title", s)
		}
	}
	for _, a := range AllQuickActions {
		if a.Title() == "" || a.Icon() == "" {
			t.Fatalf("quick action %q mapping incomplete", a)
		}
	}
}

func TestToneForBiasInvertsBias(t *testing.T) {
	for _, tone := range AllTones {
		got := ToneForBias(tone.Bias())
		// realistic and balanced share the zero slope; balanced is the canonical inverse
		want := tone
		if tone == ToneRealistic {
			want = ToneBalanced
		}
		if got != want {
			t.Fatalf("ToneForBias(%s.Bias()) = %s, want %s", tone, got, want)
		}
	}
}

func TestEnumValidation(t *testing.T) {
	if !StyleRealistic.Validate() || TimelineStyle("vaporwave").Validate() {
		t.Fatal("style validation broken")
	}
	if !ToneBalanced.Validate() || EmotionalTone("gloomy").Validate() {
		t.Fatal("tone validation broken")
	}
}
