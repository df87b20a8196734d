package engine

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yml
var templatesYAML []byte

// ScenarioTemplate is one pre-written outcome scaffold. Each tone ships a fixed
// pool of three; the generator cycles the pool when more paths are requested.
type ScenarioTemplate struct {
	Title      string             `yaml:"title"`
	Indicator  EmotionalIndicator `yaml:"indicator"`
	Outcome    string             `yaml:"outcome"`
	KeyMoments []string           `yaml:"key_moments"`
}

type templateFile struct {
	Tones map[EmotionalTone][]ScenarioTemplate `yaml:"tones"`
}

var scenarioPools map[EmotionalTone][]ScenarioTemplate

func init() {
	var tf templateFile
	if err := yaml.Unmarshal(templatesYAML, &tf); err != nil {
		panic(fmt.Sprintf("engine: templates.yml invalid: %v", err))
	}
	for _, tone := range AllTones {
		pool := tf.Tones[tone]
		if len(pool) == 0 {
			panic(fmt.Sprintf("engine: templates.yml missing pool for tone %q", tone))
		}
		for i, tpl := range pool {
			if tpl.Title == "" || tpl.Outcome == "" {
				panic(fmt.Sprintf("engine: templates.yml tone %q entry %d incomplete", tone, i))
			}
			if !tpl.Indicator.Validate() {
				panic(fmt.Sprintf("engine: templates.yml tone %q entry %d bad indicator %q", tone, i, tpl.Indicator))
			}
		}
	}
	scenarioPools = tf.Tones
}

// PoolFor returns the scenario template pool for a tone. Unknown tones fall back
// to the balanced pool rather than failing.
func PoolFor(tone EmotionalTone) []ScenarioTemplate {
	if pool, ok := scenarioPools[tone]; ok {
		return pool
	}
	return scenarioPools[ToneBalanced]
}
