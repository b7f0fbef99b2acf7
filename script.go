package sapling

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ScriptStep is one action in an input script.
//
// Actions: "click" at (x, y), "drag" from (from_x, from_y) to (to_x, to_y)
// over frames ticks, "key" press and release of key, "wait" for frames
// ticks, and "screenshot" with label.
type ScriptStep struct {
	Action string  `yaml:"action" json:"action"`
	Label  string  `yaml:"label,omitempty" json:"label,omitempty"`
	Key    string  `yaml:"key,omitempty" json:"key,omitempty"`
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
	FromX  float64 `yaml:"from_x,omitempty" json:"from_x,omitempty"`
	FromY  float64 `yaml:"from_y,omitempty" json:"from_y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty" json:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty" json:"to_y,omitempty"`
	Frames int     `yaml:"frames,omitempty" json:"frames,omitempty"`

	key ebiten.Key
}

type scriptFile struct {
	Steps []ScriptStep `yaml:"steps"`
}

// ErrEmptyScript is returned for a script with no steps.
var ErrEmptyScript = errors.New("sapling: script has no steps")

// ScriptRunner feeds a scripted sequence of synthetic input into a Game, one
// step per tick once the previous step's events have been delivered. It is
// used for automated playthroughs and visual checks.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript reads a script file.
func LoadScript(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses a YAML script. JSON is accepted as well, being a subset
// of YAML.
func ParseScript(data []byte) (*ScriptRunner, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i := range f.Steps {
		st := &f.Steps[i]
		switch st.Action {
		case "click", "drag", "wait", "screenshot":
		case "key":
			if err := st.key.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("parse script: step %d: key %q: %w", i, st.Key, err)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: f.Steps}, nil
}

// Len returns the number of steps.
func (r *ScriptRunner) Len() int { return len(r.steps) }

// Done reports whether every step has run and its input was delivered.
func (r *ScriptRunner) Done() bool { return r.done }

// step advances the script by one tick. Called from Game.Update before input
// is polled.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	if g.Input.PendingInjections() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "click":
		g.Input.InjectClick(st.X, st.Y)
	case "drag":
		g.Input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "key":
		g.Input.InjectKey(st.key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && g.Input.PendingInjections() == 0 {
		r.done = true
	}
}
