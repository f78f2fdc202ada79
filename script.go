package remainder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a playback script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// scriptFile is the top-level structure of a playback script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Host is what a Script drives: the window or headless runner hosting an
// animator.
type Host interface {
	Resize(containerWidth float64)
	Screenshot(label string)
}

// Script sequences resizes and screenshots across frames so a run can be
// reproduced. Actions are "wait" (frames), "resize" (width) and
// "screenshot" (label).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML or JSON playback script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "wait", "screenshot":
		case "resize":
			if st.Width < 1 {
				return nil, fmt.Errorf("parse script: step %d: resize needs a positive width", i)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// Step runs at most one action. Hosts call it once per frame, before
// Animator.Frame.
func (s *Script) Step(h Host) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		h.Screenshot(st.Label)
	case "resize":
		h.Resize(st.Width)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
