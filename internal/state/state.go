package state

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"squirrel-noise/pkg/squirrel"
)

// State is everything needed to resume a stream.
type State struct {
	Seed     uint32 `yaml:"seed"`
	Position uint32 `yaml:"position"`
}

// Capture records where s currently is.
func Capture(s *squirrel.Stream) State {
	return State{Seed: s.Seed(), Position: s.Position()}
}

// Stream rebuilds a stream positioned exactly where it was captured.
func (st State) Stream() squirrel.Stream {
	s := squirrel.New(st.Seed)
	s.SetPosition(st.Position)
	return s
}

// Load reads a state file. A missing file yields an error matching os.ErrNotExist.
func Load(path string) (State, error) {
	var st State
	b, err := os.ReadFile(path)
	if err != nil {
		return st, errors.Wrapf(err, "read stream state")
	}
	if err := yaml.Unmarshal(b, &st); err != nil {
		return st, errors.Wrapf(err, "parse stream state %s", path)
	}
	return st, nil
}

// Save writes st to path, replacing any previous file.
func Save(path string, st State) error {
	b, err := yaml.Marshal(st)
	if err != nil {
		return errors.Wrap(err, "marshal stream state")
	}
	return errors.Wrapf(os.WriteFile(path, b, 0o644), "write stream state %s", path)
}
