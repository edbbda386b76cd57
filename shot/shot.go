// SPDX-License-Identifier: MIT

// Package shot defines the validated, read-only Shot value handed to the
// shotqa analyzers and continuity validators.
//
// A Shot is built once from a Spec by New, which rejects malformed input with
// a *core.InvalidInputError. Accessors return copies, so a Shot cannot be
// mutated after construction.
package shot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/frame"
)

// Sentinel errors for shot validation; always wrapped in *core.InvalidInputError.
var (
	ErrNilShot            = errors.New("shot: nil shot")
	ErrEmptyID            = errors.New("shot: id is empty")
	ErrBadTimestamp       = errors.New("shot: timestamp must be finite and >= 0")
	ErrAngleOutOfRange    = errors.New("shot: camera angle must be in [0,360)")
	ErrEmptyCharacter     = errors.New("shot: character name is empty")
	ErrDuplicateCharacter = errors.New("shot: duplicate character name")
	ErrPositionOutOfRange = errors.New("shot: position must be in [0,1]")
)

// Spec is the raw description of a shot as supplied by a collaborator.
// Field tags follow the boundary vocabulary so a Spec can be decoded directly
// from JSON or YAML; Frames are attached in code.
type Spec struct {
	ID              string           `json:"shot_id" yaml:"shot_id"`
	Timestamp       float64          `json:"timestamp" yaml:"timestamp"`
	CameraAngle     float64          `json:"camera_angle" yaml:"camera_angle"`
	Characters      []core.Character `json:"characters" yaml:"characters"`
	Actions         []string         `json:"actions" yaml:"actions"`
	Objects         []string         `json:"objects" yaml:"objects"`
	Lighting        string           `json:"lighting" yaml:"lighting"`
	AudioScore      float64          `json:"audio_score" yaml:"audio_score"`
	ContinuityScore float64          `json:"continuity_score" yaml:"continuity_score"`
	Frames          []*frame.Frame   `json:"-" yaml:"-"`
}

// Shot is an immutable, validated Spec.
type Shot struct {
	spec Spec
}

// New validates s and returns a Shot owning copies of its slices.
// Stage 1 (Validate): id, timestamp, angle, characters, scores, frames.
// Stage 2 (Finalize): deep-copy slices so later edits to s cannot leak in.
func New(s Spec) (*Shot, error) {
	if strings.TrimSpace(s.ID) == "" {
		return nil, core.Invalid("shot_id", ErrEmptyID)
	}
	if !core.IsFinite(s.Timestamp) || s.Timestamp < 0 {
		return nil, core.Invalidf(field(s.ID, "timestamp"), "%w: %v", ErrBadTimestamp, s.Timestamp)
	}
	if !core.IsFinite(s.CameraAngle) || s.CameraAngle < 0 || s.CameraAngle >= 360 {
		return nil, core.Invalidf(field(s.ID, "camera_angle"), "%w: %v", ErrAngleOutOfRange, s.CameraAngle)
	}
	seen := make(map[string]struct{}, len(s.Characters))
	for i, c := range s.Characters {
		f := field(s.ID, fmt.Sprintf("characters[%d]", i))
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, core.Invalid(f, ErrEmptyCharacter)
		}
		if _, dup := seen[name]; dup {
			return nil, core.Invalidf(f, "%w: %q", ErrDuplicateCharacter, name)
		}
		seen[name] = struct{}{}
		if !inUnit(c.Position.X) || !inUnit(c.Position.Y) {
			return nil, core.Invalidf(f, "%w: (%v,%v)", ErrPositionOutOfRange, c.Position.X, c.Position.Y)
		}
	}
	if err := core.ValidateScore(field(s.ID, "audio_score"), s.AudioScore); err != nil {
		return nil, err
	}
	if err := core.ValidateScore(field(s.ID, "continuity_score"), s.ContinuityScore); err != nil {
		return nil, err
	}
	if err := frame.ValidateSequence(field(s.ID, "frames"), s.Frames); err != nil {
		return nil, err
	}

	out := s
	out.Characters = append([]core.Character(nil), s.Characters...)
	for i := range out.Characters {
		out.Characters[i].Name = strings.TrimSpace(out.Characters[i].Name)
	}
	out.Actions = append([]string(nil), s.Actions...)
	out.Objects = append([]string(nil), s.Objects...)
	out.Frames = append([]*frame.Frame(nil), s.Frames...)

	return &Shot{spec: out}, nil
}

// MustNew is New for fixtures; it panics on invalid input.
func MustNew(s Spec) *Shot {
	sh, err := New(s)
	if err != nil {
		panic(err)
	}
	return sh
}

// ID returns the shot identifier.
func (s *Shot) ID() string { return s.spec.ID }

// Timestamp returns the shot start time in seconds.
func (s *Shot) Timestamp() float64 { return s.spec.Timestamp }

// CameraAngle returns the camera angle in degrees, in [0,360).
func (s *Shot) CameraAngle() float64 { return s.spec.CameraAngle }

// Lighting returns the lighting label as supplied.
func (s *Shot) Lighting() string { return s.spec.Lighting }

// AudioScore returns the externally supplied audio score.
func (s *Shot) AudioScore() float64 { return s.spec.AudioScore }

// ContinuityScore returns the externally supplied continuity score.
func (s *Shot) ContinuityScore() float64 { return s.spec.ContinuityScore }

// Characters returns a copy of the on-screen characters.
func (s *Shot) Characters() []core.Character {
	return append([]core.Character(nil), s.spec.Characters...)
}

// Character looks a character up by exact name.
func (s *Shot) Character(name string) (core.Character, bool) {
	for _, c := range s.spec.Characters {
		if c.Name == name {
			return c, true
		}
	}
	return core.Character{}, false
}

// Actions returns a copy of the active actions.
func (s *Shot) Actions() []string { return append([]string(nil), s.spec.Actions...) }

// Objects returns a copy of the visible objects.
func (s *Shot) Objects() []string { return append([]string(nil), s.spec.Objects...) }

// Frames returns a copy of the frame list. Frames themselves are immutable.
func (s *Shot) Frames() []*frame.Frame { return append([]*frame.Frame(nil), s.spec.Frames...) }

// FrameCount returns the number of frames.
func (s *Shot) FrameCount() int { return len(s.spec.Frames) }

// Spec returns a copy of the validated description.
func (s *Shot) Spec() Spec {
	out := s.spec
	out.Characters = s.Characters()
	out.Actions = s.Actions()
	out.Objects = s.Objects()
	out.Frames = s.Frames()
	return out
}

// Validate checks a slice of shots for nil entries, for use at API entry points.
func Validate(shots []*Shot) error {
	for i, s := range shots {
		if s == nil {
			return core.Invalid(fmt.Sprintf("shots[%d]", i), ErrNilShot)
		}
	}
	return nil
}

func inUnit(v float64) bool { return core.IsFinite(v) && v >= 0 && v <= 1 }

func field(id, name string) string {
	if id == "" {
		return name
	}
	return fmt.Sprintf("shot %q: %s", id, name)
}
