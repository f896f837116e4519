package model

import (
	"math"
	"slices"
)

// Transition is how a scene enters the final cut.
type Transition string

const (
	TransitionCut   Transition = "cut"
	TransitionFade  Transition = "fade"
	TransitionSlide Transition = "slide"
	TransitionZoom  Transition = "zoom"
)

func (t Transition) Valid() bool {
	switch t {
	case TransitionCut, TransitionFade, TransitionSlide, TransitionZoom:
		return true
	}
	return false
}

const (
	MinSceneDuration     = 1.0
	MaxSceneDuration     = 120.0
	DefaultSceneDuration = 5.0
)

// ClampDuration forces d into [MinSceneDuration, MaxSceneDuration].
// NaN has no meaningful clamp, ok is false for it.
func ClampDuration(d float64) (clamped float64, ok bool) {
	if math.IsNaN(d) {
		return 0, false
	}
	return math.Min(MaxSceneDuration, math.Max(MinSceneDuration, d)), true
}

// Scene is one ordered unit of the final video.
type Scene struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	DurationSeconds float64    `json:"duration_seconds"`
	Transition      Transition `json:"transition"`
	AttachedAssets  []AssetRef `json:"attached_assets"`
	VoiceoverID     string     `json:"voiceover_id,omitempty"`
}

// Clone returns a copy that shares no backing array with s.
func (s Scene) Clone() Scene {
	s.AttachedAssets = slices.Clone(s.AttachedAssets)
	if s.AttachedAssets == nil {
		s.AttachedAssets = []AssetRef{}
	}
	return s
}

// ScenePatch carries the fields to change on a scene. Nil means untouched;
// an empty VoiceoverID clears the assignment.
type ScenePatch struct {
	Title           *string     `json:"title,omitempty"`
	DurationSeconds *float64    `json:"duration_seconds,omitempty"`
	Transition      *Transition `json:"transition,omitempty"`
	VoiceoverID     *string     `json:"voiceover_id,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p ScenePatch) Empty() bool {
	return p.Title == nil && p.DurationSeconds == nil && p.Transition == nil && p.VoiceoverID == nil
}
