package project

import (
	"fmt"
	"slices"

	"github.com/fhuszti/studio-ms-go/internal/model"
)

// SceneList is the ordered storyboard. Order is the order of the final video;
// ids never change when scenes move.
type SceneList struct {
	scenes []model.Scene
	newID  IDGen
}

func NewSceneList(newID IDGen) *SceneList {
	return &SceneList{newID: newID}
}

// Add appends a scene numbered after the current count.
func (l *SceneList) Add() model.Scene {
	s := model.Scene{
		ID:              l.uniqueID(),
		Title:           fmt.Sprintf("Scene %d", len(l.scenes)+1),
		DurationSeconds: model.DefaultSceneDuration,
		Transition:      model.TransitionCut,
		AttachedAssets:  []model.AssetRef{},
	}
	l.scenes = append(l.scenes, s)
	return s.Clone()
}

// Insert appends an existing scene, used when bootstrapping or restoring.
// A colliding or empty id is replaced with a fresh one.
func (l *SceneList) Insert(s model.Scene) model.Scene {
	if s.ID == "" || l.indexOf(s.ID) >= 0 {
		s.ID = l.uniqueID()
	}
	if d, ok := model.ClampDuration(s.DurationSeconds); ok {
		s.DurationSeconds = d
	} else {
		s.DurationSeconds = model.DefaultSceneDuration
	}
	if !s.Transition.Valid() {
		s.Transition = model.TransitionCut
	}
	s = s.Clone()
	l.scenes = append(l.scenes, s)
	return s.Clone()
}

func (l *SceneList) Remove(id string) error {
	i := l.indexOf(id)
	if i < 0 {
		return ErrSceneNotFound
	}
	l.scenes = slices.Delete(slices.Clone(l.scenes), i, i+1)
	return nil
}

// Move relocates the scene at from to to, shifting the scenes in between.
func (l *SceneList) Move(from, to int) error {
	n := len(l.scenes)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	next := slices.Clone(l.scenes)
	moved := next[from]
	next = slices.Delete(next, from, from+1)
	next = slices.Insert(next, to, moved)
	l.scenes = next
	return nil
}

// Update applies patch to the scene with id. The patch is validated as a
// whole before any field is written.
func (l *SceneList) Update(id string, patch model.ScenePatch) (model.Scene, error) {
	i := l.indexOf(id)
	if i < 0 {
		return model.Scene{}, ErrSceneNotFound
	}

	next := l.scenes[i].Clone()
	if patch.DurationSeconds != nil {
		d, ok := model.ClampDuration(*patch.DurationSeconds)
		if !ok {
			return model.Scene{}, ErrInvalidDuration
		}
		next.DurationSeconds = d
	}
	if patch.Transition != nil {
		if !patch.Transition.Valid() {
			return model.Scene{}, ErrInvalidTransition
		}
		next.Transition = *patch.Transition
	}
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.VoiceoverID != nil {
		next.VoiceoverID = *patch.VoiceoverID
	}

	l.scenes[i] = next
	return next.Clone(), nil
}

// Attach appends ref to the scene. The same asset may be attached twice.
func (l *SceneList) Attach(sceneID string, ref model.AssetRef) error {
	i := l.indexOf(sceneID)
	if i < 0 {
		return ErrSceneNotFound
	}
	next := l.scenes[i].Clone()
	next.AttachedAssets = append(next.AttachedAssets, ref)
	l.scenes[i] = next
	return nil
}

func (l *SceneList) Detach(sceneID string, index int) (model.AssetRef, error) {
	i := l.indexOf(sceneID)
	if i < 0 {
		return model.AssetRef{}, ErrSceneNotFound
	}
	refs := l.scenes[i].AttachedAssets
	if index < 0 || index >= len(refs) {
		return model.AssetRef{}, ErrIndexOutOfRange
	}
	removed := refs[index]
	next := l.scenes[i].Clone()
	next.AttachedAssets = slices.Delete(next.AttachedAssets, index, index+1)
	l.scenes[i] = next
	return removed, nil
}

func (l *SceneList) Get(id string) (model.Scene, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return model.Scene{}, false
	}
	return l.scenes[i].Clone(), true
}

func (l *SceneList) Len() int { return len(l.scenes) }

// Scenes returns a deep copy in storyboard order.
func (l *SceneList) Scenes() []model.Scene {
	out := make([]model.Scene, len(l.scenes))
	for i, s := range l.scenes {
		out[i] = s.Clone()
	}
	return out
}

func (l *SceneList) indexOf(id string) int {
	return slices.IndexFunc(l.scenes, func(s model.Scene) bool { return s.ID == id })
}

func (l *SceneList) uniqueID() string {
	for {
		id := l.newID()
		if id != "" && l.indexOf(id) < 0 {
			return id
		}
	}
}
