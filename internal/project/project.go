package project

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

// AssistFallbackScript is what AI-assist writes into a blank script.
const AssistFallbackScript = "Intro: Welcome to our product...\n\nScene 1: Problem statement...\n\nScene 2: Solution overview...\n\nOutro: Call-to-action."

// blankScriptLimit is the longest script AI-assist is still allowed to replace.
const blankScriptLimit = 10

// Project is the editable state of one video. Every exported method is a
// command or a query; commands hold the lock for their whole duration so two
// of them never interleave.
type Project struct {
	mu sync.RWMutex

	script        string
	assets        *AssetPool
	voiceovers    *VoiceoverPool
	scenes        *SceneList
	branding      model.Branding
	exportOptions model.ExportOptions
	revision      uint64
}

type Option func(*options)

type options struct {
	newID IDGen
}

// WithIDGenerator replaces the uuid generator used for scenes, assets and
// voiceovers.
func WithIDGenerator(gen IDGen) Option {
	return func(o *options) { o.newID = gen }
}

func build(opts []Option) *Project {
	o := options{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return &Project{
		assets:        NewAssetPool(o.newID),
		voiceovers:    NewVoiceoverPool(o.newID),
		scenes:        NewSceneList(o.newID),
		branding:      model.DefaultBranding(),
		exportOptions: model.DefaultExportOptions(),
	}
}

// New returns a project holding the single bootstrap scene.
func New(opts ...Option) *Project {
	p := build(opts)
	p.scenes.Insert(model.Scene{
		Title:           "Intro",
		DurationSeconds: model.DefaultSceneDuration,
		Transition:      model.TransitionFade,
	})
	return p
}

// Restore rebuilds a project from a saved snapshot at the given revision.
// Pool items keep their ids so that scene references stay meaningful; a
// duplicate id gets a fresh one and references resolve to the first holder.
func Restore(snap model.Snapshot, revision uint64, opts ...Option) (*Project, error) {
	p := build(opts)
	if err := snap.ExportOptions.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExportOptions, err)
	}
	p.script = snap.Script
	for _, k := range model.AssetKinds {
		for _, a := range snap.Assets.Bucket(k) {
			if _, err := p.assets.Insert(k, a); err != nil {
				return nil, err
			}
		}
	}
	for _, v := range snap.Voiceovers {
		p.voiceovers.Insert(v)
	}
	for _, s := range snap.Scenes {
		p.scenes.Insert(s)
	}
	p.branding = snap.Branding.Clone()
	p.exportOptions = snap.ExportOptions
	p.revision = revision
	return p, nil
}

func (p *Project) Script() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.script
}

func (p *Project) SetScript(script string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script = script
	p.revision++
}

// ReplaceScriptIfBlank writes script only when the current one is empty or
// nearly so. It reports whether the script was replaced.
func (p *Project) ReplaceScriptIfBlank(script string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if utf8.RuneCountInString(p.script) > blankScriptLimit {
		return false
	}
	p.script = script
	p.revision++
	return true
}

func (p *Project) AddAsset(kind model.AssetKind, fd model.FileDescriptor) (model.Asset, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, err := p.assets.Add(kind, fd)
	if err != nil {
		return model.Asset{}, err
	}
	p.revision++
	return a, nil
}

// RemoveAsset drops a pool asset. Scenes keep their references to it.
func (p *Project) RemoveAsset(kind model.AssetKind, index int) (model.Asset, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, err := p.assets.Remove(kind, index)
	if err != nil {
		return model.Asset{}, err
	}
	p.revision++
	return a, nil
}

func (p *Project) Asset(kind model.AssetKind, index int) (model.Asset, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.assets.At(kind, index)
}

func (p *Project) AddVoiceover(fd model.FileDescriptor) model.Voiceover {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := p.voiceovers.Add(fd)
	p.revision++
	return v
}

// RemoveVoiceover drops a voiceover. Scenes assigned to it keep the id.
func (p *Project) RemoveVoiceover(index int) (model.Voiceover, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, err := p.voiceovers.Remove(index)
	if err != nil {
		return model.Voiceover{}, err
	}
	p.revision++
	return v, nil
}

func (p *Project) AddScene() model.Scene {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.scenes.Add()
	p.revision++
	return s
}

func (p *Project) RemoveScene(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.scenes.Remove(id); err != nil {
		return err
	}
	p.revision++
	return nil
}

func (p *Project) MoveScene(from, to int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.scenes.Move(from, to); err != nil {
		return err
	}
	if from != to {
		p.revision++
	}
	return nil
}

func (p *Project) UpdateScene(id string, patch model.ScenePatch) (model.Scene, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, err := p.scenes.Update(id, patch)
	if err != nil {
		return model.Scene{}, err
	}
	if !patch.Empty() {
		p.revision++
	}
	return s, nil
}

// AttachAsset appends a reference to asset on the scene.
func (p *Project) AttachAsset(sceneID string, asset model.Asset) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.scenes.Attach(sceneID, asset.Ref()); err != nil {
		return err
	}
	p.revision++
	return nil
}

// AttachAssetByID looks the asset up in the pool, then attaches it.
func (p *Project) AttachAssetByID(sceneID, assetID string) (model.AssetRef, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.assets.Find(assetID)
	if !ok {
		return model.AssetRef{}, ErrAssetNotFound
	}
	if err := p.scenes.Attach(sceneID, a.Ref()); err != nil {
		return model.AssetRef{}, err
	}
	p.revision++
	return a.Ref(), nil
}

func (p *Project) DetachAsset(sceneID string, index int) (model.AssetRef, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ref, err := p.scenes.Detach(sceneID, index)
	if err != nil {
		return model.AssetRef{}, err
	}
	p.revision++
	return ref, nil
}

func (p *Project) Branding() model.Branding {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.branding.Clone()
}

// UpdateBranding replaces the branding record with the patched copy.
func (p *Project) UpdateBranding(patch model.BrandingPatch) model.Branding {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.branding = patch.Apply(p.branding)
	p.revision++
	return p.branding.Clone()
}

func (p *Project) ExportOptions() model.ExportOptions {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exportOptions
}

// UpdateExportOptions validates the patched record before replacing the
// current one; an invalid value keeps the previous record.
func (p *Project) UpdateExportOptions(patch model.ExportOptionsPatch) (model.ExportOptions, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := patch.Apply(p.exportOptions)
	if err := next.Validate(); err != nil {
		return p.exportOptions, fmt.Errorf("%w: %v", ErrInvalidExportOptions, err)
	}
	p.exportOptions = next
	p.revision++
	return next, nil
}

// Revision counts applied mutations.
func (p *Project) Revision() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.revision
}

// Snapshot copies the whole current state. It is never cached.
func (p *Project) Snapshot() model.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked()
}

// SnapshotAt returns the snapshot together with the revision it reflects.
func (p *Project) SnapshotAt() (model.Snapshot, uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked(), p.revision
}

func (p *Project) Preview() model.Preview {
	return p.Snapshot().Preview()
}

func (p *Project) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Script:        p.script,
		Scenes:        p.scenes.Scenes(),
		Assets:        p.assets.Buckets(),
		Voiceovers:    p.voiceovers.List(),
		Branding:      p.branding.Clone(),
		ExportOptions: p.exportOptions,
	}
}
