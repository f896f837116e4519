package project

import (
	"slices"

	"github.com/fhuszti/studio-ms-go/internal/model"
)

// IDGen produces ids for scenes, assets and voiceovers.
type IDGen func() string

// AssetPool holds uploaded media, one bucket per kind, in upload order.
type AssetPool struct {
	buckets map[model.AssetKind][]model.Asset
	newID   IDGen
}

func NewAssetPool(newID IDGen) *AssetPool {
	return &AssetPool{
		buckets: make(map[model.AssetKind][]model.Asset, len(model.AssetKinds)),
		newID:   newID,
	}
}

// Add stores a new asset built from fd. Identical uploads give distinct assets.
func (p *AssetPool) Add(kind model.AssetKind, fd model.FileDescriptor) (model.Asset, error) {
	if !kind.Valid() {
		return model.Asset{}, ErrInvalidKind
	}
	a := model.Asset{
		ID:        p.uniqueID(),
		Name:      fd.Name,
		SizeBytes: max(fd.SizeBytes, 0),
		MimeType:  fd.MimeType,
		Kind:      kind,
		Payload:   fd.Payload,
		Thumbnail: fd.Thumbnail,
	}
	p.buckets[kind] = append(p.buckets[kind], a)
	return a, nil
}

// Insert puts an existing asset back into its kind's bucket. An empty or
// already taken id is replaced so ids stay unique across the pool.
func (p *AssetPool) Insert(kind model.AssetKind, a model.Asset) (model.Asset, error) {
	if !kind.Valid() {
		return model.Asset{}, ErrInvalidKind
	}
	if _, taken := p.Find(a.ID); a.ID == "" || taken {
		a.ID = p.uniqueID()
	}
	a.Kind = kind
	a.SizeBytes = max(a.SizeBytes, 0)
	p.buckets[kind] = append(p.buckets[kind], a)
	return a, nil
}

// Remove drops the asset at index within the kind's bucket.
func (p *AssetPool) Remove(kind model.AssetKind, index int) (model.Asset, error) {
	if !kind.Valid() {
		return model.Asset{}, ErrInvalidKind
	}
	bucket := p.buckets[kind]
	if index < 0 || index >= len(bucket) {
		return model.Asset{}, ErrIndexOutOfRange
	}
	removed := bucket[index]
	p.buckets[kind] = slices.Delete(slices.Clone(bucket), index, index+1)
	return removed, nil
}

// At returns the asset at index within the kind's bucket.
func (p *AssetPool) At(kind model.AssetKind, index int) (model.Asset, error) {
	if !kind.Valid() {
		return model.Asset{}, ErrInvalidKind
	}
	bucket := p.buckets[kind]
	if index < 0 || index >= len(bucket) {
		return model.Asset{}, ErrIndexOutOfRange
	}
	return bucket[index], nil
}

func (p *AssetPool) Find(id string) (model.Asset, bool) {
	for _, k := range model.AssetKinds {
		for _, a := range p.buckets[k] {
			if a.ID == id {
				return a, true
			}
		}
	}
	return model.Asset{}, false
}

func (p *AssetPool) List(kind model.AssetKind) []model.Asset {
	out := slices.Clone(p.buckets[kind])
	if out == nil {
		out = []model.Asset{}
	}
	return out
}

func (p *AssetPool) Buckets() model.AssetBuckets {
	return model.AssetBuckets{
		Images: p.List(model.KindImage),
		Videos: p.List(model.KindVideo),
		Audio:  p.List(model.KindAudio),
	}
}

func (p *AssetPool) uniqueID() string {
	for {
		id := p.newID()
		if _, taken := p.Find(id); !taken {
			return id
		}
	}
}
