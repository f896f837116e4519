package project

import (
	"slices"

	"github.com/fhuszti/studio-ms-go/internal/model"
)

// VoiceoverPool keeps voice clips in the order they arrived.
type VoiceoverPool struct {
	items []model.Voiceover
	newID IDGen
}

func NewVoiceoverPool(newID IDGen) *VoiceoverPool {
	return &VoiceoverPool{newID: newID}
}

func (p *VoiceoverPool) Add(fd model.FileDescriptor) model.Voiceover {
	v := model.Voiceover{
		ID:        p.uniqueID(),
		Name:      fd.Name,
		SizeBytes: max(fd.SizeBytes, 0),
		MimeType:  fd.MimeType,
		Payload:   fd.Payload,
	}
	p.items = append(p.items, v)
	return v
}

// Insert puts an existing clip back at the end of the pool, replacing an
// empty or already taken id.
func (p *VoiceoverPool) Insert(v model.Voiceover) model.Voiceover {
	if _, taken := p.Find(v.ID); v.ID == "" || taken {
		v.ID = p.uniqueID()
	}
	v.SizeBytes = max(v.SizeBytes, 0)
	p.items = append(p.items, v)
	return v
}

func (p *VoiceoverPool) Remove(index int) (model.Voiceover, error) {
	if index < 0 || index >= len(p.items) {
		return model.Voiceover{}, ErrIndexOutOfRange
	}
	removed := p.items[index]
	p.items = slices.Delete(slices.Clone(p.items), index, index+1)
	return removed, nil
}

func (p *VoiceoverPool) Find(id string) (model.Voiceover, bool) {
	i := slices.IndexFunc(p.items, func(v model.Voiceover) bool { return v.ID == id })
	if i < 0 {
		return model.Voiceover{}, false
	}
	return p.items[i], true
}

func (p *VoiceoverPool) List() []model.Voiceover {
	out := slices.Clone(p.items)
	if out == nil {
		out = []model.Voiceover{}
	}
	return out
}

func (p *VoiceoverPool) Len() int { return len(p.items) }

func (p *VoiceoverPool) uniqueID() string {
	for {
		id := p.newID()
		if _, taken := p.Find(id); !taken {
			return id
		}
	}
}
