package model

import (
	"crypto/sha256"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Snapshot is the read-only aggregate of a project at one point in time.
type Snapshot struct {
	Script        string        `json:"script"`
	Scenes        []Scene       `json:"scenes"`
	Assets        AssetBuckets  `json:"assets"`
	Voiceovers    []Voiceover   `json:"voiceovers"`
	Branding      Branding      `json:"branding"`
	ExportOptions ExportOptions `json:"export_options"`
}

func (s Snapshot) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal Snapshot: %w", err)
	}
	return b, nil
}

func (s *Snapshot) Scan(src interface{}) error {
	if src == nil {
		*s = Snapshot{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("Snapshot.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("unmarshal Snapshot: %w", err)
	}
	return nil
}

// ObjectKeys lists every stored file the snapshot refers to.
func (s Snapshot) ObjectKeys() map[string]struct{} {
	keys := make(map[string]struct{})
	add := func(ks ...string) {
		for _, k := range ks {
			if k != "" {
				keys[k] = struct{}{}
			}
		}
	}
	for _, k := range AssetKinds {
		for _, a := range s.Assets.Bucket(k) {
			add(a.Payload, a.Thumbnail)
		}
	}
	for _, v := range s.Voiceovers {
		add(v.Payload)
	}
	if s.Branding.Logo != nil {
		add(s.Branding.Logo.Payload, s.Branding.Logo.Thumbnail)
	}
	return keys
}

// Digest is a short content hash of the snapshot. Equal snapshots share it.
func (s Snapshot) Digest() string {
	b, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:8])
}

const (
	PreviewScriptLimit  = 120
	previewPlaceholder  = "Your script will appear here..."
	previewTitleDivider = " • "
)

// PreviewText is the one-line summary shown above the export controls.
func (s Snapshot) PreviewText() string {
	var b strings.Builder
	runes := []rune(s.Script)
	switch {
	case len(runes) == 0:
		b.WriteString(previewPlaceholder)
	case len(runes) > PreviewScriptLimit:
		b.WriteString(string(runes[:PreviewScriptLimit]))
		b.WriteString("…")
	default:
		b.WriteString(s.Script)
	}

	titles := make([]string, len(s.Scenes))
	for i, sc := range s.Scenes {
		titles[i] = sc.Title
	}
	b.WriteString(" | Scenes: ")
	b.WriteString(strings.Join(titles, previewTitleDivider))
	return b.String()
}

// Preview is the derived summary of a snapshot.
type Preview struct {
	Text                 string  `json:"text"`
	SceneCount           int     `json:"scene_count"`
	MediaCount           int     `json:"media_count"`
	VoiceoverCount       int     `json:"voiceover_count"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	ExportSummary        string  `json:"export_summary"`
}

func (s Snapshot) Preview() Preview {
	var total float64
	for _, sc := range s.Scenes {
		total += sc.DurationSeconds
	}
	return Preview{
		Text:                 s.PreviewText(),
		SceneCount:           len(s.Scenes),
		MediaCount:           len(s.Assets.Images) + len(s.Assets.Videos),
		VoiceoverCount:       len(s.Voiceovers),
		TotalDurationSeconds: total,
		ExportSummary:        s.ExportOptions.Describe(),
	}
}
