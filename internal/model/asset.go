package model

import (
	"fmt"
	"strings"
)

// AssetKind partitions the asset pool.
type AssetKind string

const (
	KindImage AssetKind = "image"
	KindVideo AssetKind = "video"
	KindAudio AssetKind = "audio"
)

// AssetKinds lists every kind in bucket order.
var AssetKinds = []AssetKind{KindImage, KindVideo, KindAudio}

func (k AssetKind) Valid() bool {
	switch k {
	case KindImage, KindVideo, KindAudio:
		return true
	}
	return false
}

// Accepts reports whether a MIME type belongs to this kind ("image/png" is an
// image, "audio/webm" is audio...).
func (k AssetKind) Accepts(mimeType string) bool {
	if !k.Valid() {
		return false
	}
	return strings.HasPrefix(strings.ToLower(mimeType), string(k)+"/")
}

// ParseAssetKind accepts both the singular kind and the plural bucket name.
func ParseAssetKind(s string) (AssetKind, error) {
	switch strings.ToLower(s) {
	case "image", "images":
		return KindImage, nil
	case "video", "videos":
		return KindVideo, nil
	case "audio":
		return KindAudio, nil
	}
	return "", fmt.Errorf("unknown asset kind %q", s)
}

// FileDescriptor is what an upload or a recording hands to the pools.
// Payload is an opaque handle to the stored bytes.
type FileDescriptor struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	MimeType  string `json:"mime_type"`
	Payload   string `json:"payload"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Asset is an uploaded media item. It is never mutated after creation.
type Asset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SizeBytes int64     `json:"size_bytes"`
	MimeType  string    `json:"mime_type"`
	Kind      AssetKind `json:"kind"`
	Payload   string    `json:"payload"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

// Ref returns the denormalized reference a scene keeps.
func (a Asset) Ref() AssetRef {
	return AssetRef{ID: a.ID, Name: a.Name, Kind: a.Kind}
}

// AssetRef is a weak pointer from a scene to a pool asset. It survives the
// asset's removal from the pool.
type AssetRef struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Kind AssetKind `json:"kind"`
}

// AssetBuckets is the pool as seen by a snapshot.
type AssetBuckets struct {
	Images []Asset `json:"images"`
	Videos []Asset `json:"videos"`
	Audio  []Asset `json:"audio"`
}

// Bucket returns the slice for a kind.
func (b AssetBuckets) Bucket(k AssetKind) []Asset {
	switch k {
	case KindImage:
		return b.Images
	case KindVideo:
		return b.Videos
	case KindAudio:
		return b.Audio
	}
	return nil
}

// Voiceover is a recorded or uploaded voice clip.
type Voiceover struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	MimeType  string `json:"mime_type"`
	Payload   string `json:"payload"`
}
