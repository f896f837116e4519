package model

import (
	"fmt"
	"strings"
)

// Branding controls the watermark and logo overlay.
type Branding struct {
	WatermarkEnabled bool            `json:"watermark_enabled"`
	WatermarkText    string          `json:"watermark_text"`
	Logo             *FileDescriptor `json:"logo"`
}

// DefaultBranding is what a fresh project starts with.
func DefaultBranding() Branding {
	return Branding{WatermarkEnabled: true, WatermarkText: "My Brand"}
}

// Clone copies the logo so callers cannot reach the stored descriptor.
func (b Branding) Clone() Branding {
	if b.Logo != nil {
		logo := *b.Logo
		b.Logo = &logo
	}
	return b
}

// BrandingPatch replaces the listed fields of the branding record.
type BrandingPatch struct {
	WatermarkEnabled *bool           `json:"watermark_enabled,omitempty"`
	WatermarkText    *string         `json:"watermark_text,omitempty"`
	Logo             *FileDescriptor `json:"logo,omitempty"`
	ClearLogo        bool            `json:"clear_logo,omitempty"`
}

// Apply returns a new record with the patch merged in.
func (p BrandingPatch) Apply(b Branding) Branding {
	out := b.Clone()
	if p.WatermarkEnabled != nil {
		out.WatermarkEnabled = *p.WatermarkEnabled
	}
	if p.WatermarkText != nil {
		out.WatermarkText = *p.WatermarkText
	}
	if p.ClearLogo {
		out.Logo = nil
	}
	if p.Logo != nil {
		logo := *p.Logo
		out.Logo = &logo
	}
	return out
}

type Resolution string

const (
	Resolution2160p Resolution = "3840x2160"
	Resolution1440p Resolution = "2560x1440"
	Resolution1080p Resolution = "1920x1080"
	Resolution720p  Resolution = "1280x720"
)

func (r Resolution) Valid() bool {
	switch r {
	case Resolution2160p, Resolution1440p, Resolution1080p, Resolution720p:
		return true
	}
	return false
}

type Format string

const (
	FormatMP4 Format = "mp4"
	FormatMOV Format = "mov"
)

func (f Format) Valid() bool {
	return f == FormatMP4 || f == FormatMOV
}

// ValidFPS reports whether fps is one of the supported frame rates.
func ValidFPS(fps int) bool {
	return fps == 24 || fps == 30 || fps == 60
}

// ExportOptions configures the export step.
type ExportOptions struct {
	Resolution       Resolution `json:"resolution"`
	Format           Format     `json:"format"`
	FPS              int        `json:"fps"`
	IncludeWatermark bool       `json:"include_watermark"`
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Resolution:       Resolution1080p,
		Format:           FormatMP4,
		FPS:              30,
		IncludeWatermark: true,
	}
}

// Validate checks every enumerated field.
func (o ExportOptions) Validate() error {
	if !o.Resolution.Valid() {
		return fmt.Errorf("resolution %q is not supported", o.Resolution)
	}
	if !o.Format.Valid() {
		return fmt.Errorf("format %q is not supported", o.Format)
	}
	if !ValidFPS(o.FPS) {
		return fmt.Errorf("fps %d is not supported", o.FPS)
	}
	return nil
}

// Describe is the sentence the export dialog confirms with.
func (o ExportOptions) Describe() string {
	s := fmt.Sprintf("Export as %s in %s at %d FPS", strings.ToUpper(string(o.Format)), o.Resolution, o.FPS)
	if o.IncludeWatermark {
		s += " with watermark"
	}
	return s + "."
}

// ExportOptionsPatch replaces the listed fields of the export record.
type ExportOptionsPatch struct {
	Resolution       *Resolution `json:"resolution,omitempty"`
	Format           *Format     `json:"format,omitempty"`
	FPS              *int        `json:"fps,omitempty"`
	IncludeWatermark *bool       `json:"include_watermark,omitempty"`
}

func (p ExportOptionsPatch) Apply(o ExportOptions) ExportOptions {
	if p.Resolution != nil {
		o.Resolution = *p.Resolution
	}
	if p.Format != nil {
		o.Format = *p.Format
	}
	if p.FPS != nil {
		o.FPS = *p.FPS
	}
	if p.IncludeWatermark != nil {
		o.IncludeWatermark = *p.IncludeWatermark
	}
	return o
}
