package project

import "errors"

// Every error below leaves the project exactly as it was before the call.
var (
	ErrIndexOutOfRange      = errors.New("project: index out of range")
	ErrSceneNotFound        = errors.New("project: scene not found")
	ErrAssetNotFound        = errors.New("project: asset not found")
	ErrInvalidKind          = errors.New("project: invalid asset kind")
	ErrInvalidTransition    = errors.New("project: invalid transition")
	ErrInvalidDuration      = errors.New("project: invalid duration")
	ErrInvalidExportOptions = errors.New("project: invalid export options")
)
