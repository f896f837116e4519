package studio

import "errors"

var (
	ErrSavedProjectNotFound = errors.New("studio: project was never saved")
	ErrMimeTypeMismatch     = errors.New("studio: mime type does not match the asset kind")
)
