package renderer

import "errors"

var (
	ErrInvalidOptions = errors.New("renderer: invalid options")
	ErrSceneNotReady  = errors.New("renderer: scene has no camera or world")
	ErrWriteImage     = errors.New("renderer: failed to write image")
	ErrUnknownFormat  = errors.New("renderer: unsupported output format")
)
