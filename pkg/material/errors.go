package material

import "errors"

var (
	ErrInvalidTexture  = errors.New("material: invalid texture")
	ErrInvalidMaterial = errors.New("material: invalid material")
)
