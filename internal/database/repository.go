package database

import (
	"io"

	"imagegen/internal/entity"
)

// VariantRepository owns the output directory layout and persists
// encoded variants through the configured storage.
type VariantRepository interface {
	HeroPath(spec entity.HeroImageSpec, width int, ext string) string
	SinglePath(spec entity.SingleImageSpec, ext string) string
	Save(path string, data io.Reader) error
	Exists(path string) bool
	Root() string
}
