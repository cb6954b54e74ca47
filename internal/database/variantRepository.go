package database

import (
	"fmt"
	"io"
	"path/filepath"

	"imagegen/internal/entity"
	"imagegen/internal/pkg/storage"
)

func NewVariantRepository(storage storage.FileStorage, heroSubdir string) VariantRepository {
	return &fileVariantRepository{storage: storage, heroSubdir: heroSubdir}
}

type fileVariantRepository struct {
	storage    storage.FileStorage
	heroSubdir string
}

// HeroPath places resized hero variants under the hero subdirectory,
// named <name>-<width>w.<ext>.
func (r *fileVariantRepository) HeroPath(spec entity.HeroImageSpec, width int, ext string) string {
	return filepath.Join(r.heroSubdir, fmt.Sprintf("%s-%dw.%s", spec.Name, width, ext))
}

// SinglePath mirrors the source's relative directory in the output
// tree, named <outputName>.<ext>.
func (r *fileVariantRepository) SinglePath(spec entity.SingleImageSpec, ext string) string {
	return filepath.Join(filepath.Dir(spec.InputRelPath), spec.OutputName+"."+ext)
}

func (r *fileVariantRepository) Save(path string, data io.Reader) error {
	return r.storage.Save(path, data)
}

func (r *fileVariantRepository) Exists(path string) bool {
	return r.storage.Exists(path)
}

func (r *fileVariantRepository) Root() string {
	return r.storage.Root()
}
