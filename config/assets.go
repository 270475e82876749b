package config

import (
	"os"
	"path/filepath"
)

// NewSortMapperFromAssets creates a new SortMapper from the asset folder, relative to the executing binary.
func NewSortMapperFromAssets() (SortMapper, error) {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	return NewSortMapperFromFolder(filepath.Dir(ex) + "/assets/sort/")
}
