package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hexlattice/contourpress/mesh"
	"github.com/hexlattice/contourpress/stlio"
	"github.com/hexlattice/contourpress/threemf"
	"github.com/hexlattice/contourpress/transformlang"
)

// loadMesh reads path as STL or 3MF based on its extension.
func loadMesh(path string) (*mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".3mf":
		return threemf.ReadFile(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return stlio.Read(f)
	}
}

// loadAndTransform reads path then, if chain is non-empty, parses and
// applies the transform mini-language chain to it.
func loadAndTransform(path, chain string) (*mesh.Mesh, error) {
	m, err := loadMesh(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if strings.TrimSpace(chain) == "" {
		return m, nil
	}
	ops, err := transformlang.Parse(chain)
	if err != nil {
		return nil, err
	}
	out, err := mesh.Apply(*m, ops)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
