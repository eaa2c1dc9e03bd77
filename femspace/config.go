// Package femspace is the boundary between a loaded mesh and the element-space,
// assembly and boundary-condition components built on top of it. Those
// components read the mesh only through mesh.Reader.
package femspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/notargets/easymesh/mesh"
)

// Template files describing the linear triangle reference element
const (
	TemplateGeometry  = "triangle.tmp_geo"
	CoordTransform    = "triangle.crd_trs"
	TemplateDOF       = "triangle.1.tmp_dof"
	BasisFunctionData = "triangle.1.bas_fun"
)

var TemplateFiles = []string{TemplateGeometry, CoordTransform, TemplateDOF, BasisFunctionData}

// Config is passed explicitly to element-space construction. The template
// directory is never taken from the process environment.
type Config struct {
	TemplateDir string
}

// Path resolves a template file name inside the template directory
func (c Config) Path(name string) string {
	return filepath.Join(c.TemplateDir, name)
}

// Validate checks that the template directory holds every reference element file
func (c Config) Validate() error {
	if c.TemplateDir == "" {
		return fmt.Errorf("%w: no template directory configured", mesh.ErrIO)
	}
	fi, err := os.Stat(c.TemplateDir)
	if err != nil {
		return fmt.Errorf("%w: template directory: %v", mesh.ErrIO, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: template path %s is not a directory", mesh.ErrIO, c.TemplateDir)
	}
	for _, name := range TemplateFiles {
		if _, err = os.Stat(c.Path(name)); err != nil {
			return fmt.Errorf("%w: template file: %v", mesh.ErrIO, err)
		}
	}
	return nil
}
