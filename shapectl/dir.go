package shapectl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/polygen"
)

// DirResolver resolves export targets to YAML files in a directory. The path
// "walls/left" resolves to the file walls/left.yaml below Dir.
type DirResolver struct {
	Dir string
}

func (r DirResolver) Resolve(path string) (Target, error) {
	if path == "" {
		return nil, fmt.Errorf("empty target path")
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("target path %q is outside of %s", path, r.Dir)
	}
	return fileTarget(filepath.Join(r.Dir, clean+".yaml")), nil
}

// ExportFile is the document written to export files.
type ExportFile struct {
	Points [][2]float64   `yaml:"points,omitempty,flow"`
	Hulls  [][][2]float64 `yaml:"hulls,omitempty"`
}

type fileTarget string

func (f fileTarget) SetShape(s polygen.Shape) error {
	return f.write(ExportFile{Points: coords(s)})
}

func (f fileTarget) SetHulls(p polygen.Partition) error {
	doc := ExportFile{Hulls: make([][][2]float64, len(p))}
	for i, piece := range p {
		doc.Hulls[i] = coords(piece)
	}
	return f.write(doc)
}

func (f fileTarget) write(doc ExportFile) error {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(string(f)), 0o755); err != nil {
		return err
	}
	return os.WriteFile(string(f), b, 0o644)
}

func coords(s polygen.Shape) [][2]float64 {
	out := make([][2]float64, 0, s.Len())
	for _, pt := range s.All() {
		out = append(out, [2]float64{pt.X, pt.Y})
	}
	return out
}

// ReadExportFile reads a file written by a target of a [DirResolver].
func ReadExportFile(path string) (ExportFile, error) {
	var doc ExportFile
	b, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	err = yaml.Unmarshal(b, &doc)
	return doc, err
}
