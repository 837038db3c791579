package tree

import (
	"path/filepath"
	"strings"
)

type Classifier struct {
	BindingsFile  string
	LibraryMarker string
	HandlerSuffix string
	ArtifactDir   string
}

func (r *Classifier) Classify(path string) Kind {
	if r.IsBinding(path) {
		return KindBinding
	}
	if r.IsHandler(path) {
		return KindHandler
	}

	return KindOther
}

func (r *Classifier) IsBinding(path string) bool {
	slashed := filepath.ToSlash(path)
	return strings.HasSuffix(slashed, r.BindingsFile) && !r.IsArtifact(slashed)
}

func (r *Classifier) IsHandler(path string) bool {
	slashed := filepath.ToSlash(path)
	return strings.Contains(slashed, r.LibraryMarker) &&
		strings.HasSuffix(slashed, r.HandlerSuffix) &&
		!r.IsArtifact(slashed)
}

func (r *Classifier) IsArtifact(path string) bool {
	return strings.Contains(filepath.ToSlash(path), "/"+r.ArtifactDir+"/")
}

// Entity strips the handler suffix from the file name.
func (r *Classifier) Entity(path string) string {
	return strings.TrimSuffix(filepath.Base(path), r.HandlerSuffix)
}
