package tree

type Kind string

const (
	KindBinding Kind = "binding"
	KindHandler Kind = "handler"
	KindOther   Kind = "other"
)

// Directory is one level of the scanned source tree. Files and directories keep the order
// returned by the file system, which is sorted by name.
type Directory struct {
	Path        string
	Directories []*Directory
	Files       []string
}
