package types

import "io/fs"

type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	default:
		return "file"
	}
}

// KindOf classifies a reported entry type. Only the directory bit counts:
// symlinks, sockets, devices and the like are all files.
func KindOf(mode fs.FileMode) Kind {
	if mode.IsDir() {
		return KindDirectory
	}
	return KindFile
}

type Entry struct {
	Name string
	Kind Kind
}

func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

func (e *Entry) IsSelfOrParent() bool {
	return e.Name == "." || e.Name == ".."
}

type Mode int

const (
	ModeFlat Mode = iota
	ModeTree
)

func ModeFromTree(tree bool) Mode {
	if tree {
		return ModeTree
	}
	return ModeFlat
}

func (m Mode) String() string {
	if m == ModeTree {
		return "tree"
	}
	return "flat"
}

// Scanner reads the immediate entries of one directory. Every call returns
// a fresh slice owned by the caller, in the order the OS yields entries.
type Scanner interface {
	Scan(path string) ([]*Entry, error)
}
