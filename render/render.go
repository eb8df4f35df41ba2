package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/fioncat/judge/types"
	"github.com/sirupsen/logrus"
)

const treeMarker = `\_ `

type Options struct {
	// MaxPath bounds composed child paths in tree mode, <= 0 means no bound.
	MaxPath int

	// Color paints directory names. The caller decides whether the output
	// supports it.
	Color bool
}

type Renderer struct {
	scanner types.Scanner
	out     io.Writer

	maxPath  int
	dirColor *color.Color
}

func New(scanner types.Scanner, out io.Writer, opts *Options) *Renderer {
	r := &Renderer{
		scanner: scanner,
		out:     out,
	}
	if opts != nil {
		r.maxPath = opts.MaxPath
		if opts.Color {
			r.dirColor = color.New(color.FgBlue, color.Bold)
			r.dirColor.EnableColor()
		}
	}
	return r
}

func (r *Renderer) Render(path string, mode types.Mode) error {
	logrus.Debugf("Render %q in %s mode", path, mode)
	switch mode {
	case types.ModeTree:
		return r.Tree(path)
	case types.ModeFlat:
		return r.Flat(path)
	}
	return fmt.Errorf("unknown render mode %d", mode)
}

// Flat writes every entry of path on one line, separated by spaces.
func (r *Renderer) Flat(path string) error {
	ents, err := r.scanner.Scan(path)
	if err != nil {
		return err
	}

	for _, ent := range ents {
		if ent.IsSelfOrParent() {
			continue
		}
		err = r.write(r.formatName(ent) + " ")
		if err != nil {
			return err
		}
	}

	return r.write("\n")
}

// Tree writes path depth first, one entry per line, each directory followed
// by its whole subtree.
func (r *Renderer) Tree(path string) error {
	return r.tree(path, 0)
}

func (r *Renderer) tree(path string, depth int) error {
	decorator := Decorator(depth)

	ents, err := r.scanner.Scan(path)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"Path":  path,
		"Depth": depth,
	}).Debugf("Render %d entries", len(ents))

	for _, ent := range ents {
		if ent.IsSelfOrParent() {
			continue
		}

		err = r.write(decorator + r.formatName(ent) + "\n")
		if err != nil {
			return err
		}

		if !ent.IsDir() {
			continue
		}
		var childPath string
		childPath, err = r.joinPath(path, ent.Name)
		if err != nil {
			return err
		}
		err = r.tree(childPath, depth+1)
		if err != nil {
			return err
		}
	}

	return nil
}

// Decorator returns the prefix shared by all entries at depth: nothing for
// the root level, otherwise depth spaces and the `\_ ` marker.
func Decorator(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth) + treeMarker
}

func (r *Renderer) formatName(ent *types.Entry) string {
	if !ent.IsDir() {
		return ent.Name
	}
	name := ent.Name + "/"
	if r.dirColor != nil {
		return r.dirColor.Sprint(name)
	}
	return name
}

func (r *Renderer) joinPath(parent, name string) (string, error) {
	var path string
	if strings.HasSuffix(parent, "/") {
		path = parent + name
	} else {
		path = parent + "/" + name
	}
	if r.maxPath > 0 && len(path) > r.maxPath {
		return "", types.NewPathError(types.ErrPathTooLong, path, nil)
	}
	return path, nil
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.out, s)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
