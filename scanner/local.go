package scanner

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fioncat/judge/types"
	"github.com/sirupsen/logrus"
)

var _ types.Scanner = (*Local)(nil)

// Local scans directories on the local filesystem.
type Local struct {
	maxName int
}

// NewLocal returns a scanner that rejects entry names longer than maxName
// bytes. A maxName <= 0 disables the check.
func NewLocal(maxName int) *Local {
	return &Local{maxName: maxName}
}

func (s *Local) Scan(path string) ([]*types.Entry, error) {
	start := time.Now()

	stream, err := openDirStream(path)
	if err != nil {
		return nil, types.NewPathError(types.ErrDirectoryOpen, path, osReason(err))
	}
	defer stream.close()

	ents, err := s.readAll(path, stream)
	if err != nil {
		return nil, err
	}
	logrus.WithField("Path", path).Debugf("Scan done, took %v", time.Since(start))
	return ents, nil
}

// readAll drains stream into an exactly sized slice. On any error the
// entries read so far are dropped.
func (s *Local) readAll(path string, stream *dirStream) ([]*types.Entry, error) {
	buf := newEntryBuffer()
	for {
		ent, err := stream.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, types.NewPathError(types.ErrDirectoryRead, path, osReason(err))
		}

		if s.maxName > 0 && len(ent.Name) > s.maxName {
			return nil, types.NewPathError(types.ErrNameTooLong, path+"/"+ent.Name, nil)
		}

		err = buf.push(ent)
		if err != nil {
			return nil, types.NewPathError(types.ErrOutOfMemory, path, nil)
		}
	}

	bufSize := buf.size()
	ents := buf.fit()
	logrus.WithField("Path", path).Debugf("Read %s entries, buffer grew to %s slots",
		humanize.Comma(int64(len(ents))), humanize.Comma(int64(bufSize)))
	return ents, nil
}

// dirStream yields the entries of one open directory, one per call.
type dirStream struct {
	dir *os.File
}

func openDirStream(path string) (*dirStream, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := dir.Stat()
	if err != nil {
		dir.Close()
		return nil, err
	}
	if !stat.IsDir() {
		dir.Close()
		return nil, syscall.ENOTDIR
	}

	return &dirStream{dir: dir}, nil
}

// next returns io.EOF once the directory is exhausted, any other error is a
// read failure.
func (s *dirStream) next() (*types.Entry, error) {
	ents, err := s.dir.ReadDir(1)
	if err != nil {
		return nil, err
	}
	if len(ents) == 0 {
		return nil, io.EOF
	}

	ent := ents[0]
	return &types.Entry{
		Name: ent.Name(),
		Kind: types.KindOf(ent.Type()),
	}, nil
}

func (s *dirStream) close() {
	err := s.dir.Close()
	if err != nil {
		logrus.Warnf("Close directory %q: %v", s.dir.Name(), err)
	}
}

// osReason strips the op and path from fs errors, the PathError built from
// it already carries the path.
func osReason(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
