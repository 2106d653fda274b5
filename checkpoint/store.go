package checkpoint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/forestrie/go-shipsearch/search"
)

const (
	DefaultRoot = "dump"
	maxDumps    = 9999
)

// Store writes numbered dump files into Dir. The zero value writes
// dump0001, dump0002, ... in the working directory.
type Store struct {
	Dir  string
	Root string

	next int
}

// Dump writes snap to the first free name and returns its path. Existing
// files are never overwritten.
func (s *Store) Dump(snap search.Snapshot) (string, error) {
	root := s.Root
	if root == "" {
		root = DefaultRoot
	}
	for s.next = max(s.next, 1); s.next <= maxDumps; s.next++ {
		name := filepath.Join(s.Dir, fmt.Sprintf("%s%04d", root, s.next))
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		s.next++

		err = Encode(f, snap)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
			return "", err
		}
		return name, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNoDumpName, filepath.Join(s.Dir, root+"NNNN"))
}

// Load decodes the dump at path.
func Load(path string) (search.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return search.Snapshot{}, err
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return search.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

var _ search.Dumper = (*Store)(nil)
