package masterlevels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingWADs means one or more required WADs are not in the master path
var ErrMissingWADs = errors.New("required WADs missing")

// MissingWADsError lists every required WAD that was not found
type MissingWADsError struct {
	Path  string
	Names []string
}

func (e *MissingWADsError) Error() string {
	return fmt.Sprintf("%v from %s: %s", ErrMissingWADs, e.Path, strings.Join(e.Names, ", "))
}

func (e *MissingWADsError) Unwrap() error {
	return ErrMissingWADs
}

// VerifyWADs checks that every name in names is a file in dir. Names are matched exactly.
func VerifyWADs(dir string, names []string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	present := map[string]bool{}
	for _, entry := range entries {
		if !entry.IsDir() {
			present[entry.Name()] = true
		}
	}

	var missing []string
	for _, name := range names {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingWADsError{Path: dir, Names: missing}
	}
	return nil
}

// MusicPackPresent reports whether the music pack file is in dir
func MusicPackPresent(dir, name string) bool {
	if name == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
