package masterlevels

import (
	"fmt"
	"path/filepath"

	wad "github.com/stuarthighley/masterwad"
)

// Options control what Merge adds besides the planned lumps
type Options struct {
	MasterPath       string
	NoUMAPINFO       bool
	BundledMusicPack bool
}

// Merge reads every container of plan from opts.MasterPath, extracts the planned lumps and map
// groups in plan order, then appends UMAPINFO (unless disabled), PNAMES and TEXTURE1. The
// result is ready for wad.WriteFile. Any failure stops the merge and nothing is returned.
func Merge(plan Plan, opts Options) ([]wad.Lump, error) {
	readers := map[string]*wad.Reader{}
	for _, container := range plan.Containers() {
		logger.Printf("Reading %v ...", container)
		r, err := wad.OpenFile(filepath.Join(opts.MasterPath, container))
		if err != nil {
			return nil, err
		}
		readers[container] = r
	}

	var lumps []wad.Lump
	for _, source := range plan {
		r := readers[source.Container]
		for _, e := range source.Extractions {
			if e.Map {
				group, err := r.MapLumps(e.Name, e.Rename)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", source.Container, err)
				}
				lumps = append(lumps, group...)
				continue
			}
			lump, err := r.Lump(e.Name, e.Rename)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", source.Container, err)
			}
			lumps = append(lumps, lump)
		}
	}
	logger.Printf("Extracted %v lumps", len(lumps))

	if !opts.NoUMAPINFO {
		lumps = append(lumps, UMAPINFOLump(opts.BundledMusicPack))
	}
	lumps = append(lumps, wad.PatchNamesLump(), wad.TexturesLump())
	return lumps, nil
}
