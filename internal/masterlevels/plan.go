package masterlevels

import wad "github.com/stuarthighley/masterwad"

// Extraction names one lump, or one map group when Map is set, to copy out of a WAD.
// Rename, if not empty, is the name it gets in the merged WAD. For a map only the marker
// is renamed.
type Extraction struct {
	Name   string
	Rename string
	Map    bool
}

// Source lists what to take from one container
type Source struct {
	Container   string
	Extractions []Extraction
}

// Plan is the ordered list of sources. Lumps appear in the merged WAD in plan order. A
// container may be named by more than one Source.
type Plan []Source

// Containers returns the distinct container names of the plan in first use order
func (p Plan) Containers() []string {
	seen := map[string]bool{}
	var names []string
	for _, s := range p {
		if !seen[s.Container] {
			seen[s.Container] = true
			names = append(names, s.Container)
		}
	}
	return names
}

// RequiredWADs are the Master Levels files that must be present in the master path
var RequiredWADs = []string{
	"ATTACK.WAD",
	"BLACKTWR.WAD",
	"BLOODSEA.WAD",
	"CANYON.WAD",
	"CATWALK.WAD",
	"COMBINE.WAD",
	"FISTULA.WAD",
	"GARRISON.WAD",
	"GERYON.WAD",
	"MANOR.WAD",
	"MEPHISTO.WAD",
	"MINOS.WAD",
	"NESSUS.WAD",
	"PARADOX.WAD",
	"SUBSPACE.WAD",
	"SUBTERRA.WAD",
	"TEETH.WAD",
	"TTRAP.WAD",
	"VESPERAS.WAD",
	"VIRGIL.WAD",
}

// skyPatchSource is the name of the sky patch inside the original WADs
const skyPatchSource = "RSKY1"

func mapTo(name, rename string) Extraction {
	return Extraction{Name: name, Rename: rename, Map: true}
}

// DefaultPlan puts the Master Levels in their usual order as MAP01 to MAP21, followed by the
// three sky patches. The patches come last and in PNAMES order so PP_START and PP_END enclose
// exactly them.
var DefaultPlan = Plan{
	{"ATTACK.WAD", []Extraction{mapTo("MAP01", "")}},
	{"CANYON.WAD", []Extraction{mapTo("MAP01", "MAP02")}},
	{"CATWALK.WAD", []Extraction{mapTo("MAP01", "MAP03")}},
	{"COMBINE.WAD", []Extraction{mapTo("MAP01", "MAP04")}},
	{"FISTULA.WAD", []Extraction{mapTo("MAP01", "MAP05")}},
	{"GARRISON.WAD", []Extraction{mapTo("MAP01", "MAP06")}},
	{"MANOR.WAD", []Extraction{mapTo("MAP01", "MAP07")}},
	{"PARADOX.WAD", []Extraction{mapTo("MAP01", "MAP08")}},
	{"SUBSPACE.WAD", []Extraction{mapTo("MAP01", "MAP09")}},
	{"SUBTERRA.WAD", []Extraction{mapTo("MAP01", "MAP10")}},
	{"TTRAP.WAD", []Extraction{mapTo("MAP01", "MAP11")}},
	{"VIRGIL.WAD", []Extraction{mapTo("MAP03", "MAP12")}},
	{"MINOS.WAD", []Extraction{mapTo("MAP05", "MAP13")}},
	{"BLOODSEA.WAD", []Extraction{mapTo("MAP07", "MAP14")}},
	{"MEPHISTO.WAD", []Extraction{mapTo("MAP07", "MAP15")}},
	{"NESSUS.WAD", []Extraction{mapTo("MAP07", "MAP16")}},
	{"GERYON.WAD", []Extraction{mapTo("MAP08", "MAP17")}},
	{"VESPERAS.WAD", []Extraction{mapTo("MAP09", "MAP18")}},
	{"BLACKTWR.WAD", []Extraction{mapTo("MAP25", "MAP19")}},
	{"TEETH.WAD", []Extraction{mapTo("MAP31", "MAP20"), mapTo("MAP32", "MAP21")}},

	// Sky patches
	{"MANOR.WAD", []Extraction{{Name: skyPatchSource, Rename: wad.TitanSky}}},
	{"COMBINE.WAD", []Extraction{{Name: skyPatchSource, Rename: wad.CombSky}}},
	{"TEETH.WAD", []Extraction{{Name: skyPatchSource, Rename: wad.SleepSky}}},
}
