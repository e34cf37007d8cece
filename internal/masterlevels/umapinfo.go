package masterlevels

import (
	"strings"

	wad "github.com/stuarthighley/masterwad"
)

// UMAPINFOLumpName is the name of the level info lump
const UMAPINFOLumpName = "UMAPINFO"

// umapinfo describes every level of DefaultPlan. Maps that were MAP07 in their own WAD get the
// Dead Simple boss triggers back, and Titan Manor, now in the MAP07 slot, has them cleared.
const umapinfo = `MAP MAP01
{
	levelname = "Attack"
	label = "ML01"
	music = "D_RUNNIN"
}

MAP MAP02
{
	levelname = "Canyon"
	label = "ML02"
	music = "D_RUNNIN"
}

MAP MAP03
{
	levelname = "The Catwalk"
	label = "ML03"
	music = "D_RUNNIN"
}

MAP MAP04
{
	levelname = "The Combine"
	label = "ML04"
	music = "D_RUNNIN"
	skytexture = "COMBSKY"
}

MAP MAP05
{
	levelname = "The Fistula"
	label = "ML05"
	music = "D_RUNNIN"
}

MAP MAP06
{
	levelname = "The Garrison"
	label = "ML06"
	music = "D_RUNNIN"
	intertext = clear
}

MAP MAP07
{
	levelname = "Titan Manor"
	label = "ML07"
	music = "D_RUNNIN"
	skytexture = "TITANSKY"
	bossaction = clear
}

MAP MAP08
{
	levelname = "Paradox"
	label = "ML08"
	music = "D_RUNNIN"
}

MAP MAP09
{
	levelname = "Subspace"
	label = "ML09"
	music = "D_RUNNIN"
}

MAP MAP10
{
	levelname = "Subterra"
	label = "ML10"
	music = "D_RUNNIN"
}

MAP MAP11
{
	levelname = "Trapped on Titan"
	label = "ML11"
	music = "D_RUNNIN"
	skytexture = "TITANSKY"
	intertext = clear
}

MAP MAP12
{
	levelname = "Virgil's Lead"
	label = "ML12"
	music = "D_COUNTD"
}

MAP MAP13
{
	levelname = "Minos' Judgement"
	label = "ML13"
	music = "D_DOOM"
}

MAP MAP14
{
	levelname = "Bloodsea Keep"
	label = "ML14"
	music = "D_SHAWN"
	bossaction = Fatso, 23, 666
	bossaction = Arachnotron, 30, 667
}

MAP MAP15
{
	levelname = "Mephisto's Maosoleum"
	label = "ML15"
	music = "D_SHAWN"
	bossaction = Fatso, 23, 666
	bossaction = Arachnotron, 30, 667
}

MAP MAP16
{
	levelname = "Nessus"
	label = "ML16"
	music = "D_SHAWN"
	bossaction = Fatso, 23, 666
	bossaction = Arachnotron, 30, 667
}

MAP MAP17
{
	levelname = "Geryon: 6th Canto of Inferno"
	label = "ML17"
	music = "D_DDTBLU"
}

MAP MAP18
{
	levelname = "Vesperas: 7th Canto of Inferno"
	label = "ML18"
	music = "D_IN_CIT"
}

MAP MAP19
{
	levelname = "Black Tower"
	label = "ML19"
	music = "D_ADRIAN"
}

MAP MAP20
{
	levelname = "The Express Elevator to Hell"
	label = "ML20"
	music = "D_EVIL"
	nextsecret = "MAP21"
	intertextsecret = clear
	endgame = true
}

MAP MAP21
{
	levelname = "Bad Dream"
	label = "ML21"
	music = "D_ULTIMA"
	skytexture = "SLEEPSKY"
	endgame = true
}
`

// UMAPINFO returns the level info text. When bundledMusicPack is set the music lines are left
// out and every other line is kept as is.
func UMAPINFO(bundledMusicPack bool) string {
	if !bundledMusicPack {
		return umapinfo
	}
	lines := strings.SplitAfter(umapinfo, "\n")
	var b strings.Builder
	for _, line := range lines {
		if isMusicLine(line) {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

func isMusicLine(line string) bool {
	key, _, ok := strings.Cut(line, "=")
	return ok && strings.TrimSpace(key) == "music"
}

// UMAPINFOLump wraps UMAPINFO in a lump
func UMAPINFOLump(bundledMusicPack bool) wad.Lump {
	return wad.Lump{Name: UMAPINFOLumpName, Data: []byte(UMAPINFO(bundledMusicPack))}
}
