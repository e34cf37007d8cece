// Package wad reads and writes Doom's data archives, also known as WAD files, at the lump level.
// It extracts single lumps and whole map lump groups from existing WADs and assembles new PWADs.
// The file format is documented in The Unofficial DOOM Specs:
// http://www.gamers.org/dhs/helpdocs/dmsp1666.html

package wad

import "bytes"

// On-disk sizes
const (
	HeaderSize    = 12 // Magic, NumLumps, InfoTableOfs
	lumpInfoSize  = 16 // Filepos, Size, Name
	PWADMagic     = "PWAD"
	MapLumpsCount = 11
)

// Patch namespace markers wrapped around the sky patch lumps when assembling
const (
	PatchStartMarker = "PP_START"
	PatchEndMarker   = "PP_END"
)

// MapLumpNames is the fixed order of lumps that make up a level. The first entry stands for the
// map marker itself (MAP01, E1M1, ...) whose name varies.
var MapLumpNames = [MapLumpsCount]string{
	"",
	"THINGS",
	"LINEDEFS",
	"SIDEDEFS",
	"VERTEXES",
	"SEGS",
	"SSECTORS",
	"NODES",
	"SECTORS",
	"REJECT",
	"BLOCKMAP",
}

type binHeader struct {
	Magic        [4]byte
	NumLumps     int32
	InfoTableOfs int32
}

// Header holds the lump count and directory offset of a WAD
type Header struct {
	NumLumps     int
	InfoTableOfs int
}

type binLumpInfo struct {
	Filepos int32
	Size    int32
	Name    String8
}

// LumpInfo is one directory entry of a WAD.
type LumpInfo struct {
	Name    string
	Filepos int
	Size    int
}

// Lump is a named block of data. Lumps are not modified once read or built; Data may alias
// the buffer of the Reader it came from.
type Lump struct {
	Name string
	Data []byte
}

// WAD eight-character string type. Null-terminated for short strings.
type String8 [8]byte

// String converts String8 to string
func (s String8) String() string {
	i := bytes.IndexByte(s[:], 0)
	if i == -1 {
		i = len(s)
	}
	return string(s[0:i])
}
