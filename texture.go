package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Sky patch and texture names. Each sky texture is built from the patch of the same name.
const (
	TitanSky = "TITANSKY"
	CombSky  = "COMBSKY"
	SleepSky = "SLEEPSKY"
)

// Lump names of the generated texture tables
const (
	PatchNamesLumpName = "PNAMES"
	TexturesLumpName   = "TEXTURE1"
)

const (
	textureHeaderSize = 22
	patchSize         = 10
)

type binTextureHeader struct {
	TextureName String8
	Masked      int32 // Unused
	Width       int16
	Height      int16
	Unused      int32 // ColumnDirectory
	NumPatches  int16
}

type binPatch struct {
	XOffset      int16
	YOffset      int16
	PatchNameIdx int16
	Unused1      int16 // StepDir
	Unused2      int16 // ColorMap
}

// Texture is one entry of a TEXTUREx lump
type Texture struct {
	Name          string
	Width, Height int
	Patches       []Patch
}

// Patch places a patch picture, by PNAMES index, inside a texture
type Patch struct {
	XOffset      int // horizontal offset of patch relative to upper-left of texture
	YOffset      int // vertical offset of patch relative to upper-left of texture
	PatchNameIdx int
}

// SkyPatchNames is the PNAMES table written by PatchNamesLump. Position is the patch index.
var SkyPatchNames = []string{TitanSky, CombSky, SleepSky}

// SkyTextures are the composite sky textures written by TexturesLump. TITANSKY tiles its
// 256 wide patch four times.
var SkyTextures = []Texture{
	{
		Name: TitanSky, Width: 1024, Height: 128,
		Patches: []Patch{
			{XOffset: 0, PatchNameIdx: 0},
			{XOffset: 256, PatchNameIdx: 0},
			{XOffset: 512, PatchNameIdx: 0},
			{XOffset: 768, PatchNameIdx: 0},
		},
	},
	{Name: CombSky, Width: 256, Height: 128, Patches: []Patch{{PatchNameIdx: 1}}},
	{Name: SleepSky, Width: 256, Height: 128, Patches: []Patch{{PatchNameIdx: 2}}},
}

// PatchNamesLump builds the PNAMES lump for the sky patches
func PatchNamesLump() Lump {
	var buf bytes.Buffer
	buf.Write(EncodeInt32(len(SkyPatchNames)))
	for _, name := range SkyPatchNames {
		s := mustOnDiskName(name)
		buf.Write(s[:])
	}
	return Lump{Name: PatchNamesLumpName, Data: buf.Bytes()}
}

// TexturesLump builds the TEXTURE1 lump for the sky textures. The offset table entries are
// relative to the end of the offset table, so the first one is 0.
func TexturesLump() Lump {
	var defs bytes.Buffer
	offsets := make([]int, len(SkyTextures))
	for i, t := range SkyTextures {
		offsets[i] = defs.Len()
		name := mustOnDiskName(t.Name)
		defs.Write(name[:])
		defs.Write(EncodeInt32(0))
		defs.Write(EncodeInt16(t.Width))
		defs.Write(EncodeInt16(t.Height))
		defs.Write(EncodeInt32(0))
		defs.Write(EncodeInt16(len(t.Patches)))
		for _, p := range t.Patches {
			defs.Write(EncodeInt32(PackShortPair(p.YOffset, p.XOffset)))
			defs.Write(EncodeInt16(p.PatchNameIdx))
			defs.Write(EncodeInt32(0))
		}
	}

	var buf bytes.Buffer
	buf.Write(EncodeInt32(len(SkyTextures)))
	for _, offset := range offsets {
		buf.Write(EncodeInt32(offset))
	}
	buf.Write(defs.Bytes())
	return Lump{Name: TexturesLumpName, Data: buf.Bytes()}
}

// ParsePatchNames decodes a PNAMES lump
func ParsePatchNames(data []byte) ([]string, error) {
	reader := bytes.NewReader(data)

	// Read PNAMES header
	var count int32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: PNAMES header: %v", ErrCorrupt, err)
	}
	if count < 0 || int64(count)*8 > int64(reader.Len()) {
		return nil, fmt.Errorf("%w: PNAMES count %d", ErrCorrupt, count)
	}

	// Read and translate PNAMES body
	pnames := make([]String8, count)
	patchNames := make([]string, count)
	if err := binary.Read(reader, binary.LittleEndian, pnames); err != nil {
		return nil, fmt.Errorf("%w: PNAMES: %v", ErrCorrupt, err)
	}
	for i, p := range pnames {
		patchNames[i] = strings.ToUpper(p.String())
	}
	return patchNames, nil
}

// ParseTextures decodes a TEXTUREx lump laid out as TexturesLump writes it, with offsets
// relative to the end of the offset table.
func ParseTextures(data []byte) ([]Texture, error) {
	reader := bytes.NewReader(data)

	// Read header
	var count int32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: texture header: %v", ErrCorrupt, err)
	}
	if count < 0 || int64(count)*4 > int64(reader.Len()) {
		return nil, fmt.Errorf("%w: texture count %d", ErrCorrupt, count)
	}

	// Read offsets
	offsets := make([]int32, count)
	if err := binary.Read(reader, binary.LittleEndian, offsets); err != nil {
		return nil, fmt.Errorf("%w: texture offsets: %v", ErrCorrupt, err)
	}
	base := int64(4 + 4*len(offsets))

	// For each offset...
	textures := make([]Texture, 0, count)
	for _, offset := range offsets {
		if _, err := reader.Seek(base+int64(offset), io.SeekStart); err != nil || offset < 0 {
			return nil, fmt.Errorf("%w: texture offset %d", ErrCorrupt, offset)
		}

		// Read header
		var binHeader binTextureHeader
		if err := binary.Read(reader, binary.LittleEndian, &binHeader); err != nil {
			return nil, fmt.Errorf("%w: texture at %d: %v", ErrCorrupt, offset, err)
		}
		texture := Texture{
			Name:   binHeader.TextureName.String(),
			Width:  int(binHeader.Width),
			Height: int(binHeader.Height),
		}
		if binHeader.NumPatches < 0 {
			return nil, fmt.Errorf("%w: texture %s has %d patches", ErrCorrupt, texture.Name, binHeader.NumPatches)
		}

		// Add patches to texture
		binPatches := make([]binPatch, binHeader.NumPatches)
		if err := binary.Read(reader, binary.LittleEndian, binPatches); err != nil {
			return nil, fmt.Errorf("%w: texture %s patches: %v", ErrCorrupt, texture.Name, err)
		}
		texture.Patches = make([]Patch, len(binPatches))
		for pi, p := range binPatches {
			texture.Patches[pi] = Patch{
				XOffset:      int(p.XOffset),
				YOffset:      int(p.YOffset),
				PatchNameIdx: int(p.PatchNameIdx),
			}
		}
		textures = append(textures, texture)
	}
	logger.Printf("Parsed %v textures", len(textures))

	return textures, nil
}
