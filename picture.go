package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type binPatchImageHeader struct {
	Width, Height, LeftOffset, TopOffset int16
}

// PictureInfo is the header of a lump in the Doom picture (patch) format
type PictureInfo struct {
	Width, Height         int
	LeftOffset, TopOffset int
}

// ParsePicture reads the header of a picture lump and checks that every column offset points
// inside the lump. Column posts are not decoded.
func ParsePicture(lump []byte) (PictureInfo, error) {
	reader := bytes.NewReader(lump)
	var header binPatchImageHeader
	if err := binary.Read(reader, binary.LittleEndian, &header); err != nil {
		return PictureInfo{}, fmt.Errorf("%w: picture header: %v", ErrCorrupt, err)
	}
	if header.Width < 0 || header.Height < 0 {
		return PictureInfo{}, fmt.Errorf("%w: picture size %dx%d", ErrCorrupt, header.Width, header.Height)
	}

	// Read column offsets
	offsets := make([]int32, header.Width)
	if err := binary.Read(reader, binary.LittleEndian, offsets); err != nil {
		return PictureInfo{}, fmt.Errorf("%w: picture columns: %v", ErrCorrupt, err)
	}
	for columnIndex, offset := range offsets {
		if offset < 0 || int(offset) >= len(lump) {
			return PictureInfo{}, fmt.Errorf("%w: picture column %d at %d", ErrCorrupt, columnIndex, offset)
		}
	}

	return PictureInfo{
		Width:      int(header.Width),
		Height:     int(header.Height),
		LeftOffset: int(header.LeftOffset),
		TopOffset:  int(header.TopOffset),
	}, nil
}
