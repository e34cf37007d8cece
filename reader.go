package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Reader gives lump level access to a WAD held entirely in memory.
type Reader struct {
	header *Header
	data   []byte
}

// OpenFile reads the whole WAD at path and returns a Reader for it. The file is closed before
// OpenFile returns.
func OpenFile(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// NewReader parses the header of a WAD. The magic is not checked, so IWADs and PWADs both work.
// The Reader keeps data and the lumps it returns share it.
func NewReader(data []byte) (*Reader, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooSmall, len(data))
	}

	// Read header
	var binHeader binHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &binHeader); err != nil {
		return nil, err
	}
	header := &Header{int(binHeader.NumLumps), int(binHeader.InfoTableOfs)}

	if header.NumLumps < 0 || header.InfoTableOfs < 0 ||
		int64(header.InfoTableOfs)+int64(header.NumLumps)*lumpInfoSize > int64(len(data)) {
		return nil, fmt.Errorf("%w: %d lumps at offset %d, file is %d bytes",
			ErrCorrupt, header.NumLumps, header.InfoTableOfs, len(data))
	}
	logger.Printf("Read header: %v lumps, directory at %v", header.NumLumps, header.InfoTableOfs)

	return &Reader{header: header, data: data}, nil
}

// Header returns the cached header fields
func (r *Reader) Header() Header {
	return *r.header
}

// Lumps returns the whole directory in order. It fails with ErrCorrupt on the first entry
// whose data lies outside the WAD.
func (r *Reader) Lumps() ([]LumpInfo, error) {
	lumpInfos := make([]LumpInfo, r.header.NumLumps)
	for i := range lumpInfos {
		binInfo := r.lumpInfo(i)
		if err := r.checkLump(binInfo); err != nil {
			return nil, err
		}
		lumpInfos[i] = LumpInfo{binInfo.Name.String(), int(binInfo.Filepos), int(binInfo.Size)}
	}
	return lumpInfos, nil
}

// Lump returns the first lump called name. If rename is not empty the returned lump carries
// that name instead.
func (r *Reader) Lump(name, rename string) (Lump, error) {
	key, err := ToOnDiskName(name)
	if err != nil {
		return Lump{}, err
	}
	lumpNum := r.find(key)
	if lumpNum < 0 {
		return Lump{}, fmt.Errorf("%w: %s", ErrLumpNotFound, name)
	}
	return r.readLump(lumpNum, renamed(name, rename))
}

// MapLumps returns the marker called mapName and the ten level lumps following it, in
// MapLumpNames order. The marker is renamed to rename if that is not empty. The group must be
// contiguous; the first out of place lump fails the whole call.
func (r *Reader) MapLumps(mapName, rename string) ([]Lump, error) {
	key, err := ToOnDiskName(mapName)
	if err != nil {
		return nil, err
	}
	start := r.find(key)
	if start < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, mapName)
	}
	logger.Printf("Reading map %v ...", mapName)

	marker, err := r.readLump(start, renamed(mapName, rename))
	if err != nil {
		return nil, err
	}
	lumps := make([]Lump, 1, MapLumpsCount)
	lumps[0] = marker

	for i, expected := range MapLumpNames[1:] {
		lumpNum := start + 1 + i
		if lumpNum >= r.header.NumLumps {
			return nil, &MapSequenceError{Map: mapName, Expected: expected}
		}
		if found := r.lumpInfo(lumpNum).Name; found != mustOnDiskName(expected) {
			return nil, &MapSequenceError{Map: mapName, Expected: expected, Found: found.String()}
		}
		lump, err := r.readLump(lumpNum, expected)
		if err != nil {
			return nil, err
		}
		lumps = append(lumps, lump)
	}
	return lumps, nil
}

// find returns the index of the first directory entry whose raw name equals key, or -1
func (r *Reader) find(key String8) int {
	for i := 0; i < r.header.NumLumps; i++ {
		if r.lumpInfo(i).Name == key {
			return i
		}
	}
	return -1
}

// lumpInfo decodes directory entry i. NewReader has checked that the directory is in range.
func (r *Reader) lumpInfo(i int) binLumpInfo {
	b := r.data[r.header.InfoTableOfs+i*lumpInfoSize:]
	var info binLumpInfo
	info.Filepos = DecodeInt32(b[0:4])
	info.Size = DecodeInt32(b[4:8])
	copy(info.Name[:], b[8:16])
	return info
}

// Read entire lump
func (r *Reader) readLump(lumpNum int, name string) (Lump, error) {
	info := r.lumpInfo(lumpNum)
	if err := r.checkLump(info); err != nil {
		return Lump{}, err
	}
	return Lump{Name: name, Data: r.data[info.Filepos : info.Filepos+info.Size : info.Filepos+info.Size]}, nil
}

// checkLump fails if the data of a directory entry is not inside the WAD
func (r *Reader) checkLump(info binLumpInfo) error {
	if info.Filepos < 0 || info.Size < 0 || int64(info.Filepos)+int64(info.Size) > int64(len(r.data)) {
		return fmt.Errorf("%w: lump %s at %d size %d", ErrCorrupt, info.Name, info.Filepos, info.Size)
	}
	return nil
}

func renamed(name, rename string) string {
	if rename != "" {
		return rename
	}
	return name
}
