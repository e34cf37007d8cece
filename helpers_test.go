package wad

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildWAD lays out lumps the way id's tools do: header, lump data, directory at the end.
func buildWAD(t *testing.T, lumps ...Lump) []byte {
	t.Helper()

	var data bytes.Buffer
	infos := make([]binLumpInfo, len(lumps))
	for i, lump := range lumps {
		name, err := ToOnDiskName(lump.Name)
		if err != nil {
			t.Fatalf("ToOnDiskName(%q): %v", lump.Name, err)
		}
		infos[i] = binLumpInfo{Filepos: int32(HeaderSize + data.Len()), Size: int32(len(lump.Data)), Name: name}
		data.Write(lump.Data)
	}

	var out bytes.Buffer
	header := binHeader{
		Magic:        [4]byte{'I', 'W', 'A', 'D'},
		NumLumps:     int32(len(lumps)),
		InfoTableOfs: int32(HeaderSize + data.Len()),
	}
	if err := binary.Write(&out, binary.LittleEndian, header); err != nil {
		t.Fatal(err)
	}
	out.Write(data.Bytes())
	if err := binary.Write(&out, binary.LittleEndian, infos); err != nil {
		t.Fatal(err)
	}
	return out.Bytes()
}

// mapGroup returns the lumps of a well formed level called name
func mapGroup(name string) []Lump {
	lumps := []Lump{{Name: name}}
	for _, kind := range MapLumpNames[1:] {
		lumps = append(lumps, Lump{Name: kind, Data: []byte(name + "/" + kind)})
	}
	return lumps
}

// directoryEntry decodes entry i of an assembled WAD whose directory follows dataSize bytes of data
func directoryEntry(out []byte, dataSize, i int) (filepos, size int32, name String8) {
	b := out[HeaderSize+dataSize+i*lumpInfoSize:]
	copy(name[:], b[8:16])
	return DecodeInt32(b[0:4]), DecodeInt32(b[4:8]), name
}
