package masterlevels

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	wad "github.com/stuarthighley/masterwad"
)

// writeWAD writes lumps to dir/name as an IWAD with the directory after the data
func writeWAD(t *testing.T, dir, name string, lumps []wad.Lump) {
	t.Helper()

	var data, directory bytes.Buffer
	for _, lump := range lumps {
		onDisk, err := wad.ToOnDiskName(lump.Name)
		if err != nil {
			t.Fatal(err)
		}
		directory.Write(wad.EncodeInt32(wad.HeaderSize + data.Len()))
		directory.Write(wad.EncodeInt32(len(lump.Data)))
		directory.Write(onDisk[:])
		data.Write(lump.Data)
	}

	var out bytes.Buffer
	out.WriteString("IWAD")
	if err := binary.Write(&out, binary.LittleEndian, []int32{int32(len(lumps)), int32(wad.HeaderSize + data.Len())}); err != nil {
		t.Fatal(err)
	}
	out.Write(data.Bytes())
	out.Write(directory.Bytes())

	if err := os.WriteFile(filepath.Join(dir, name), out.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mapGroup(container, name string) []wad.Lump {
	lumps := []wad.Lump{{Name: name}}
	for _, kind := range wad.MapLumpNames[1:] {
		lumps = append(lumps, wad.Lump{Name: kind, Data: []byte(container + "/" + name + "/" + kind)})
	}
	return lumps
}

// writePlanWADs creates every container named by plan, holding what the plan extracts from it
// plus some unrelated lumps
func writePlanWADs(t *testing.T, dir string, plan Plan) {
	t.Helper()

	contents := map[string][]wad.Lump{}
	for _, container := range plan.Containers() {
		contents[container] = []wad.Lump{{Name: "DEHACKED", Data: []byte("patch")}}
	}
	for _, source := range plan {
		for _, e := range source.Extractions {
			if e.Map {
				contents[source.Container] = append(contents[source.Container], mapGroup(source.Container, e.Name)...)
			} else {
				contents[source.Container] = append(contents[source.Container],
					wad.Lump{Name: e.Name, Data: []byte(source.Container + "/" + e.Name)})
			}
		}
	}
	for container, lumps := range contents {
		writeWAD(t, dir, container, lumps)
	}
}
