package wad

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPatchNamesLump(t *testing.T) {
	lump := PatchNamesLump()
	if lump.Name != "PNAMES" {
		t.Errorf("name = %q", lump.Name)
	}
	want := append(EncodeInt32(3), []byte("TITANSKYCOMBSKY\x00SLEEPSKY")...)
	if !bytes.Equal(lump.Data, want) {
		t.Errorf("data = %q, want %q", lump.Data, want)
	}

	names, err := ParsePatchNames(lump.Data)
	if err != nil {
		t.Fatalf("ParsePatchNames: %v", err)
	}
	if len(names) != 3 || names[0] != TitanSky || names[1] != CombSky || names[2] != SleepSky {
		t.Errorf("names = %q", names)
	}
}

func TestTexturesLump_Bytes(t *testing.T) {
	data := TexturesLump().Data

	titanSize := textureHeaderSize + 4*patchSize
	combSize := textureHeaderSize + patchSize
	if want := 4 + 3*4 + titanSize + 2*combSize; len(data) != want {
		t.Fatalf("len = %d, want %d", len(data), want)
	}
	if got := DecodeInt32(data[0:4]); got != 3 {
		t.Errorf("count = %d", got)
	}
	for i, want := range []int32{0, int32(titanSize), int32(titanSize + combSize)} {
		if got := DecodeInt32(data[4+4*i:]); got != want {
			t.Errorf("offset %d = %d, want %d", i, got, want)
		}
	}

	// TITANSKY header
	titan := data[16:]
	if string(titan[0:8]) != "TITANSKY" {
		t.Errorf("name = %q", titan[0:8])
	}
	if DecodeInt32(titan[8:12]) != 0 || DecodeInt32(titan[16:20]) != 0 {
		t.Error("unused fields not zero")
	}
	if w, h := DecodeInt16(titan[12:14]), DecodeInt16(titan[14:16]); w != 1024 || h != 128 {
		t.Errorf("size = %dx%d", w, h)
	}
	if n := DecodeInt16(titan[20:22]); n != 4 {
		t.Errorf("patches = %d", n)
	}
	for i, x := range []int16{0, 256, 512, 768} {
		p := titan[textureHeaderSize+i*patchSize:]
		if DecodeInt16(p[0:2]) != x || DecodeInt16(p[2:4]) != 0 || DecodeInt16(p[4:6]) != 0 || DecodeInt32(p[6:10]) != 0 {
			t.Errorf("patch %d = %v", i, p[:patchSize])
		}
	}

	// COMBSKY header
	comb := data[16+titanSize:]
	if string(comb[0:8]) != "COMBSKY\x00" {
		t.Errorf("name = %q", comb[0:8])
	}
	if idx := DecodeInt16(comb[textureHeaderSize+4:]); idx != 1 {
		t.Errorf("COMBSKY patch index = %d", idx)
	}
}

func TestTexturesLump_Parse(t *testing.T) {
	lump := TexturesLump()
	if lump.Name != "TEXTURE1" {
		t.Errorf("name = %q", lump.Name)
	}
	textures, err := ParseTextures(lump.Data)
	if err != nil {
		t.Fatalf("ParseTextures: %v", err)
	}
	if len(textures) != len(SkyTextures) {
		t.Fatalf("len = %d", len(textures))
	}
	for i, want := range SkyTextures {
		got := textures[i]
		if got.Name != want.Name || got.Width != want.Width || got.Height != want.Height {
			t.Errorf("texture %d = %s %dx%d, want %s %dx%d", i, got.Name, got.Width, got.Height, want.Name, want.Width, want.Height)
		}
		if len(got.Patches) != len(want.Patches) {
			t.Errorf("%s patches = %d, want %d", want.Name, len(got.Patches), len(want.Patches))
			continue
		}
		for j := range want.Patches {
			if got.Patches[j] != want.Patches[j] {
				t.Errorf("%s patch %d = %+v, want %+v", want.Name, j, got.Patches[j], want.Patches[j])
			}
		}
	}
	if textures[2].Patches[0].PatchNameIdx != 2 {
		t.Error("SLEEPSKY does not use patch 2")
	}
}

func TestParseTextures_Corrupt(t *testing.T) {
	data := TexturesLump().Data
	for _, tt := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"count too large", append(EncodeInt32(100), data[4:]...)},
		{"truncated", data[:40]},
		{"offset past end", append(append(EncodeInt32(1), EncodeInt32(5000)...), data[16:]...)},
	} {
		if _, err := ParseTextures(tt.data); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestParsePatchNames_Corrupt(t *testing.T) {
	if _, err := ParsePatchNames(EncodeInt32(2)); err == nil {
		t.Error("expected error for missing names")
	}
	if _, err := ParsePatchNames([]byte{1}); err == nil {
		t.Error("expected error for short header")
	}
}

func TestParseErrorsAreCorruptData(t *testing.T) {
	_, err := ParsePatchNames(EncodeInt32(2))
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if msg := err.Error(); strings.Contains(msg, "directory") || !strings.HasPrefix(msg, "wad data out of range") {
		t.Errorf("message = %q", msg)
	}
}
