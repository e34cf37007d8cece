package wad

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

var (
	patchStartName = mustOnDiskName(PatchStartMarker)
	patchEndName   = mustOnDiskName(PatchEndMarker)
	firstPatchName = mustOnDiskName(TitanSky)
	lastPatchName  = mustOnDiskName(SleepSky)
)

// Assemble lays out lumps as a PWAD and returns its bytes. See WriteTo.
func Assemble(lumps []Lump) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := WriteTo(&buf, lumps); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes lumps to w as a PWAD: header, lump data in order, then the directory.
// The directory gets a zero sized PP_START entry before the TITANSKY lump and a PP_END entry
// after the SLEEPSKY lump. The header's directory offset field is always HeaderSize.
// Nothing is written if a lump name cannot be encoded.
func WriteTo(w io.Writer, lumps []Lump) (int64, error) {
	directory, dataSize, err := layout(lumps)
	if err != nil {
		return 0, err
	}
	logger.Printf("Writing PWAD: %v lumps, %v directory entries, %v data bytes",
		len(lumps), len(directory), dataSize)

	bw := bufio.NewWriter(w)
	var written int64
	write := func(b []byte) {
		if err != nil {
			return
		}
		var n int
		n, err = bw.Write(b)
		written += int64(n)
	}

	// Header
	write([]byte(PWADMagic))
	write(EncodeInt32(len(directory)))
	write(EncodeInt32(HeaderSize))

	// Data
	for _, lump := range lumps {
		write(lump.Data)
	}

	// Directory
	for _, info := range directory {
		write(EncodeInt32(info.Filepos))
		write(EncodeInt32(info.Size))
		write(info.Name[:])
	}

	if err != nil {
		return written, err
	}
	return written, bw.Flush()
}

// layout builds the directory for lumps, markers included, and returns it with the total
// data size.
func layout(lumps []Lump) ([]binLumpInfo, int, error) {
	directory := make([]binLumpInfo, 0, len(lumps)+2)
	offset := 0
	for _, lump := range lumps {
		name, err := ToOnDiskName(lump.Name)
		if err != nil {
			return nil, 0, err
		}
		if name == firstPatchName {
			directory = append(directory, binLumpInfo{Name: patchStartName})
		}
		directory = append(directory, binLumpInfo{
			Filepos: int32(ToSignedOfBitlength(HeaderSize+offset, 32)),
			Size:    int32(ToSignedOfBitlength(len(lump.Data), 32)),
			Name:    name,
		})
		if name == lastPatchName {
			directory = append(directory, binLumpInfo{Name: patchEndName})
		}
		offset += len(lump.Data)
	}
	return directory, offset, nil
}

// WriteFile assembles lumps and writes them to a new file at path. It fails with
// ErrOutputExists rather than replace an existing file, and removes the file again if
// writing fails part way.
func WriteFile(path string, lumps []Lump) error {
	data, err := Assemble(lumps)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return err
	}
	logger.Printf("Wrote %v bytes to %v", len(data), path)
	return nil
}
