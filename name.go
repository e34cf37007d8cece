package wad

import "fmt"

// ToOnDiskName converts a lump name to its 8-byte directory form. Short names are padded with
// NULs, longer names are cut to 8 bytes with no terminator.
func ToOnDiskName(name string) (String8, error) {
	var s String8
	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			return s, fmt.Errorf("%w: %q", ErrNonASCIIName, name)
		}
	}
	copy(s[:], name)
	return s, nil
}

// mustOnDiskName is for names that are constants of this package.
func mustOnDiskName(name string) String8 {
	s, err := ToOnDiskName(name)
	if err != nil {
		panic(err)
	}
	return s
}
