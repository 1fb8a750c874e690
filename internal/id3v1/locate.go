package id3v1

import (
	"io"
	"os"
)

// Locate reads the last 128 bytes of r.
//
// It returns ok == false when the bytes do not start with "TAG". A source
// shorter than 128 bytes, or one that fails to seek or read, yields an *IOError.
func Locate(r io.ReadSeeker) (Block, bool, error) {
	var b Block
	name := nameOf(r)

	if _, err := seekTail(r, name); err != nil {
		return b, false, err
	}
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return b, false, &IOError{Op: "read", Path: name, Err: err}
	}

	if !b.HasMagic() {
		return Block{}, false, nil
	}
	return b, true, nil
}

// LocateFile opens path read-only and calls Locate.
func LocateFile(path string) (Block, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Block{}, false, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return Locate(f)
}

// seekTail positions s at end-128 and returns the total size.
func seekTail(s io.Seeker, name string) (int64, error) {
	size, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, &IOError{Op: "seek", Path: name, Err: err}
	}
	if size < Size {
		return size, &IOError{Op: "seek", Path: name, Err: ErrTooShort}
	}
	if _, err := s.Seek(size-Size, io.SeekStart); err != nil {
		return size, &IOError{Op: "seek", Path: name, Err: err}
	}
	return size, nil
}
