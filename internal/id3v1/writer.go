package id3v1

import (
	"io"
	"os"
)

// Write stores t as an ID3v1.1 record in f.
//
// Presence of an existing record is re-checked from the trailing bytes of f,
// regardless of any earlier Locate. An existing record is overwritten in
// place; otherwise the record is appended. Files shorter than 128 bytes have
// no record and get one appended.
//
// The record goes out in a single Write. On failure the region may be
// partially written.
func (c *Codec) Write(f io.ReadWriteSeeker, t Tag, encoding string) error {
	name := nameOf(f)

	present, size, err := hasRecord(f, name)
	if err != nil {
		return err
	}

	offset := size
	if present {
		offset = size - Size
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return &IOError{Op: "seek", Path: name, Err: err}
	}

	block := c.Encode(t, encoding)
	n, err := f.Write(block[:])
	if err == nil && n < Size {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &IOError{Op: "write", Path: name, Err: err}
	}
	return nil
}

// WriteFile opens path read-write and calls Write.
func (c *Codec) WriteFile(path string, t Tag, encoding string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}

	if err := c.Write(f, t, encoding); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// Write stores t in f with the default codec.
func Write(f io.ReadWriteSeeker, t Tag, encoding string) error {
	return defaultCodec.Write(f, t, encoding)
}

// WriteFile stores t in the file at path with the default codec.
func WriteFile(path string, t Tag, encoding string) error {
	return defaultCodec.WriteFile(path, t, encoding)
}

// hasRecord reports whether the trailing 128 bytes start with "TAG", along
// with the current size of f.
func hasRecord(f io.ReadSeeker, name string) (bool, int64, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return false, 0, &IOError{Op: "seek", Path: name, Err: err}
	}
	if size < Size {
		return false, size, nil
	}

	if _, err := f.Seek(size-Size, io.SeekStart); err != nil {
		return false, size, &IOError{Op: "seek", Path: name, Err: err}
	}
	var head [len(Magic)]byte
	if _, err := io.ReadFull(f, head[:]); err != nil {
		return false, size, &IOError{Op: "read", Path: name, Err: err}
	}
	return string(head[:]) == Magic, size, nil
}
