package audio

import (
	"github.com/bogem/id3v2"
)

// HasID3v2 reports whether the file at path starts with an ID3v2 tag that
// carries at least one frame.
//
// It is used to explain a missing ID3v1 record: many files only carry the
// newer tag. Frame contents are parsed by the library but never used.
func HasID3v2(path string) (bool, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return false, err
	}
	defer tag.Close()

	return tag.HasFrames(), nil
}
