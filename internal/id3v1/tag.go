package id3v1

import "fmt"

// GenreUnknown is the conventional "genre not set" value.
const GenreUnknown uint8 = 255

// Tag is a decoded ID3v1 record.
//
// Track 0 means the record has no track number, either because it is a
// Legacy record or because the stored byte is zero.
type Tag struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string
	Track   uint8
	Genre   uint8
}

// NewTag returns an empty tag with the unknown genre sentinel set.
func NewTag() Tag {
	return Tag{Genre: GenreUnknown}
}

// HasTrack reports whether a track number is present.
func (t Tag) HasTrack() bool {
	return t.Track != 0
}

// HasGenre reports whether the genre is set to something other than the sentinel.
func (t Tag) HasGenre() bool {
	return t.Genre != GenreUnknown
}

// String returns "<artist> - <title> - <album>".
func (t Tag) String() string {
	return fmt.Sprintf("%s - %s - %s", t.Artist, t.Title, t.Album)
}
