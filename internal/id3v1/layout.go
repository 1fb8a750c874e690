package id3v1

// Size is the length of an ID3v1 record in bytes.
const Size = 128

// Magic marks the start of a record.
const Magic = "TAG"

// Field offsets and widths.
const (
	titleOffset   = 3
	artistOffset  = 33
	albumOffset   = 63
	yearOffset    = 93
	commentOffset = 97

	TextFieldLen = 30
	YearLen      = 4
	CommentLen   = 30 // Legacy
	CommentV11   = 28 // TrackNumbered

	zeroMarkerOffset = 125
	trackOffset      = 126
	genreOffset      = 127
)

// Block is a raw record as read from the end of a file.
type Block [Size]byte

// HasMagic reports whether the block starts with "TAG".
func (b *Block) HasMagic() bool {
	return string(b[:len(Magic)]) == Magic
}

// Variant reports which interpretation of bytes 125-127 applies.
func (b *Block) Variant() Variant {
	if b[zeroMarkerOffset] == 0 {
		return TrackNumbered
	}
	return Legacy
}

// Variant distinguishes the two sub-formats sharing the comment region.
type Variant int

const (
	// Legacy (ID3v1.0): the comment spans 30 bytes and there is no track number.
	Legacy Variant = iota

	// TrackNumbered (ID3v1.1): byte 125 is zero and byte 126 holds the track.
	TrackNumbered
)

func (v Variant) String() string {
	switch v {
	case Legacy:
		return "ID3v1.0"
	case TrackNumbered:
		return "ID3v1.1"
	default:
		return "unknown"
	}
}

// span is a (start, length) window into a Block.
type span struct {
	start, length int
}

func (s span) of(b *Block) []byte {
	return b[s.start : s.start+s.length]
}

var (
	titleSpan      = span{titleOffset, TextFieldLen}
	artistSpan     = span{artistOffset, TextFieldLen}
	albumSpan      = span{albumOffset, TextFieldLen}
	yearSpan       = span{yearOffset, YearLen}
	commentSpan    = span{commentOffset, CommentLen}
	commentV11Span = span{commentOffset, CommentV11}
)
