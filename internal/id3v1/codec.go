package id3v1

import (
	"github.com/handiism/tagfix/internal/charset"
)

// DefaultEncoding is the text encoding used for writes unless configured otherwise.
const DefaultEncoding = "windows-1251"

// Codec maps records to and from Tags.
type Codec struct {
	text *charset.Codec
}

// NewCodec creates a Codec. A nil text codec selects the default charset codec.
func NewCodec(text *charset.Codec) *Codec {
	if text == nil {
		text = charset.NewCodec(nil)
	}
	return &Codec{text: text}
}

// Decode turns a record into a Tag. The caller is expected to have checked
// HasMagic (Locate does).
func (c *Codec) Decode(b Block) Tag {
	tag := Tag{
		Title:  c.text.DecodeField(titleSpan.of(&b)),
		Artist: c.text.DecodeField(artistSpan.of(&b)),
		Album:  c.text.DecodeField(albumSpan.of(&b)),
		Year:   c.text.DecodeField(yearSpan.of(&b)),
		Genre:  b[genreOffset],
	}

	switch b.Variant() {
	case TrackNumbered:
		tag.Comment = c.text.DecodeField(commentV11Span.of(&b))
		tag.Track = b[trackOffset]
	default:
		tag.Comment = c.text.DecodeField(commentSpan.of(&b))
	}

	return tag
}

// Encode lays a Tag out as an ID3v1.1 record using the given text encoding.
//
// Text is truncated to the field width in bytes. Byte 125 is always zero.
func (c *Codec) Encode(t Tag, encoding string) Block {
	var b Block
	copy(b[:], Magic)

	c.put(&b, titleSpan, t.Title, encoding)
	c.put(&b, artistSpan, t.Artist, encoding)
	c.put(&b, albumSpan, t.Album, encoding)
	c.put(&b, yearSpan, t.Year, encoding)
	c.put(&b, commentV11Span, t.Comment, encoding)

	b[zeroMarkerOffset] = 0
	b[trackOffset] = t.Track
	b[genreOffset] = t.Genre

	return b
}

func (c *Codec) put(b *Block, s span, text, encoding string) {
	copy(s.of(b), c.text.EncodeField(text, s.length, encoding))
}

var defaultCodec = NewCodec(nil)

// Decode decodes a record with the default codec.
func Decode(b Block) Tag {
	return defaultCodec.Decode(b)
}

// Encode encodes a tag with the default codec.
func Encode(t Tag, encoding string) Block {
	return defaultCodec.Encode(t, encoding)
}
