package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/handiism/tagfix/internal/id3v1"
)

// TagEditAction defines how to handle individual record fields.
//
// Each field can be configured independently to determine whether
// it should be filled in, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the field (track 0, genre 255, empty comment).
	TagEmpty TagEditAction = iota

	// TagModify fills the field in when it is unset.
	TagModify

	// TagDoNotModify leaves the existing value unchanged.
	TagDoNotModify
)

// TagConfig holds the batch policy applied to every decoded record.
//
// Example:
//
//	cfg := &TagConfig{
//	    Track:        TagModify,      // Take missing track numbers from file names
//	    Genre:        TagModify,      // Replace genre 255 with DefaultGenre
//	    Comment:      TagDoNotModify, // Keep comments as they are
//	    DefaultGenre: 17,             // Rock
//	    Encoding:     "windows-1251",
//	}
type TagConfig struct {
	// Track controls the track byte. TagModify parses a leading number
	// from the file name when the record has no track.
	Track TagEditAction

	// Genre controls the genre byte. TagModify replaces the unknown
	// sentinel (255) with DefaultGenre.
	Genre TagEditAction

	// Comment controls the comment text. Only TagEmpty has an effect.
	Comment TagEditAction

	// DefaultGenre is the genre id written over the unknown sentinel.
	DefaultGenre uint8

	// Encoding is the preferred text encoding for writes.
	Encoding string
}

// DefaultTagConfig returns the default tag configuration.
//
// Track and genre are filled in, comments are left alone, the default
// genre is the unknown sentinel itself and text is written as windows-1251.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Track:        TagModify,
		Genre:        TagModify,
		Comment:      TagDoNotModify,
		DefaultGenre: id3v1.GenreUnknown,
		Encoding:     id3v1.DefaultEncoding,
	}
}

// Field names a record field touched by the policy.
type Field int

const (
	FieldTrack Field = iota
	FieldGenre
	FieldComment
)

// Change describes one field rewritten by Apply.
type Change struct {
	Field Field
	// Value is the new track or genre number; unused for FieldComment.
	Value uint8
}

// String renders the change as a console line.
func (c Change) String() string {
	switch c.Field {
	case FieldTrack:
		return fmt.Sprintf("Track number set: %d", c.Value)
	case FieldGenre:
		if name, ok := id3v1.GenreName(c.Value); ok {
			return fmt.Sprintf("Genre set: %d (%s)", c.Value, name)
		}
		return fmt.Sprintf("Genre set: %d", c.Value)
	case FieldComment:
		return "Comment cleared"
	default:
		return "unknown change"
	}
}

// Tagger applies the batch policy to decoded records and writes them back.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig(), nil)
//
//	changes := tagger.Apply(&tag, "07 Song.mp3")
//	if len(changes) > 0 {
//	    err := tagger.SaveTags(path, tag)
//	}
type Tagger struct {
	config *TagConfig
	codec  *id3v1.Codec
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used. If codec is nil, the
// package-level id3v1 codec is used.
func NewTagger(config *TagConfig, codec *id3v1.Codec) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	if codec == nil {
		codec = id3v1.NewCodec(nil)
	}
	return &Tagger{config: config, codec: codec}
}

// Config returns the policy in use.
func (t *Tagger) Config() *TagConfig {
	return t.config
}

// Apply mutates tag according to the policy and returns what changed.
//
// fileName is the audio file's name; only its base name is consulted.
// A change is reported only when the stored value actually differs, so an
// empty result means the file does not need to be written.
func (t *Tagger) Apply(tag *id3v1.Tag, fileName string) []Change {
	var changes []Change

	switch t.config.Track {
	case TagEmpty:
		if tag.Track != 0 {
			tag.Track = 0
			changes = append(changes, Change{Field: FieldTrack})
		}
	case TagModify:
		if tag.Track == 0 {
			if n, ok := TrackFromFileName(fileName); ok && n != 0 {
				tag.Track = n
				changes = append(changes, Change{Field: FieldTrack, Value: n})
			}
		}
	}

	switch t.config.Genre {
	case TagEmpty:
		if tag.Genre != id3v1.GenreUnknown {
			tag.Genre = id3v1.GenreUnknown
			changes = append(changes, Change{Field: FieldGenre, Value: id3v1.GenreUnknown})
		}
	case TagModify:
		if tag.Genre == id3v1.GenreUnknown && t.config.DefaultGenre != id3v1.GenreUnknown {
			tag.Genre = t.config.DefaultGenre
			changes = append(changes, Change{Field: FieldGenre, Value: tag.Genre})
		}
	}

	if t.config.Comment == TagEmpty && tag.Comment != "" {
		tag.Comment = ""
		changes = append(changes, Change{Field: FieldComment})
	}

	return changes
}

// SaveTags writes tag into the file at path using the configured encoding.
func (t *Tagger) SaveTags(path string, tag id3v1.Tag) error {
	return t.codec.WriteFile(path, tag, t.config.Encoding)
}

// TrackFromFileName parses a track number from the first whitespace-delimited
// token of the file's base name, extension removed.
//
// "07 Song.mp3", "07.mp3" and "+7 - Song.mp3" all give 7. The value is
// clamped to [0, 255]. ok is false when there is no leading integer token.
func TrackFromFileName(name string) (uint8, bool) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	fields := strings.FieldsFunc(base, unicode.IsSpace)
	if len(fields) == 0 {
		return 0, false
	}
	token := fields[0]

	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		// out of int64 range: the sign decides the clamp
		if strings.HasPrefix(token, "-") {
			return 0, true
		}
		return 255, true
	}

	switch {
	case n < 0:
		return 0, true
	case n > 255:
		return 255, true
	default:
		return uint8(n), true
	}
}
