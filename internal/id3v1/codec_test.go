package id3v1

import (
	"strings"
	"testing"

	"github.com/handiism/tagfix/internal/charset"
)

type noGuess struct{}

func (noGuess) Guess([]byte) (string, float64, bool) { return "", 0, false }

// testCodec uses only the byte heuristic for text, so results do not depend
// on statistical scoring of very short fields.
func testCodec() *Codec {
	return NewCodec(charset.NewCodec(charset.NewDetector(charset.WithGuesser(noGuess{}))))
}

func scenarioBlock() Block {
	var b Block
	copy(b[0:], "TAG")
	copy(b[3:], "Song")
	copy(b[33:], "Artist")
	copy(b[63:], "Album")
	copy(b[93:], "2001")
	b[125] = 0x00
	b[126] = 0x07
	b[127] = 0xFF
	return b
}

func TestDecode_Scenario(t *testing.T) {
	got := testCodec().Decode(scenarioBlock())

	want := Tag{
		Title:   "Song",
		Artist:  "Artist",
		Album:   "Album",
		Year:    "2001",
		Comment: "",
		Track:   7,
		Genre:   255,
	}
	if got != want {
		t.Errorf("Decode() = %+v, want %+v", got, want)
	}
}

func TestDecode_Variant(t *testing.T) {
	tests := []struct {
		name        string
		build       func(b *Block)
		variant     Variant
		wantTrack   uint8
		wantComment string
	}{
		{
			name: "track numbered",
			build: func(b *Block) {
				copy(b[97:], strings.Repeat("c", 28))
				b[125] = 0
				b[126] = 5
			},
			variant:     TrackNumbered,
			wantTrack:   5,
			wantComment: strings.Repeat("c", 28),
		},
		{
			name: "legacy",
			build: func(b *Block) {
				copy(b[97:], strings.Repeat("c", 30))
			},
			variant:     Legacy,
			wantTrack:   0,
			wantComment: strings.Repeat("c", 30),
		},
		{
			name: "track numbered with zero track",
			build: func(b *Block) {
				copy(b[97:], "short")
			},
			variant:     TrackNumbered,
			wantTrack:   0,
			wantComment: "short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Block
			copy(b[:], Magic)
			tt.build(&b)

			if v := b.Variant(); v != tt.variant {
				t.Errorf("Variant() = %v, want %v", v, tt.variant)
			}

			tag := testCodec().Decode(b)
			if tag.Track != tt.wantTrack {
				t.Errorf("Track = %d, want %d", tag.Track, tt.wantTrack)
			}
			if tag.Comment != tt.wantComment {
				t.Errorf("Comment = %q, want %q", tag.Comment, tt.wantComment)
			}
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	tag := Tag{
		Title:   "Song",
		Artist:  "Artist",
		Album:   "Album",
		Year:    "2001",
		Track:   7,
		Genre:   255,
		Comment: "",
	}

	b := testCodec().Encode(tag, DefaultEncoding)

	if want := scenarioBlock(); b != want {
		t.Errorf("Encode() =\n% X\nwant\n% X", b[:], want[:])
	}
	if len(b) != Size {
		t.Errorf("len = %d, want %d", len(b), Size)
	}
	if !b.HasMagic() {
		t.Error("encoded block does not start with TAG")
	}
}

func TestEncode_Truncation(t *testing.T) {
	tag := Tag{
		Title:   strings.Repeat("t", 40),
		Artist:  strings.Repeat("a", 31),
		Album:   strings.Repeat("l", 30),
		Year:    "2001-01-01",
		Comment: strings.Repeat("c", 30),
		Track:   9,
		Genre:   17,
	}

	b := testCodec().Encode(tag, DefaultEncoding)

	if string(b[3:33]) != strings.Repeat("t", 30) {
		t.Errorf("title = %q", b[3:33])
	}
	if b[33+30-1] != 'a' || b[63] != 'l' {
		t.Error("artist overflowed into album")
	}
	if string(b[93:97]) != "2001" {
		t.Errorf("year = %q, want 2001", b[93:97])
	}
	if string(b[97:125]) != strings.Repeat("c", 28) {
		t.Errorf("comment = %q, want 28 bytes", b[97:125])
	}
	if b[125] != 0 || b[126] != 9 || b[127] != 17 {
		t.Errorf("tail bytes = % X, want 00 09 11", b[125:])
	}
}

func TestEncode_EmptyTagIsZeroFilled(t *testing.T) {
	b := testCodec().Encode(Tag{}, DefaultEncoding)

	for i := len(Magic); i < Size; i++ {
		if b[i] != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, b[i])
		}
	}
}

func TestDecodeEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		tag      Tag
		encoding string
	}{
		{
			name:     "ascii",
			tag:      Tag{Title: "Thunderstruck", Artist: "AC/DC", Album: "The Razors Edge", Year: "1990", Comment: "ripped", Track: 1, Genre: 17},
			encoding: "windows-1251",
		},
		{
			name:     "cyrillic",
			tag:      Tag{Title: "Группа крови", Artist: "Кино", Album: "Группа крови", Year: "1988", Comment: "Виктор Цой", Track: 1, Genre: 255},
			encoding: "windows-1251",
		},
		{
			name:     "no track",
			tag:      Tag{Title: "Intro", Artist: "Band", Genre: 0},
			encoding: "latin1",
		},
		{
			name:     "full width fields",
			tag:      Tag{Title: strings.Repeat("T", 30), Artist: strings.Repeat("A", 30), Album: strings.Repeat("L", 30), Year: "1999", Comment: strings.Repeat("C", 28), Track: 255, Genre: 191},
			encoding: "windows-1251",
		},
	}

	codec := testCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codec.Decode(codec.Encode(tt.tag, tt.encoding))
			if got != tt.tag {
				t.Errorf("Decode(Encode()) = %+v, want %+v", got, tt.tag)
			}

			again := codec.Decode(codec.Encode(got, tt.encoding))
			if again != got {
				t.Errorf("second round trip = %+v, want %+v", again, got)
			}
		})
	}
}

func TestTag_String(t *testing.T) {
	tag := Tag{Title: "Song", Artist: "Artist", Album: "Album"}
	if got := tag.String(); got != "Artist - Song - Album" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewTag(t *testing.T) {
	tag := NewTag()
	if tag.HasGenre() || tag.HasTrack() {
		t.Errorf("NewTag() = %+v, want unknown genre and no track", tag)
	}
}

func TestGenreName(t *testing.T) {
	tests := []struct {
		id   uint8
		want string
		ok   bool
	}{
		{0, "Blues", true},
		{17, "Rock", true},
		{79, "Hard Rock", true},
		{147, "Synthpop", true},
		{191, "Psybient", true},
		{192, "", false},
		{255, "", false},
	}

	for _, tt := range tests {
		got, ok := GenreName(tt.id)
		if got != tt.want || ok != tt.ok {
			t.Errorf("GenreName(%d) = %q, %v, want %q, %v", tt.id, got, ok, tt.want, tt.ok)
		}
	}
}
