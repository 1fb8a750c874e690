package charset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnknownEncoding is returned by Lookup for names with no available codec.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Placeholders substituted by the last-resort fallbacks.
const (
	DecodePlaceholder = '\uFFFD'
	EncodePlaceholder = '?'
)

// DecodeCascade is the ordered list of encodings tried after the detected one fails.
var DecodeCascade = []string{"windows-1251", "koi8-r", "utf-8", "latin1"}

// EncodeCascade is the ordered list of encodings tried after the requested one fails.
var EncodeCascade = []string{"utf-8"}

// aliases covers common spellings missing from the IANA registry.
var aliases = map[string]string{
	"cp1251":   "windows-1251",
	"cp1252":   "windows-1252",
	"cp866":    "IBM866",
	"koi8r":    "KOI8-R",
	"koi8u":    "KOI8-U",
	"utf8":     "UTF-8",
	"gb-18030": "GB18030",
}

// Lookup resolves an encoding name (IANA names and aliases, case-insensitive).
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Supported reports whether name resolves to a usable encoding.
func Supported(name string) bool {
	_, err := Lookup(name)
	return err == nil
}

// Codec decodes and encodes fixed-width text fields.
type Codec struct {
	detector *Detector
}

// NewCodec creates a Codec. A nil detector selects the default chardet-backed one.
func NewCodec(d *Detector) *Codec {
	if d == nil {
		d = defaultDetector
	}
	return &Codec{detector: d}
}

// DecodeField decodes a field span into text. It never fails.
func (c *Codec) DecodeField(b []byte) string {
	text, _ := c.DecodeFieldEncoding(b)
	return text
}

// DecodeFieldEncoding is DecodeField that also reports which encoding produced the text.
// The encoding is empty for an empty field.
func (c *Codec) DecodeFieldEncoding(b []byte) (string, string) {
	clean := bytes.TrimRight(b, "\x00")
	if len(clean) == 0 {
		return "", ""
	}

	guess := c.detector.Detect(clean)
	candidates := append([]string{guess.Name}, DecodeCascade...)
	if text, name, ok := firstDecode(clean, candidates); ok {
		return text, name
	}

	// latin1 maps every byte, so the cascade above cannot fall through.
	return decodeLatin1Replace(clean), WesternFallback
}

// EncodeField encodes text with the target encoding and truncates it to maxLen bytes.
//
// Truncation is byte-wise and can split a multi-byte character.
func (c *Codec) EncodeField(text string, maxLen int, target string) []byte {
	candidates := append([]string{target}, EncodeCascade...)
	out, ok := firstEncode(text, candidates)
	if !ok {
		out = encodeLatin1Replace(text)
	}

	if maxLen < 0 {
		maxLen = 0
	}
	if len(out) > maxLen {
		out = out[:maxLen]
	}
	return out
}

var defaultCodec = NewCodec(nil)

// DecodeField decodes a field span with the default codec.
func DecodeField(b []byte) string {
	return defaultCodec.DecodeField(b)
}

// EncodeField encodes a field with the default codec.
func EncodeField(text string, maxLen int, target string) []byte {
	return defaultCodec.EncodeField(text, maxLen, target)
}

// firstDecode returns the first candidate that decodes b strictly.
func firstDecode(b []byte, candidates []string) (string, string, bool) {
	for _, name := range candidates {
		if text, ok := decodeStrict(b, name); ok {
			return text, name, true
		}
	}
	return "", "", false
}

// firstEncode returns the first candidate that can represent text exactly.
func firstEncode(text string, candidates []string) ([]byte, bool) {
	for _, name := range candidates {
		if out, ok := encodeStrict(text, name); ok {
			return out, true
		}
	}
	return nil, false
}

// decodeStrict fails where a replacing decoder would emit U+FFFD.
func decodeStrict(b []byte, name string) (string, bool) {
	enc, err := Lookup(name)
	if err != nil {
		return "", false
	}
	if isUTF8(enc) {
		if !utf8.Valid(b) {
			return "", false
		}
		return string(b), true
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

func encodeStrict(text, name string) ([]byte, bool) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, false
	}
	if isUTF8(enc) {
		if !utf8.ValidString(text) {
			return nil, false
		}
		return []byte(text), true
	}

	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, false
	}
	return out, true
}

func isUTF8(enc encoding.Encoding) bool {
	name, err := ianaindex.IANA.Name(enc)
	return err == nil && name == "UTF-8"
}

func decodeLatin1Replace(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		r := charmap.ISO8859_1.DecodeByte(c)
		if r == utf8.RuneError {
			r = DecodePlaceholder
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func encodeLatin1Replace(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = EncodePlaceholder
		}
		out = append(out, b)
	}
	return out
}
