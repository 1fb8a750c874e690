package charset

import (
	"github.com/saintfish/chardet"
)

// DefaultMinConfidence is the confidence below which the statistical guess is
// ignored in favour of the byte heuristic.
const DefaultMinConfidence = 0.6

// Heuristic fallbacks.
const (
	CyrillicFallback = "windows-1251"
	WesternFallback  = "latin1"
)

// Guess is the result of encoding detection for one byte span.
type Guess struct {
	// Name is the encoding name, resolvable with Lookup.
	Name string

	// Confidence is the statistical guesser's certainty in [0, 1].
	// Heuristic guesses carry the (low) confidence of the rejected guess, or 0.
	Confidence float64

	// Heuristic is true when the guess came from the high-bit byte rule
	// rather than the statistical guesser.
	Heuristic bool
}

// Guesser is a statistical encoding guesser.
//
// ok is false when the guesser has no answer at all.
type Guesser interface {
	Guess(b []byte) (name string, confidence float64, ok bool)
}

// ChardetGuesser guesses encodings with github.com/saintfish/chardet.
type ChardetGuesser struct {
	detector *chardet.Detector
}

// NewChardetGuesser creates a guesser backed by a plain-text chardet detector.
func NewChardetGuesser() *ChardetGuesser {
	return &ChardetGuesser{detector: chardet.NewTextDetector()}
}

// Guess implements Guesser. chardet reports confidence as 0-100; it is scaled to [0, 1].
func (g *ChardetGuesser) Guess(b []byte) (string, float64, bool) {
	// chardet.NotDetectedError is the only error DetectBest returns.
	res, err := g.detector.DetectBest(b)
	if err != nil || res == nil || res.Charset == "" {
		return "", 0, false
	}
	return res.Charset, float64(res.Confidence) / 100, true
}

// Detector guesses the text encoding of raw byte spans.
type Detector struct {
	guesser       Guesser
	minConfidence float64
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithGuesser replaces the statistical guesser.
func WithGuesser(g Guesser) DetectorOption {
	return func(d *Detector) {
		d.guesser = g
	}
}

// WithMinConfidence sets the confidence threshold for accepting a statistical guess.
func WithMinConfidence(c float64) DetectorOption {
	return func(d *Detector) {
		d.minConfidence = c
	}
}

// NewDetector creates a Detector. Without options it uses chardet and a 0.6 threshold.
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{
		minConfidence: DefaultMinConfidence,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.guesser == nil {
		d.guesser = NewChardetGuesser()
	}
	return d
}

// Detect guesses the encoding of b. It always returns a usable guess.
func (d *Detector) Detect(b []byte) Guess {
	name, confidence, ok := d.guesser.Guess(b)
	if ok && name != "" && confidence >= d.minConfidence {
		return Guess{Name: name, Confidence: confidence}
	}

	guess := Guess{Name: WesternFallback, Confidence: confidence, Heuristic: true}
	if hasHighBit(b) {
		guess.Name = CyrillicFallback
	}
	return guess
}

var defaultDetector = NewDetector()

// Detect guesses the encoding of b with the default detector.
func Detect(b []byte) Guess {
	return defaultDetector.Detect(b)
}

func hasHighBit(b []byte) bool {
	for _, c := range b {
		if c > 127 {
			return true
		}
	}
	return false
}
