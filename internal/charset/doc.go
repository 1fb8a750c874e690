// Package charset recovers readable text from unlabeled legacy byte encodings
// and encodes text back into fixed-width byte fields.
//
// Old tag writers stored text in whatever code page the machine happened to
// use, without recording which one. This package guesses the code page and
// falls back through a fixed list of candidates until one decodes cleanly.
//
// # Detection
//
// Use a Detector to guess the encoding of a byte span:
//
//	d := charset.NewDetector()
//	guess := d.Detect(raw)
//	fmt.Println(guess.Name, guess.Confidence)
//
// Detection never fails. When the statistical guesser is unsure (confidence
// below 0.6), a heuristic picks windows-1251 for spans with high-bit bytes and
// latin1 otherwise.
//
// # Field Codec
//
// A Codec decodes and encodes tag fields:
//
//	codec := charset.NewCodec(nil)
//	title := codec.DecodeField(block[3:33])
//	raw := codec.EncodeField("Кино", 30, "windows-1251")
//
// Decoding strips trailing zero bytes and then tries the detected encoding,
// windows-1251, koi8-r, utf-8 and latin1 in that order. Encoding tries the
// requested encoding, then utf-8, then latin1 with '?' for unrepresentable
// characters. Both directions always succeed.
//
// Encoded fields are truncated by bytes, not characters, so a multi-byte
// sequence can be cut in half at the field boundary.
package charset
