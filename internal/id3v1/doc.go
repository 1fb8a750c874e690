// Package id3v1 reads and rewrites the 128-byte ID3v1 record stored at the
// end of MP3 files.
//
// # Layout
//
// Offsets are relative to the start of the record:
//
//	0    3   "TAG"
//	3    30  title
//	33   30  artist
//	63   30  album
//	93   4   year
//	97   30  comment (28 when byte 125 is zero)
//	125  1   zero marker (ID3v1.1)
//	126  1   track number (only when byte 125 is zero)
//	127  1   genre id (255 = unknown)
//
// # Reading
//
//	block, ok, err := id3v1.LocateFile("song.mp3")
//	if err != nil {
//	    return err // file missing, unreadable or shorter than 128 bytes
//	}
//	if !ok {
//	    return nil // no record, which is a normal state
//	}
//	tag := id3v1.Decode(block)
//	fmt.Println(tag) // "Artist - Title - Album"
//
// # Writing
//
//	tag.Track = 3
//	err := id3v1.WriteFile("song.mp3", tag, "windows-1251")
//
// Writing always produces an ID3v1.1 record. An existing record is
// overwritten in place; otherwise the record is appended to the file.
//
// # Text
//
// Text fields are decoded with package charset, which guesses the legacy code
// page of each field. Encoded fields are truncated to their byte width.
package id3v1
