// Package audio provides the per-file policy applied to ID3v1 records,
// an ID3v2 presence probe and playlist generation.
//
// # Tag Policy
//
// Tagger fills in what a record is missing and writes it back:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig(), nil)
//	changes := tagger.Apply(&tag, "07 Song.mp3")
//	for _, c := range changes {
//	    fmt.Println(c) // "Track number set: 7"
//	}
//	if len(changes) > 0 {
//	    err := tagger.SaveTags(path, tag)
//	}
//
// The policy covers:
//   - Track number, parsed from a leading number in the file name
//   - Genre, replacing the unknown sentinel 255 with a default
//   - Comment, optionally cleared
//
// # ID3v2 Probe
//
// HasID3v2 reports whether a file carries the newer tag format. tagfix
// never edits ID3v2 data; the probe only explains why a file has no
// ID3v1 record.
//
// # Playlist Generation
//
// Generate a playlist for a processed folder:
//
//	creator := audio.NewPlaylistCreator(model.PlaylistFormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(folder)
//	os.WriteFile(folder.PlaylistPath, []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
