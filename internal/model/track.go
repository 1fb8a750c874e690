package model

import (
	"path/filepath"
)

// Track is one audio file in a Folder, described by its decoded record.
//
// Number is the record's track byte; zero means the file carries no track
// number. Title, Artist and Album are the decoded text fields and may be
// empty.
type Track struct {
	// Folder is a reference to the parent folder.
	Folder *Folder

	// Number is the track number, 0 when unknown.
	Number int

	// Title is the track title.
	Title string

	// Artist is the track artist.
	Artist string

	// Album is the album title.
	Album string

	// Path is the full path of the audio file.
	Path string
}

// NewTrack creates a Track for fileName inside folder.
func NewTrack(folder *Folder, fileName string, number int, title, artist, album string) *Track {
	return &Track{
		Folder: folder,
		Number: number,
		Title:  title,
		Artist: artist,
		Album:  album,
		Path:   filepath.Join(folder.Path, fileName),
	}
}

// FileName returns the base name of the audio file.
func (t *Track) FileName() string {
	return filepath.Base(t.Path)
}

// DisplayName returns "artist - title", falling back to whichever part is
// present and finally to the file name.
func (t *Track) DisplayName() string {
	switch {
	case t.Artist != "" && t.Title != "":
		return t.Artist + " - " + t.Title
	case t.Title != "":
		return t.Title
	case t.Artist != "":
		return t.Artist
	default:
		return t.FileName()
	}
}
