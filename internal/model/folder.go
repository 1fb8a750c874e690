package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Folder is one directory of audio files processed in a single batch run.
//
// Tracks are appended in processing order (file name order). The playlist
// path is computed from PathConfig once the tracks are known, because its
// {artist} and {album} placeholders come from the decoded records.
//
// Example:
//
//	folder := NewFolder("/music/Kino/1988 Gruppa krovi")
//	folder.Tracks = append(folder.Tracks, NewTrack(folder, "01 Gruppa krovi.mp3", 1, ...))
//	folder.UpdatePlaylistPath(&PathConfig{PlaylistFileNameFormat: "{album}"})
//	// folder.PlaylistPath = "/music/Kino/1988 Gruppa krovi/Группа крови.m3u"
type Folder struct {
	// Path is the directory holding the audio files.
	Path string

	// Title is the last path element, used for {folder}.
	Title string

	// Tracks contains every file that carried or received a record.
	Tracks []*Track

	// PlaylistPath is the computed playlist file path.
	// Empty until UpdatePlaylistPath is called.
	PlaylistPath string
}

// NewFolder creates a Folder for dir.
func NewFolder(dir string) *Folder {
	dir = filepath.Clean(dir)
	return &Folder{
		Path:  dir,
		Title: filepath.Base(dir),
	}
}

// Artist returns the first non-empty artist among the tracks.
func (f *Folder) Artist() string {
	for _, t := range f.Tracks {
		if t.Artist != "" {
			return t.Artist
		}
	}
	return ""
}

// Album returns the first non-empty album title among the tracks.
func (f *Folder) Album() string {
	for _, t := range f.Tracks {
		if t.Album != "" {
			return t.Album
		}
	}
	return ""
}

// PathConfig holds playlist naming settings.
//
// PlaylistFileNameFormat supports these placeholders:
//   - {folder} - Directory name
//   - {artist} - First artist found in the folder's records
//   - {album} - First album title found in the folder's records
//
// Placeholders that resolve to an empty value fall back to the folder name.
type PathConfig struct {
	// PlaylistFileNameFormat is the filename template for playlists (without extension).
	// Example: "{folder}" or "{artist} - {album}"
	PlaylistFileNameFormat string

	// PlaylistFormat determines the playlist file type and extension.
	PlaylistFormat PlaylistFormat
}

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// PlaylistFormatM3U creates .m3u playlist files (most widely supported).
	PlaylistFormatM3U PlaylistFormat = iota

	// PlaylistFormatPLS creates .pls playlist files (used by Winamp).
	PlaylistFormatPLS

	// PlaylistFormatWPL creates .wpl playlist files (Windows Media Player).
	PlaylistFormatWPL

	// PlaylistFormatZPL creates .zpl playlist files (Zune Media Player).
	PlaylistFormatZPL
)

var playlistFormatNames = map[string]PlaylistFormat{
	"m3u": PlaylistFormatM3U,
	"pls": PlaylistFormatPLS,
	"wpl": PlaylistFormatWPL,
	"zpl": PlaylistFormatZPL,
}

// ParsePlaylistFormat maps a case-insensitive name ("m3u", "pls", "wpl",
// "zpl") to a PlaylistFormat.
func ParsePlaylistFormat(name string) (PlaylistFormat, bool) {
	pf, ok := playlistFormatNames[strings.ToLower(strings.TrimSpace(name))]
	return pf, ok
}

// Extension returns the file extension for the playlist format, including the dot.
//
// Returns:
//   - ".m3u" for PlaylistFormatM3U
//   - ".pls" for PlaylistFormatPLS
//   - ".wpl" for PlaylistFormatWPL
//   - ".zpl" for PlaylistFormatZPL
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case PlaylistFormatM3U:
		return ".m3u"
	case PlaylistFormatPLS:
		return ".pls"
	case PlaylistFormatWPL:
		return ".wpl"
	case PlaylistFormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

func (pf PlaylistFormat) String() string {
	return strings.TrimPrefix(pf.Extension(), ".")
}

// UpdatePlaylistPath computes PlaylistPath from cfg and the current tracks.
func (f *Folder) UpdatePlaylistPath(cfg *PathConfig) {
	fileName := f.parsePlaylistFileName(cfg)
	ext := cfg.PlaylistFormat.Extension()
	filePath := filepath.Join(f.Path, fileName+ext)

	// Limit total path length for Windows compatibility
	if len(filePath) >= 260 {
		maxLen := 11 - len(ext)
		if maxLen > 0 && maxLen < len(fileName) {
			filePath = filepath.Join(f.Path, fileName[:maxLen]+ext)
		}
	}

	f.PlaylistPath = filePath
}

// parsePlaylistFileName computes the playlist filename from the config template.
func (f *Folder) parsePlaylistFileName(cfg *PathConfig) string {
	artist := f.Artist()
	if artist == "" {
		artist = f.Title
	}
	album := f.Album()
	if album == "" {
		album = f.Title
	}

	fileName := cfg.PlaylistFileNameFormat
	if fileName == "" {
		fileName = "{folder}"
	}
	fileName = strings.ReplaceAll(fileName, "{folder}", f.Title)
	fileName = strings.ReplaceAll(fileName, "{artist}", artist)
	fileName = strings.ReplaceAll(fileName, "{album}", album)

	fileName = sanitizeFileName(fileName)
	if fileName == "" {
		fileName = "playlist"
	}
	return fileName
}

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// sanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
func sanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
