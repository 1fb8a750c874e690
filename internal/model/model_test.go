package model

import (
	"path/filepath"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{"file:with:colons.mp3", "file_with_colons.mp3"},
		{"file<with>brackets.mp3", "file_with_brackets.mp3"},
		{"file/with\\slashes.mp3", "file_with_slashes.mp3"},
		{"file|with|pipes.mp3", "file_with_pipes.mp3"},
		{"file?with*wildcards.mp3", "file_with_wildcards.mp3"},
		{"file\"with\"quotes.mp3", "file_with_quotes.mp3"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
		{"Группа крови", "Группа крови"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFolder(t *testing.T) {
	folder := NewFolder("/music/Kino/1988/")

	if folder.Path != filepath.Clean("/music/Kino/1988") {
		t.Errorf("Path = %q", folder.Path)
	}
	if folder.Title != "1988" {
		t.Errorf("Title = %q, want 1988", folder.Title)
	}
	if folder.PlaylistPath != "" {
		t.Errorf("PlaylistPath = %q before UpdatePlaylistPath", folder.PlaylistPath)
	}
}

func TestFolder_UpdatePlaylistPath(t *testing.T) {
	tests := []struct {
		name   string
		format string
		pf     PlaylistFormat
		tracks [][2]string // artist, album
		want   string
	}{
		{"folder", "{folder}", PlaylistFormatM3U, nil, "1988.m3u"},
		{"empty format", "", PlaylistFormatPLS, nil, "1988.pls"},
		{"artist and album", "{artist} - {album}", PlaylistFormatWPL, [][2]string{{"", ""}, {"Кино", "Группа крови"}}, "Кино - Группа крови.wpl"},
		{"missing fields fall back", "{artist} - {album}", PlaylistFormatZPL, [][2]string{{"", ""}}, "1988 - 1988.zpl"},
		{"sanitized", "{album}", PlaylistFormatM3U, [][2]string{{"A", "What?/Why:"}}, "What__Why_.m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder := NewFolder("/music/Kino/1988")
			for i, ta := range tt.tracks {
				folder.Tracks = append(folder.Tracks, NewTrack(folder, "f.mp3", i+1, "t", ta[0], ta[1]))
			}

			folder.UpdatePlaylistPath(&PathConfig{PlaylistFileNameFormat: tt.format, PlaylistFormat: tt.pf})

			want := filepath.Join(folder.Path, tt.want)
			if folder.PlaylistPath != want {
				t.Errorf("PlaylistPath = %q, want %q", folder.PlaylistPath, want)
			}
		})
	}
}

func TestTrack_PathComputation(t *testing.T) {
	folder := NewFolder("/music/Artist/Album")
	track := NewTrack(folder, "01 Track Title.mp3", 1, "Track Title", "Artist", "Album")

	expectedPath := filepath.Join("/music/Artist/Album", "01 Track Title.mp3")
	if track.Path != expectedPath {
		t.Errorf("Track.Path = %q, want %q", track.Path, expectedPath)
	}
	if track.FileName() != "01 Track Title.mp3" {
		t.Errorf("FileName() = %q", track.FileName())
	}
}

func TestTrack_DisplayName(t *testing.T) {
	folder := NewFolder("/music")
	tests := []struct {
		title, artist string
		want          string
	}{
		{"Song", "Artist", "Artist - Song"},
		{"Song", "", "Song"},
		{"", "Artist", "Artist"},
		{"", "", "x.mp3"},
	}

	for _, tt := range tests {
		track := NewTrack(folder, "x.mp3", 0, tt.title, tt.artist, "")
		if got := track.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.title, tt.artist, got, tt.want)
		}
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	tests := []struct {
		format PlaylistFormat
		want   string
	}{
		{PlaylistFormatM3U, ".m3u"},
		{PlaylistFormatPLS, ".pls"},
		{PlaylistFormatWPL, ".wpl"},
		{PlaylistFormatZPL, ".zpl"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		name string
		want PlaylistFormat
		ok   bool
	}{
		{"m3u", PlaylistFormatM3U, true},
		{"PLS", PlaylistFormatPLS, true},
		{" wpl ", PlaylistFormatWPL, true},
		{"zpl", PlaylistFormatZPL, true},
		{"xspf", PlaylistFormatM3U, false},
	}

	for _, tt := range tests {
		got, ok := ParsePlaylistFormat(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePlaylistFormat(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
