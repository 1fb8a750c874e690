package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/handiism/tagfix/internal/audio"
	"github.com/handiism/tagfix/internal/id3v1"
	"github.com/handiism/tagfix/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Tag settings
	DefaultGenre        int    `json:"default_genre"` // 0-255, 255 leaves unknown genres alone
	Encoding            string `json:"encoding"`
	FillTrackNumbers    bool   `json:"fill_track_numbers"`
	ReplaceUnknownGenre bool   `json:"replace_unknown_genre"`
	ClearComments       bool   `json:"clear_comments"`

	// Scan settings
	Extensions []string `json:"extensions"`
	Dump       bool     `json:"dump"`
	DryRun     bool     `json:"dry_run"`
	Verbose    bool     `json:"verbose"`

	// Backup settings
	Backup    bool   `json:"backup"`
	BackupDir string `json:"backup_dir"` // relative paths are resolved against the scanned directory

	// Playlist settings
	CreatePlaylist         bool   `json:"create_playlist"`
	PlaylistFormat         string `json:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended            bool   `json:"m3u_extended"`
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultGenre:        int(id3v1.GenreUnknown),
		Encoding:            id3v1.DefaultEncoding,
		FillTrackNumbers:    true,
		ReplaceUnknownGenre: true,
		ClearComments:       false,

		Extensions: []string{".mp3"},
		Dump:       false,
		DryRun:     false,
		Verbose:    false,

		Backup:    false,
		BackupDir: ".tagfix-backup",

		CreatePlaylist:         false,
		PlaylistFormat:         "m3u",
		M3UExtended:            true,
		PlaylistFileNameFormat: "{folder}",
	}
}

// DefaultPath returns the per-user settings file location,
// e.g. ~/.config/tagfix/config.json on Linux.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tagfix.json"
	}
	return filepath.Join(dir, "tagfix", "config.json")
}

// Load reads settings from a JSON file.
//
// A missing file yields DefaultSettings. Keys absent from the file keep
// their default values. Load does not validate; call Validate before use.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, &ConfigError{Field: "file", Value: path, Reason: err.Error()}
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToTagConfig converts settings to the audio tag policy.
//
// Settings must be valid; the genre is truncated to a byte otherwise.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := &audio.TagConfig{
		Track:        audio.TagDoNotModify,
		Genre:        audio.TagDoNotModify,
		Comment:      audio.TagDoNotModify,
		DefaultGenre: uint8(s.DefaultGenre),
		Encoding:     s.Encoding,
	}
	if s.FillTrackNumbers {
		cfg.Track = audio.TagModify
	}
	if s.ReplaceUnknownGenre {
		cfg.Genre = audio.TagModify
	}
	if s.ClearComments {
		cfg.Comment = audio.TagEmpty
	}
	return cfg
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	pf, ok := model.ParsePlaylistFormat(s.PlaylistFormat)
	if !ok {
		pf = model.PlaylistFormatM3U
	}

	return &model.PathConfig{
		PlaylistFileNameFormat: s.PlaylistFileNameFormat,
		PlaylistFormat:         pf,
	}
}

// BackupPath returns the directory backups go to when processing dir.
func (s *Settings) BackupPath(dir string) string {
	if filepath.IsAbs(s.BackupDir) {
		return s.BackupDir
	}
	return filepath.Join(dir, s.BackupDir)
}
