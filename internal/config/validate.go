package config

import (
	"fmt"
	"strings"

	"github.com/handiism/tagfix/internal/charset"
	"github.com/handiism/tagfix/internal/model"
)

// ConfigError reports an invalid setting. It is fatal for a run: no file
// is touched once one is returned.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Validate checks every setting and returns the first problem as a
// *ConfigError.
func (s *Settings) Validate() error {
	if s.DefaultGenre < 0 || s.DefaultGenre > 255 {
		return &ConfigError{Field: "genre", Value: s.DefaultGenre, Reason: "must be in range 0-255"}
	}

	if !charset.Supported(s.Encoding) {
		return &ConfigError{Field: "encoding", Value: s.Encoding, Reason: "unknown encoding"}
	}

	if len(s.Extensions) == 0 {
		return &ConfigError{Field: "extensions", Value: "[]", Reason: "at least one extension is required"}
	}
	for _, ext := range s.Extensions {
		if strings.TrimSpace(strings.TrimPrefix(ext, ".")) == "" {
			return &ConfigError{Field: "extensions", Value: fmt.Sprintf("%q", ext), Reason: "empty extension"}
		}
	}

	if _, ok := model.ParsePlaylistFormat(s.PlaylistFormat); !ok {
		return &ConfigError{Field: "playlist format", Value: s.PlaylistFormat, Reason: "expected m3u, pls, wpl or zpl"}
	}

	if s.Backup && strings.TrimSpace(s.BackupDir) == "" {
		return &ConfigError{Field: "backup dir", Value: `""`, Reason: "required when backups are enabled"}
	}

	return nil
}
