// Package config provides configuration management for tagfix.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Validation, reported as *ConfigError
//   - Conversion to audio.TagConfig and model.PathConfig for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Only *.mp3 files
//	// Text written as windows-1251
//	// Missing track numbers filled in, genre 255 left as is
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Validation
//
// Command line flags are applied on top of the loaded file, then the
// result is validated once. An out-of-range genre or an unknown encoding
// stops the run before any file is opened:
//
//	if err := settings.Validate(); err != nil {
//	    var cfgErr *config.ConfigError
//	    errors.As(err, &cfgErr) // cfgErr.Field == "genre"
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - Default genre and write encoding
//   - Which fields the tag policy touches
//   - File extensions, dry runs and dumps
//   - Backups before rewriting
//   - Playlist generation
package config
