package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/handiism/tagfix/internal/audio"
	"github.com/handiism/tagfix/internal/config"
	"github.com/handiism/tagfix/internal/id3v1"
	ioutils "github.com/handiism/tagfix/internal/io"
	"github.com/handiism/tagfix/internal/logging"
	"github.com/handiism/tagfix/internal/model"
)

// ErrNotDirectory is returned by Initialize when the path is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
	// LevelOutput marks record lines, dumps and separators. Front ends
	// print them verbatim.
	LevelOutput
)

// ProgressEvent represents a processing progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	// File is the file being processed, empty for run-level events.
	File string
}

// Summary counts the outcome of a run.
type Summary struct {
	Total     int
	Processed int
	// Missing counts files without a record. They are never written.
	Missing int
	// Updated counts files whose record was rewritten.
	Updated int
	// Pending counts files that would have been rewritten in a dry run.
	Pending   int
	Failed    int
	Playlist  string
	Cancelled bool
	Elapsed   time.Duration
}

// Option customizes a Manager.
type Option func(*Manager)

// WithCodec sets the record codec used for both decoding and writing.
func WithCodec(codec *id3v1.Codec) Option {
	return func(m *Manager) {
		m.codec = codec
	}
}

// WithID3v2Probe replaces the check used to annotate files without an
// ID3v1 record.
func WithID3v2Probe(probe func(path string) (bool, error)) Option {
	return func(m *Manager) {
		m.probe = probe
	}
}

// Manager runs the tag policy over the audio files of one directory.
//
// Files are processed strictly one after another. A failure on one file is
// reported as an event and the run moves on to the next file.
type Manager struct {
	settings *config.Settings
	codec    *id3v1.Codec
	tagger   *audio.Tagger
	playlist *audio.PlaylistCreator
	pathCfg  *model.PathConfig
	probe    func(path string) (bool, error)
	log      zerolog.Logger

	folder *model.Folder
	files  []string

	processed int32
	updated   int32
	failed    int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new Manager. settings must already be validated.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) *Manager {
	pathCfg := settings.ToPathConfig()

	m := &Manager{
		settings:   settings,
		codec:      id3v1.NewCodec(nil),
		pathCfg:    pathCfg,
		probe:      audio.HasID3v2,
		playlist:   audio.NewPlaylistCreator(pathCfg.PlaylistFormat, settings.M3UExtended),
		log:        logging.WithPhase("batch"),
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.tagger = audio.NewTagger(settings.ToTagConfig(), m.codec)

	return m
}

// Initialize scans dir for audio files.
func (m *Manager) Initialize(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	files, err := ioutils.ListAudioFiles(dir, m.settings.Extensions)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}

	m.mu.Lock()
	m.folder = model.NewFolder(dir)
	m.files = files
	m.mu.Unlock()
	atomic.StoreInt32(&m.processed, 0)
	atomic.StoreInt32(&m.updated, 0)
	atomic.StoreInt32(&m.failed, 0)

	m.log.Debug().Str("dir", dir).Int("files", len(files)).Strs("extensions", m.settings.Extensions).Msg("scanned")
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio files in %s", len(files), dir), Level: LevelVerbose})

	return nil
}

// Run processes every file found by Initialize.
//
// Cancellation is checked between files; a cancelled run returns the
// partial summary along with ctx.Err(). Per-file failures never make Run
// return an error.
func (m *Manager) Run(ctx context.Context) (Summary, error) {
	start := time.Now()

	m.mu.RLock()
	files := m.files
	folder := m.folder
	m.mu.RUnlock()

	summary := Summary{Total: len(files)}
	if folder == nil {
		return summary, errors.New("batch: Run called before Initialize")
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			summary.Cancelled = true
			summary.Elapsed = time.Since(start)
			m.progress(ProgressEvent{Message: "Cancelled", Level: LevelWarning})
			return summary, err
		}

		m.processFile(ctx, folder, path, &summary)
		summary.Processed++
		atomic.AddInt32(&m.processed, 1)
	}

	if m.settings.CreatePlaylist && len(folder.Tracks) > 0 {
		summary.Playlist = m.writePlaylist(ctx, folder)
	}

	summary.Elapsed = time.Since(start)
	m.log.Info().
		Int("total", summary.Total).
		Int("updated", summary.Updated).
		Int("missing", summary.Missing).
		Int("failed", summary.Failed).
		Dur("elapsed", summary.Elapsed).
		Msg("run complete")

	return summary, nil
}

// GetProgress returns current processing progress.
func (m *Manager) GetProgress() (processed, total, updated, failed int) {
	m.mu.RLock()
	total = len(m.files)
	m.mu.RUnlock()

	return int(atomic.LoadInt32(&m.processed)), total,
		int(atomic.LoadInt32(&m.updated)), int(atomic.LoadInt32(&m.failed))
}

// Files returns the files found by Initialize.
func (m *Manager) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, len(m.files))
	copy(files, m.files)
	return files
}

// Folder returns the folder built during the run.
func (m *Manager) Folder() *model.Folder {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.folder
}

func (m *Manager) processFile(ctx context.Context, folder *model.Folder, path string, summary *Summary) {
	name := filepath.Base(path)
	log := logging.WithFile(path)
	defer m.output(path, "---")

	block, ok, err := id3v1.LocateFile(path)
	if err != nil {
		summary.Failed++
		atomic.AddInt32(&m.failed, 1)
		log.Warn().Err(err).Msg("read failed")
		m.progress(ProgressEvent{Message: fmt.Sprintf("Failed to read file %s: %v", name, err), Level: LevelError, File: path})
		return
	}

	if !ok {
		summary.Missing++
		msg := fmt.Sprintf("File %s has no ID3v1 tag", name)
		if has, err := m.probe(path); err != nil {
			log.Debug().Err(err).Msg("id3v2 probe failed")
		} else if has {
			msg += " (ID3v2 tag present)"
		}
		m.output(path, msg)
		return
	}

	tag := m.codec.Decode(block)
	log.Debug().Stringer("variant", block.Variant()).Uint8("track", tag.Track).Uint8("genre", tag.Genre).Msg("decoded")
	m.output(path, tag.String())

	if m.settings.Dump {
		m.output(path, "ID3v1 tag dump:")
		m.output(path, ioutils.HexDump(block[:]))
		m.output(path, "")
	}

	changes := m.tagger.Apply(&tag, name)
	for _, c := range changes {
		m.output(path, c.String())
	}

	folder.Tracks = append(folder.Tracks, model.NewTrack(folder, name, int(tag.Track), tag.Title, tag.Artist, tag.Album))

	if len(changes) == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("File %s already complete", name), Level: LevelVerbose, File: path})
		return
	}

	if m.settings.DryRun {
		summary.Pending++
		m.progress(ProgressEvent{Message: fmt.Sprintf("File %s would be updated (dry run)", name), Level: LevelInfo, File: path})
		return
	}

	if err := m.save(ctx, folder, path, tag); err != nil {
		summary.Failed++
		atomic.AddInt32(&m.failed, 1)
		log.Warn().Err(err).Msg("write failed")
		m.progress(ProgressEvent{Message: fmt.Sprintf("Failed to update tags in file %s: %v", name, err), Level: LevelError, File: path})
		return
	}

	summary.Updated++
	atomic.AddInt32(&m.updated, 1)
	log.Debug().Str("encoding", m.settings.Encoding).Msg("written")
	m.progress(ProgressEvent{Message: fmt.Sprintf("File %s updated", name), Level: LevelSuccess, File: path})
}

// save backs the file up when configured, then writes tag into it.
func (m *Manager) save(ctx context.Context, folder *model.Folder, path string, tag id3v1.Tag) error {
	if m.settings.Backup {
		dir := m.settings.BackupPath(folder.Path)
		if err := ioutils.EnsureDir(dir); err != nil {
			return fmt.Errorf("backup dir: %w", err)
		}
		dst := filepath.Join(dir, filepath.Base(path))
		if err := ioutils.CopyFile(ctx, path, dst); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Backed up to %s", dst), Level: LevelVerbose, File: path})
	}

	return m.tagger.SaveTags(path, tag)
}

func (m *Manager) writePlaylist(ctx context.Context, folder *model.Folder) string {
	folder.UpdatePlaylistPath(m.pathCfg)

	if m.settings.DryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would create playlist %s (dry run)", folder.PlaylistPath), Level: LevelInfo})
		return folder.PlaylistPath
	}

	content := m.playlist.CreatePlaylist(folder)
	if err := ioutils.WriteFile(ctx, folder.PlaylistPath, []byte(content)); err != nil {
		m.log.Warn().Err(err).Str("playlist", folder.PlaylistPath).Msg("playlist write failed")
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		return ""
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist %s", filepath.Base(folder.PlaylistPath)), Level: LevelSuccess})
	return folder.PlaylistPath
}

func (m *Manager) output(path, line string) {
	m.progress(ProgressEvent{Message: line, Level: LevelOutput, File: path})
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
