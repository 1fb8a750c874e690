package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/tagfix/internal/batch"
	"github.com/handiism/tagfix/internal/config"
	"github.com/handiism/tagfix/internal/logging"
)

// options mirrors the command line flags.
type options struct {
	configPath     string
	dump           bool
	genre          int
	encoding       string
	dryRun         bool
	playlist       bool
	playlistFormat string
	noTrackFill    bool
	clearComments  bool
	backup         bool
	verbose        bool
	debug          bool
	logHuman       bool
}

// NewRootCommand builds the tagfix command.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tagfix <directory>",
		Short: "Inspect and repair ID3v1 tags of the MP3 files in a directory",
		Long: `tagfix reads the 128-byte ID3v1 record at the end of every MP3 file in a
directory, prints artist, title and album, fills in a missing track number
from the file name and replaces the unknown genre (255) with a default.

Text in legacy 8-bit encodings (windows-1251, koi8-r, latin1) is detected
automatically. Changed records are written back with --encoding.

For interactive mode, use: tagfix-tui`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to config file (default "+config.DefaultPath()+")")
	f.BoolVarP(&opts.dump, "dump", "d", false, "print a hex dump of each ID3v1 record")
	f.IntVarP(&opts.genre, "genre", "g", 255, "genre id (0-255) written over the unknown genre; 255 leaves it unset")
	f.StringVarP(&opts.encoding, "encoding", "e", "windows-1251", "text encoding used when writing records")
	f.BoolVarP(&opts.dryRun, "dry-run", "n", false, "report changes without writing files")
	f.BoolVarP(&opts.playlist, "playlist", "p", false, "create a playlist of the processed files")
	f.StringVar(&opts.playlistFormat, "playlist-format", "m3u", "playlist format: m3u, pls, wpl or zpl")
	f.BoolVar(&opts.noTrackFill, "no-track-fill", false, "do not take track numbers from file names")
	f.BoolVar(&opts.clearComments, "clear-comments", false, "clear the comment field")
	f.BoolVarP(&opts.backup, "backup", "b", false, "copy each file to the backup directory before rewriting it")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "show verbose output")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	f.BoolVar(&opts.logHuman, "log-human", false, "human-readable log lines instead of JSON")

	return cmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	cmd := NewRootCommand()
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		NewPrinter(cmd.ErrOrStderr(), false).Error(err)
	}
	return err
}

func run(cmd *cobra.Command, opts *options, dir string) error {
	logging.InitTo(cmd.ErrOrStderr(), opts.debug, opts.logHuman)

	settings, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	out := NewPrinter(cmd.OutOrStdout(), settings.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := batch.NewManager(settings, out.Event)
	if err := manager.Initialize(ctx, dir); err != nil {
		return err
	}

	if settings.Verbose {
		out.Title(dir)
	}

	summary, err := manager.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			out.Summary(summary, settings.DryRun)
			return fmt.Errorf("interrupted after %d of %d files: %w", summary.Processed, summary.Total, err)
		}
		return err
	}

	// per-file failures were already reported and do not fail the run
	out.Summary(summary, settings.DryRun)
	return nil
}

// loadSettings reads the config file and applies explicitly set flags on
// top of it. The result is validated before anything touches the disk.
func loadSettings(cmd *cobra.Command, opts *options) (*config.Settings, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("dump") {
		settings.Dump = opts.dump
	}
	if f.Changed("genre") {
		settings.DefaultGenre = opts.genre
	}
	if f.Changed("encoding") {
		settings.Encoding = opts.encoding
	}
	if f.Changed("dry-run") {
		settings.DryRun = opts.dryRun
	}
	if f.Changed("playlist") {
		settings.CreatePlaylist = opts.playlist
	}
	if f.Changed("playlist-format") {
		settings.PlaylistFormat = opts.playlistFormat
	}
	if f.Changed("no-track-fill") {
		settings.FillTrackNumbers = !opts.noTrackFill
	}
	if f.Changed("clear-comments") {
		settings.ClearComments = opts.clearComments
	}
	if f.Changed("backup") {
		settings.Backup = opts.backup
	}
	if f.Changed("verbose") {
		settings.Verbose = opts.verbose
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
