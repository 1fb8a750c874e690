// Package batch runs the ID3v1 tag policy over a directory of audio files.
//
// # Manager
//
// The Manager coordinates one run:
//
//  1. List the audio files of the directory (sorted by name)
//  2. Locate and decode each file's 128-byte record
//  3. Print the record line and, optionally, a hex dump
//  4. Apply the tag policy (track from file name, default genre)
//  5. Back up and rewrite changed files (skipped in dry runs)
//  6. Generate a playlist (optional)
//
// # Basic Usage
//
//	manager := batch.NewManager(settings, func(event batch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, "/music/album"); err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := manager.Run(ctx)
//
// # Processing Model
//
// Files are processed sequentially. A file that cannot be read or written
// produces one LevelError event and the run continues with the next file.
// Cancelling ctx stops the run before the next file is opened.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success, Output
//	    File    string
//	}
//
// LevelOutput events carry the per-file console lines ("artist - title -
// album", "Track number set: 7", "---") and are meant to be printed as is.
// GetProgress may be polled from another goroutine while Run is active.
package batch
