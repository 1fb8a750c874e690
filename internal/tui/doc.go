// Package tui is the interactive front end of tagfix.
//
// The user enters a directory, toggles options with tab followed by
// n (dry run), p (playlist) or v (verbose), and starts the run with enter.
// A batch.Manager processes the files in the background; its events are
// streamed to the model over a channel and the progress bar polls
// GetProgress.
//
//	settings, _ := config.Load(config.DefaultPath())
//	err := tui.Run(settings, "/music/album")
package tui
