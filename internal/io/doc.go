// Package ioutils provides the file system helpers used by the batch engine.
//
// This package contains functions for:
//   - Listing the audio files of a directory
//   - Rendering a hex dump of raw record bytes
//   - Copying files (backups before a rewrite)
//   - Writing files and creating directories
//
// # Directory Listing
//
//	files, err := ioutils.ListAudioFiles("/music/album", []string{".mp3"})
//
// Only regular files directly inside the directory are returned, sorted by
// name, so a run always visits files in the same order.
//
// # Hex Dump
//
//	fmt.Println(ioutils.HexDump(block[:]))
//	// 0000: 54 41 47 53 6F 6E 67 00 00 00 00 00 00 00 00 00  | TAGSong.........
//
// # File Operations
//
//	err := ioutils.EnsureDir("/music/album/.tagfix-backup")
//	err = ioutils.CopyFile(ctx, "/music/album/01.mp3", "/music/album/.tagfix-backup/01.mp3")
//	err = ioutils.WriteFile(ctx, "/music/album/album.m3u", content)
package ioutils
