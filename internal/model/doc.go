// Package model defines the value types shared by the batch engine, the
// playlist writer and the front ends.
//
// # Folder
//
// Folder is the directory being processed:
//
//	folder := model.NewFolder("/music/Kino/1988")
//	fmt.Println(folder.Title) // "1988"
//
// # Track
//
// Track is one audio file with its decoded record fields:
//
//	track := model.NewTrack(folder, "01 Song.mp3", 1, "Song", "Artist", "Album")
//	fmt.Println(track.Path)          // "/music/Kino/1988/01 Song.mp3"
//	fmt.Println(track.DisplayName()) // "Artist - Song"
//
// # Path Configuration
//
// PathConfig controls how the playlist path is computed using placeholders:
//
//	cfg := &model.PathConfig{
//	    PlaylistFileNameFormat: "{artist} - {album}",
//	    PlaylistFormat:         model.PlaylistFormatM3U,
//	}
//	folder.UpdatePlaylistPath(cfg)
//
// Available placeholders: {folder}, {artist}, {album}
package model
