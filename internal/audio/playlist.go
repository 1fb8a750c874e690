package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/tagfix/internal/model"
)

// UnknownDuration is written wherever a playlist format expects a length.
// tagfix never decodes audio, so track lengths are not known.
const UnknownDuration = -1

// PlaylistCreator generates playlist files in various formats.
//
// PlaylistCreator takes a processed folder and generates a playlist
// containing all of its tracks in processing order. Entry titles come from
// the decoded records ("artist - title"), falling back to the file name.
//
// Example:
//
//	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist(folder)
//	os.WriteFile(folder.PlaylistPath, []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:-1,Artist - Song Title
//	// 01 Song Title.mp3
type PlaylistCreator struct {
	format   model.PlaylistFormat
	extended bool // For M3U: include EXTINF lines
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended only affects M3U output.
func NewPlaylistCreator(format model.PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// CreatePlaylist generates playlist content for a folder.
//
// Track paths in the playlist are relative (just the filename), since the
// playlist is written into the same directory as the tracks.
func (p *PlaylistCreator) CreatePlaylist(folder *model.Folder) string {
	switch p.format {
	case model.PlaylistFormatPLS:
		return p.createPLS(folder)
	case model.PlaylistFormatWPL:
		return p.createWPL(folder)
	case model.PlaylistFormatZPL:
		return p.createZPL(folder)
	default:
		return p.createM3U(folder)
	}
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:-1,Artist - Title
//	filename1.mp3
func (p *PlaylistCreator) createM3U(folder *model.Folder) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, track := range folder.Tracks {
		if p.extended {
			fmt.Fprintf(&sb, "#EXTINF:%d,%s\n", UnknownDuration, track.DisplayName())
		}
		sb.WriteString(filepath.Base(track.Path) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=filename1.mp3
//	Title1=Artist - Song Title
//	Length1=-1
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(folder *model.Folder) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, track := range folder.Tracks {
		idx := i + 1
		fmt.Fprintf(&sb, "File%d=%s\n", idx, filepath.Base(track.Path))
		fmt.Fprintf(&sb, "Title%d=%s\n", idx, track.DisplayName())
		fmt.Fprintf(&sb, "Length%d=%d\n", idx, UnknownDuration)
	}

	fmt.Fprintf(&sb, "NumberOfEntries=%d\n", len(folder.Tracks))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
func (p *PlaylistCreator) createWPL(folder *model.Folder) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(playlistTitle(folder)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, track := range folder.Tracks {
		fmt.Fprintf(&sb, "      <media src=\"%s\"/>\n", escapeXML(filepath.Base(track.Path)))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist.
//
// Per-track album and artist attributes come from each record; the
// duration attribute is omitted.
func (p *PlaylistCreator) createZPL(folder *model.Folder) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(playlistTitle(folder)))
	sb.WriteString("    <meta name=\"Generator\" content=\"tagfix\"/>\n")
	fmt.Fprintf(&sb, "    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(folder.Tracks))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, track := range folder.Tracks {
		fmt.Fprintf(&sb, "      <media src=\"%s\" albumTitle=\"%s\" albumArtist=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\"/>\n",
			escapeXML(filepath.Base(track.Path)),
			escapeXML(track.Album),
			escapeXML(folder.Artist()),
			escapeXML(track.Title),
			escapeXML(track.Artist))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// playlistTitle prefers the album found in the records over the directory name.
func playlistTitle(folder *model.Folder) string {
	if album := folder.Album(); album != "" {
		return album
	}
	return folder.Title
}

// escapeXML escapes special XML characters in a string.
//
// Replaces: & < > " '
// With:     &amp; &lt; &gt; &quot; &apos;
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
