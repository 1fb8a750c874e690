package audio

import (
	"strings"
	"testing"

	"github.com/handiism/tagfix/internal/model"
)

func TestPlaylistCreator_M3U(t *testing.T) {
	folder := createTestFolder()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, false)

	content := creator.CreatePlaylist(folder)

	want := "01 track1.mp3\n02 track2.mp3\n"
	if content != want {
		t.Errorf("M3U = %q, want %q", content, want)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	folder := createTestFolder()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)

	content := creator.CreatePlaylist(folder)

	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Test Artist - track1\n01 track1.mp3\n") {
		t.Errorf("Extended M3U entry missing, got:\n%s", content)
	}
	if !strings.Contains(content, "#EXTINF:-1,02 track2.mp3\n") {
		t.Errorf("untagged track should fall back to its file name, got:\n%s", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	folder := createTestFolder()
	creator := NewPlaylistCreator(model.PlaylistFormatPLS, false)

	content := creator.CreatePlaylist(folder)

	for _, want := range []string{"[playlist]\n", "File1=01 track1.mp3\n", "Title1=Test Artist - track1\n", "Length1=-1\n", "NumberOfEntries=2\n", "Version=2\n"} {
		if !strings.Contains(content, want) {
			t.Errorf("PLS missing %q, got:\n%s", want, content)
		}
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	folder := createTestFolder()
	creator := NewPlaylistCreator(model.PlaylistFormatWPL, false)

	content := creator.CreatePlaylist(folder)

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<title>Test Album</title>") {
		t.Errorf("WPL title should come from the records, got:\n%s", content)
	}
	if strings.Count(content, "<media src=") != 2 {
		t.Error("WPL should contain one media element per track")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	folder := createTestFolder()
	creator := NewPlaylistCreator(model.PlaylistFormatZPL, false)

	content := creator.CreatePlaylist(folder)

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, `albumTitle="Test Album"`) {
		t.Error("ZPL should contain albumTitle attribute")
	}
	if strings.Contains(content, "duration=") {
		t.Error("ZPL should not claim a duration")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	folder := model.NewFolder("/music/misc")
	folder.Tracks = append(folder.Tracks,
		model.NewTrack(folder, "a&b.mp3", 1, "Track & \"Quote\"", "Artist & Co", "Album <Special>"))

	creator := NewPlaylistCreator(model.PlaylistFormatWPL, false)
	content := creator.CreatePlaylist(folder)

	if !strings.Contains(content, "a&amp;b.mp3") {
		t.Error("WPL should escape & as &amp;")
	}
	if strings.Contains(content, "<Special>") {
		t.Error("WPL should escape < and >")
	}
}

func TestPlaylistCreator_EmptyFolderTitle(t *testing.T) {
	folder := model.NewFolder("/music/Untitled")
	creator := NewPlaylistCreator(model.PlaylistFormatWPL, false)

	if content := creator.CreatePlaylist(folder); !strings.Contains(content, "<title>Untitled</title>") {
		t.Errorf("WPL title should fall back to the folder name, got:\n%s", content)
	}
}

func createTestFolder() *model.Folder {
	folder := model.NewFolder("/music/Test Artist/Test Album")

	track1 := model.NewTrack(folder, "01 track1.mp3", 1, "track1", "Test Artist", "Test Album")
	track2 := model.NewTrack(folder, "02 track2.mp3", 2, "", "", "")

	folder.Tracks = []*model.Track{track1, track2}

	return folder
}
