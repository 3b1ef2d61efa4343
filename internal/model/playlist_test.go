package model

import "testing"

func newTestSong(id, title string) *Song {
	return &Song{ID: id, Title: title, Artist: "Artist " + id}
}

func TestNewPlaylist(t *testing.T) {
	p := NewPlaylist("")

	if p.Name != DefaultPlaylistName {
		t.Errorf("Expected default name %q, got %q", DefaultPlaylistName, p.Name)
	}
	if p.ID == "" {
		t.Error("Expected playlist ID to be generated")
	}
	if !p.IsEmpty() {
		t.Errorf("Expected empty playlist, got %d songs", p.Len())
	}
}

func TestPlaylist_AddSongKeepsInsertionOrder(t *testing.T) {
	p := NewPlaylist("Road trip")
	a, b, c := newTestSong("a", "A"), newTestSong("b", "B"), newTestSong("c", "C")

	p.AddSong(b)
	p.AddSong(a)
	p.AddSong(c)

	expected := []string{"b", "a", "c"}
	for i, id := range expected {
		if p.Songs[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, p.Songs[i].ID)
		}
	}
}

func TestPlaylist_AddDuplicateIsNoop(t *testing.T) {
	p := NewPlaylist("")
	a, b := newTestSong("a", "A"), newTestSong("b", "B")

	if !p.AddSong(a) {
		t.Fatal("Expected first add to succeed")
	}
	p.AddSong(b)
	if p.AddSong(a) {
		t.Error("Expected duplicate add to return false")
	}

	if p.Len() != 2 {
		t.Fatalf("Expected 2 songs, got %d", p.Len())
	}
	if p.Songs[0].ID != "a" {
		t.Errorf("Duplicate add should keep original position, got %s first", p.Songs[0].ID)
	}
}

func TestPlaylist_RemoveSong(t *testing.T) {
	p := NewPlaylist("")
	a, b := newTestSong("a", "A"), newTestSong("b", "B")
	p.AddSong(a)
	p.AddSong(b)

	if !p.RemoveSong("a") {
		t.Error("Expected removal of member to return true")
	}
	if p.Contains("a") {
		t.Error("Removed song should no longer be a member")
	}
	if p.RemoveSong("missing") {
		t.Error("Expected removal of non-member to return false")
	}
	if p.Len() != 1 || p.Songs[0].ID != "b" {
		t.Errorf("Expected only song b to remain, got %+v", p.Songs)
	}
}

func TestPlaylist_AddNil(t *testing.T) {
	p := NewPlaylist("")
	if p.AddSong(nil) {
		t.Error("Adding nil song should return false")
	}
}

func TestPlaylist_ZeroValueUsable(t *testing.T) {
	var p Playlist
	if !p.AddSong(newTestSong("a", "A")) {
		t.Fatal("Expected add on zero-value playlist to succeed")
	}
	if !p.Contains("a") {
		t.Error("Expected zero-value playlist to track membership")
	}
}

func TestPlaylist_SnapshotIsCopy(t *testing.T) {
	p := NewPlaylist("")
	p.AddSong(newTestSong("a", "A"))

	snap := p.Snapshot()
	snap[0] = newTestSong("x", "X")

	if p.Songs[0].ID != "a" {
		t.Error("Modifying snapshot should not affect playlist")
	}
}

func TestPlaylist_Clear(t *testing.T) {
	p := NewPlaylist("")
	p.AddSong(newTestSong("a", "A"))
	p.AddSong(newTestSong("b", "B"))

	p.Clear()

	if !p.IsEmpty() {
		t.Errorf("Expected empty playlist after Clear, got %d", p.Len())
	}
	if p.Contains("a") {
		t.Error("Membership should be reset after Clear")
	}
}

func TestPlaylist_ClearKeepsOldSlice(t *testing.T) {
	p := NewPlaylist("")
	p.AddSong(newTestSong("a", "A"))
	old := p.Songs

	p.Clear()
	p.AddSong(newTestSong("c", "C"))

	if old[0].ID != "a" {
		t.Errorf("Slice held before Clear was overwritten, got %s", old[0].ID)
	}
}
