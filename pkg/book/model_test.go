package book

import "testing"

func TestNewImageEntry(t *testing.T) {
	entry, err := NewImageEntry("ch1\\page1.PNG")
	if err != nil {
		t.Fatalf("NewImageEntry failed: %v", err)
	}
	if entry.Path != "ch1/page1.PNG" {
		t.Errorf("expected forward slashes, got %q", entry.Path)
	}
	if entry.Ext != "png" {
		t.Errorf("expected ext 'png', got %q", entry.Ext)
	}
}

func TestNewImageEntryRejectsEscapes(t *testing.T) {
	for _, p := range []string{"", ".", "..", "../x.png", "a/../../x.png", "/abs/x.png"} {
		if _, err := NewImageEntry(p); err == nil {
			t.Errorf("expected %q to be rejected", p)
		}
	}
}

func TestNewChapterRangeInvariant(t *testing.T) {
	ch, err := NewChapter(2, "Chapter 2", "ch2", 6, 10)
	if err != nil {
		t.Fatalf("NewChapter failed: %v", err)
	}
	if ch.EndPage-ch.StartPage+1 != ch.PageCount {
		t.Errorf("range invariant broken: start=%d end=%d count=%d",
			ch.StartPage, ch.EndPage, ch.PageCount)
	}
	if ch.EndPage != 15 {
		t.Errorf("expected EndPage 15, got %d", ch.EndPage)
	}
}

func TestNewChapterRejectsMalformed(t *testing.T) {
	if _, err := NewChapter(0, "x", ".", 1, 1); err == nil {
		t.Error("expected rejection of non-positive number")
	}
	if _, err := NewChapter(1, "", ".", 1, 1); err == nil {
		t.Error("expected rejection of empty name")
	}
	if _, err := NewChapter(1, "x", ".", 1, 0); err == nil {
		t.Error("expected rejection of empty page range")
	}
}

func TestNewBookItemValidation(t *testing.T) {
	item, err := NewBookItem("Title", "folder", "folder\\cover.png", "folder/index-mb.html", 12, 2)
	if err != nil {
		t.Fatalf("NewBookItem failed: %v", err)
	}
	if item.CoverImage != "folder/cover.png" {
		t.Errorf("expected normalized cover path, got %q", item.CoverImage)
	}

	if _, err := NewBookItem("", "folder", "", "r.html", 1, 0); err == nil {
		t.Error("expected rejection of empty title")
	}
	if _, err := NewBookItem("t", "folder", "", "", 1, 0); err == nil {
		t.Error("expected rejection of missing reader link")
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		folder string
		want   string
	}{
		{"my_series", "my series"},
		{"[author].the_series", "the series"},
		{"plain", "plain"},
		{"trailing.", "trailing."},
		{"a.b.final_part", "final part"},
		{"___", "___"},
	}
	for _, tt := range tests {
		if got := ExtractTitle(tt.folder); got != tt.want {
			t.Errorf("ExtractTitle(%q) = %q, want %q", tt.folder, got, tt.want)
		}
	}
}
