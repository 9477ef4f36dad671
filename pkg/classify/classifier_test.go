package classify

import (
	"testing"
)

func TestCategoryOf(t *testing.T) {
	c := New(DefaultTable)

	tests := []struct {
		ext      string
		expected string
	}{
		{".jpg", "Images"},
		{".png", "Images"},
		{".mp4", "Videos"},
		{".pdf", "Documents"},
		{".txt", "Documents"},
		{".mp3", "Music"},
		{".zip", "Archives"},
		{".py", "Code"},
		{".exe", "Executables"},
		{".csv", "Data"},
		{".xyz", "Others"},
		{"", "Others"},
	}

	for _, tt := range tests {
		name := tt.ext
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			if got := c.CategoryOf(tt.ext); got != tt.expected {
				t.Errorf("CategoryOf(%q) = %s, want %s", tt.ext, got, tt.expected)
			}
		})
	}
}

func TestCategoryOfCaseInsensitive(t *testing.T) {
	c := New(DefaultTable)

	tests := []struct {
		upper string
		lower string
	}{
		{".JPG", ".jpg"},
		{".Mp3", ".mp3"},
		{".PDF", ".pdf"},
		{".TaR", ".tar"},
	}

	for _, tt := range tests {
		t.Run(tt.upper, func(t *testing.T) {
			if c.CategoryOf(tt.upper) != c.CategoryOf(tt.lower) {
				t.Errorf("CategoryOf(%q) = %s, CategoryOf(%q) = %s, want identical",
					tt.upper, c.CategoryOf(tt.upper), tt.lower, c.CategoryOf(tt.lower))
			}
		})
	}
}

func TestCategoryOfDuplicatesResolveToFirstDeclared(t *testing.T) {
	c := New(DefaultTable)

	// .json, .xml and .sql appear under both Code and Data; Code is
	// declared first and must win every time.
	for _, ext := range []string{".json", ".xml", ".sql"} {
		t.Run(ext, func(t *testing.T) {
			if got := c.CategoryOf(ext); got != "Code" {
				t.Errorf("CategoryOf(%q) = %s, want Code", ext, got)
			}
		})
	}
}

func TestCategoryOfCustomTable(t *testing.T) {
	table := []Category{
		{Label: "Text", Extensions: []string{".txt"}},
		{Label: "AlsoText", Extensions: []string{".txt", ".md"}},
	}
	c := New(table)

	if got := c.CategoryOf(".txt"); got != "Text" {
		t.Errorf("CategoryOf(.txt) = %s, want Text (first declared)", got)
	}
	if got := c.CategoryOf(".md"); got != "AlsoText" {
		t.Errorf("CategoryOf(.md) = %s, want AlsoText", got)
	}
	if got := c.CategoryOf(".rst"); got != CatchAll {
		t.Errorf("CategoryOf(.rst) = %s, want %s", got, CatchAll)
	}
}

func TestLint(t *testing.T) {
	t.Run("DefaultTableDuplicates", func(t *testing.T) {
		duplicates := Lint(DefaultTable)

		want := map[string]bool{".json": true, ".xml": true, ".sql": true}
		if len(duplicates) != len(want) {
			t.Fatalf("Lint() returned %d duplicates, want %d: %+v", len(duplicates), len(want), duplicates)
		}
		for _, dup := range duplicates {
			if !want[dup.Extension] {
				t.Errorf("unexpected duplicate %q", dup.Extension)
			}
			if dup.ResolvesTo != "Code" {
				t.Errorf("duplicate %q resolves to %s, want Code", dup.Extension, dup.ResolvesTo)
			}
			if len(dup.Categories) != 2 {
				t.Errorf("duplicate %q claimed by %v, want 2 categories", dup.Extension, dup.Categories)
			}
		}
	})

	t.Run("CleanTable", func(t *testing.T) {
		table := []Category{
			{Label: "A", Extensions: []string{".a"}},
			{Label: "B", Extensions: []string{".b"}},
		}
		if duplicates := Lint(table); len(duplicates) != 0 {
			t.Errorf("Lint() = %+v, want none", duplicates)
		}
	})
}

func TestLabels(t *testing.T) {
	labels := Labels(DefaultTable)

	expected := []string{"Images", "Videos", "Documents", "Music", "Archives", "Code", "Executables", "Data"}
	if len(labels) != len(expected) {
		t.Fatalf("Labels() length = %d, want %d", len(labels), len(expected))
	}
	for i, label := range expected {
		if labels[i] != label {
			t.Errorf("Labels()[%d] = %s, want %s", i, labels[i], label)
		}
	}
}
