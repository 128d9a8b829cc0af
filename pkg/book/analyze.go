package book

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/scan"
)

// Analyzer maps a scanned tree onto chapters and globally numbered pages.
type Analyzer struct {
	root  string
	log   *slog.Logger
	caser cases.Caser
}

func NewAnalyzer(root string, log *slog.Logger) *Analyzer {
	return &Analyzer{root: root, log: log, caser: cases.Title(language.Und)}
}

// Analyze assigns every image to exactly one chapter and returns the
// assembled book model. Inputs are the scanner's absolute file and directory
// paths in discovery order; that order is what numbers the chapters.
//
// Chapter candidates are the scanned directories. Each image belongs to the
// candidate that is its closest ancestor; candidates left without any
// directly assigned image are dropped, since a zero-page chapter cannot hold
// a contiguous range. Images directly inside the root form chapter 1, named
// "Introduction" when folder chapters exist and "Main Chapter" otherwise.
func (a *Analyzer) Analyze(images, dirs []string) (*Book, error) {
	root, err := filepath.Abs(a.root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", a.root, err)
	}

	absDirs := make([]string, 0, len(dirs))
	dirSet := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		ad, err := filepath.Abs(d)
		if err != nil {
			continue
		}
		if _, dup := dirSet[ad]; dup {
			continue
		}
		dirSet[ad] = struct{}{}
		absDirs = append(absDirs, ad)
	}

	groups := make(map[string][]ImageEntry)
	for _, img := range images {
		ai, err := filepath.Abs(img)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(root, ai)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			a.log.Warn("image outside root, skipping", "path", img)
			continue
		}
		entry, err := NewImageEntry(rel)
		if err != nil {
			a.log.Warn("rejecting malformed image path", "path", img, "error", err)
			continue
		}
		owner := closestAncestor(ai, root, dirSet)
		groups[owner] = append(groups[owner], entry)
	}

	var (
		chapters []Chapter
		pages    []Page
		nextPage = 1
		number   = 1
	)
	appendChapter := func(name, folder string, imgs []ImageEntry) error {
		ch, err := NewChapter(number, name, folder, nextPage, len(imgs))
		if err != nil {
			return err
		}
		chapters = append(chapters, ch)
		for _, e := range imgs {
			pages = append(pages, Page{Number: nextPage, Entry: e, Chapter: number})
			nextPage++
		}
		number++
		return nil
	}

	if rootImgs := groups[root]; len(rootImgs) > 0 {
		name := "Main Chapter"
		if len(absDirs) > 0 {
			name = "Introduction"
		}
		sortByChapterRelative(rootImgs, "")
		if err := appendChapter(name, ".", rootImgs); err != nil {
			return nil, err
		}
	}
	for _, d := range absDirs {
		imgs := groups[d]
		if len(imgs) == 0 {
			continue
		}
		relDir, err := filepath.Rel(root, d)
		if err != nil {
			continue
		}
		relDir = filepath.ToSlash(relDir)
		sortByChapterRelative(imgs, relDir+"/")
		if err := appendChapter(a.chapterName(filepath.Base(d), number), relDir, imgs); err != nil {
			return nil, err
		}
	}

	return &Book{
		Title:      filepath.Base(root),
		Root:       root,
		Chapters:   chapters,
		Pages:      pages,
		TotalPages: len(pages),
	}, nil
}

// closestAncestor walks up from the image's parent directory and returns the
// first (deepest, i.e. minimum relative-path depth) scanned directory, or the
// root when no folder chapter owns the image.
func closestAncestor(imagePath, root string, dirSet map[string]struct{}) string {
	for d := filepath.Dir(imagePath); d != root; d = filepath.Dir(d) {
		if _, ok := dirSet[d]; ok {
			return d
		}
		if d == filepath.Dir(d) { // filesystem root, give up
			break
		}
	}
	return root
}

// sortByChapterRelative orders entries by natural sort of their path relative
// to the chapter folder. Cross-chapter order is governed by chapter number,
// never by the full path.
func sortByChapterRelative(entries []ImageEntry, prefix string) {
	sort.SliceStable(entries, func(i, j int) bool {
		return scan.NaturalLess(
			strings.TrimPrefix(entries[i].Path, prefix),
			strings.TrimPrefix(entries[j].Path, prefix),
		)
	})
}

// chapterName derives a display name from a folder name: digit or
// digit-leading names become "Chapter <name>", anything else gets separators
// replaced and is title-cased.
func (a *Analyzer) chapterName(folderName string, number int) string {
	name := strings.ReplaceAll(folderName, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Sprintf("Chapter %d", number)
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "Chapter " + name
	}
	return a.caser.String(name)
}
