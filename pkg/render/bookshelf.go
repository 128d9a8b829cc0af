package render

import (
	"html/template"
	"log/slog"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/book"
)

type bookshelfData struct {
	Title string
	Items []book.BookItem
}

// WriteBookshelf emits the gallery document, one card per book linking to
// that book's reader. Covers load lazily via an IntersectionObserver.
func WriteBookshelf(title string, items []book.BookItem, outPath string, log *slog.Logger) error {
	log.Debug("rendering bookshelf", "books", len(items))
	return renderToFile(bookshelfTemplate, bookshelfData{Title: title, Items: items}, outPath)
}

var bookshelfTemplate = template.Must(template.New("bookshelf").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
:root {
  --bg-primary: #1a1a2e;
  --bg-card: #16213e;
  --text-primary: #eaeaea;
  --text-secondary: #a0a0b8;
  --accent: #e94560;
  --shadow: rgba(0, 0, 0, 0.4);
}
body.light {
  --bg-primary: #f5f5f7;
  --bg-card: #ffffff;
  --text-primary: #1c1c1e;
  --text-secondary: #6c6c70;
  --accent: #d7263d;
  --shadow: rgba(0, 0, 0, 0.12);
}
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  background: var(--bg-primary);
  color: var(--text-primary);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  transition: background 0.3s;
}
.shelf-header {
  display: flex;
  align-items: center;
  gap: 14px;
  padding: 22px 24px 10px;
}
.shelf-header h1 { flex: 1; font-size: 22px; }
.shelf-count { font-size: 13px; color: var(--text-secondary); }
.theme-btn {
  background: none;
  border: 1px solid var(--text-secondary);
  color: var(--text-primary);
  border-radius: 6px;
  padding: 6px 12px;
  font-size: 14px;
  cursor: pointer;
}
.book-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(160px, 1fr));
  gap: 18px;
  padding: 18px 24px 40px;
}
.book-card {
  display: block;
  text-decoration: none;
  color: var(--text-primary);
  background: var(--bg-card);
  border-radius: 10px;
  overflow: hidden;
  box-shadow: 0 4px 12px var(--shadow);
  transition: transform 0.2s;
}
.book-card:hover { transform: translateY(-4px); }
.cover-wrap { position: relative; aspect-ratio: 3 / 4; background: var(--bg-primary); }
.cover-img {
  width: 100%;
  height: 100%;
  object-fit: cover;
  display: block;
  opacity: 0;
  transition: opacity 0.3s;
}
.cover-img.loaded { opacity: 1; }
.cover-missing {
  position: absolute;
  inset: 0;
  display: flex;
  align-items: center;
  justify-content: center;
  font-size: 42px;
  color: var(--text-secondary);
}
.page-badge {
  position: absolute;
  top: 8px;
  right: 8px;
  background: var(--accent);
  color: #fff;
  border-radius: 10px;
  padding: 2px 8px;
  font-size: 11px;
}
.card-body { padding: 10px 12px 12px; }
.card-title {
  font-size: 14px;
  font-weight: 600;
  line-height: 1.3;
  display: -webkit-box;
  -webkit-line-clamp: 2;
  -webkit-box-orient: vertical;
  overflow: hidden;
}
.card-meta { margin-top: 4px; font-size: 12px; color: var(--text-secondary); }
.shelf-empty { padding: 60px 24px; text-align: center; color: var(--text-secondary); }
</style>
</head>
<body>
<header class="shelf-header">
  <h1>{{.Title}}</h1>
  <span class="shelf-count">{{len .Items}} books</span>
  <button class="theme-btn" id="themeBtn" aria-label="Toggle theme">&#9681;</button>
</header>
{{if .Items}}<main class="book-grid">
{{range .Items}}  <a class="book-card" href="{{.ReaderLink}}">
    <div class="cover-wrap">
{{if .CoverImage}}      <img class="cover-img" data-src="{{.CoverImage}}" alt="{{.Title}}">
{{else}}      <div class="cover-missing">&#128214;</div>
{{end}}      <span class="page-badge">{{.PageCount}}p</span>
    </div>
    <div class="card-body">
      <div class="card-title">{{.Title}}</div>
      <div class="card-meta">{{.Subfolders}} folders</div>
    </div>
  </a>
{{end}}</main>
{{else}}<div class="shelf-empty">No books found in this library.</div>
{{end}}<script>
(function () {
  'use strict';

  var observer = new IntersectionObserver(function (entries) {
    for (var i = 0; i < entries.length; i++) {
      if (!entries[i].isIntersecting) { continue; }
      var img = entries[i].target;
      img.src = img.dataset.src;
      img.addEventListener('load', function (e) { e.target.classList.add('loaded'); });
      observer.unobserve(img);
    }
  }, { rootMargin: '200px' });

  var covers = document.querySelectorAll('.cover-img[data-src]');
  for (var i = 0; i < covers.length; i++) {
    observer.observe(covers[i]);
  }

  var themeKey = 'bookshelf:theme';
  document.getElementById('themeBtn').addEventListener('click', function () {
    var light = !document.body.classList.contains('light');
    document.body.classList.toggle('light', light);
    try { localStorage.setItem(themeKey, light ? 'light' : 'dark'); } catch (e) {}
  });
  try {
    document.body.classList.toggle('light', localStorage.getItem(themeKey) === 'light');
  } catch (e) {}
})();
</script>
</body>
</html>
`))
