package render

import (
	"html/template"
	"log/slog"
	"strconv"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/book"
)

type chapterRange struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Name  string `json:"name"`
}

type readerSection struct {
	Chapter book.Chapter
	Pages   []book.Page
}

type readerData struct {
	Title      string
	TotalPages int
	Chapters   []book.Chapter
	Sections   []readerSection
	Ranges     map[string]chapterRange
}

// WriteReader emits the eager reader: every page is an <img> in the document,
// grouped into chapter sections, with the navigation chrome wired up by the
// embedded script.
func WriteReader(b *book.Book, outPath string, log *slog.Logger) error {
	data := readerData{
		Title:      b.Title,
		TotalPages: b.TotalPages,
		Chapters:   b.Chapters,
		Ranges:     make(map[string]chapterRange, len(b.Chapters)),
	}
	for _, ch := range b.Chapters {
		data.Ranges[strconv.Itoa(ch.Number)] = chapterRange{Start: ch.StartPage, End: ch.EndPage, Name: ch.Name}
		sec := readerSection{Chapter: ch}
		for _, p := range b.Pages {
			if p.Chapter == ch.Number {
				sec.Pages = append(sec.Pages, p)
			}
		}
		data.Sections = append(data.Sections, sec)
	}
	log.Debug("rendering eager reader", "pages", b.TotalPages, "chapters", len(b.Chapters))
	return renderToFile(readerTemplate, data, outPath)
}

var readerTemplate = template.Must(template.New("reader").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
:root {
  --bg-primary: #1a1a2e;
  --bg-secondary: #16213e;
  --bg-nav: rgba(22, 33, 62, 0.95);
  --text-primary: #eaeaea;
  --text-secondary: #a0a0b8;
  --accent: #e94560;
  --accent-soft: rgba(233, 69, 96, 0.35);
}
body.light {
  --bg-primary: #f5f5f7;
  --bg-secondary: #ffffff;
  --bg-nav: rgba(255, 255, 255, 0.95);
  --text-primary: #1c1c1e;
  --text-secondary: #6c6c70;
  --accent: #d7263d;
  --accent-soft: rgba(215, 38, 61, 0.25);
}
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  background: var(--bg-primary);
  color: var(--text-primary);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  transition: background 0.3s;
}
.top-nav {
  position: fixed;
  top: 0; left: 0; right: 0;
  z-index: 100;
  background: var(--bg-nav);
  backdrop-filter: blur(10px);
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 10px 16px;
  transform: translateY(0);
  transition: transform 0.3s;
}
.top-nav.hidden { transform: translateY(-100%); }
.nav-title {
  flex: 1;
  font-size: 15px;
  font-weight: 600;
  white-space: nowrap;
  overflow: hidden;
  text-overflow: ellipsis;
}
.nav-chapter { font-size: 12px; color: var(--text-secondary); white-space: nowrap; }
.nav-counter { font-size: 13px; color: var(--text-secondary); white-space: nowrap; }
.nav-btn {
  background: none;
  border: 1px solid var(--text-secondary);
  color: var(--text-primary);
  border-radius: 6px;
  padding: 5px 10px;
  font-size: 13px;
  cursor: pointer;
}
.nav-btn:active { background: var(--accent-soft); }
.progress-track {
  position: fixed;
  top: 0; left: 0; right: 0;
  height: 3px;
  z-index: 101;
  background: transparent;
}
.progress-fill { height: 100%; width: 0%; background: var(--accent); transition: width 0.2s; }
.reader-container { max-width: 820px; margin: 0 auto; padding: 56px 0 90px; }
.page-image { display: block; width: 100%; height: auto; }
.chapter-marker {
  padding: 26px 16px;
  text-align: center;
  font-size: 17px;
  font-weight: 600;
  color: var(--accent);
  background: var(--bg-secondary);
}
.sidebar {
  position: fixed;
  top: 0; right: 0; bottom: 0;
  width: 270px;
  max-width: 82vw;
  z-index: 200;
  background: var(--bg-secondary);
  transform: translateX(100%);
  transition: transform 0.3s;
  overflow-y: auto;
  padding-top: 52px;
}
.sidebar.open { transform: translateX(0); }
.sidebar-title { padding: 10px 16px; font-size: 13px; color: var(--text-secondary); text-transform: uppercase; }
.chapter-item {
  display: block;
  width: 100%;
  text-align: left;
  border: none;
  background: none;
  color: var(--text-primary);
  padding: 12px 16px;
  font-size: 14px;
  cursor: pointer;
}
.chapter-item.active { color: var(--accent); border-left: 3px solid var(--accent); }
.chapter-item .pages { display: block; font-size: 11px; color: var(--text-secondary); margin-top: 2px; }
.overlay {
  position: fixed;
  inset: 0;
  z-index: 150;
  background: rgba(0, 0, 0, 0.5);
  opacity: 0;
  pointer-events: none;
  transition: opacity 0.3s;
}
.overlay.visible { opacity: 1; pointer-events: auto; }
.slider-bar {
  position: fixed;
  left: 0; right: 0; bottom: 0;
  z-index: 100;
  background: var(--bg-nav);
  backdrop-filter: blur(10px);
  padding: 12px 18px 18px;
  transform: translateY(0);
  transition: transform 0.3s;
}
.slider-bar.hidden { transform: translateY(100%); }
.slider-label { font-size: 12px; color: var(--text-secondary); text-align: center; margin-bottom: 6px; }
.page-slider { width: 100%; accent-color: var(--accent); }
</style>
</head>
<body>
<div class="progress-track"><div class="progress-fill" id="progressFill"></div></div>
<nav class="top-nav" id="topNav">
  <div class="nav-title">{{.Title}}</div>
  <div class="nav-chapter" id="chapterIndicator"></div>
  <div class="nav-counter"><span id="currentPage">1</span> / {{.TotalPages}}</div>
  <button class="nav-btn" id="themeBtn" aria-label="Toggle theme">&#9681;</button>
  <button class="nav-btn" id="chaptersBtn" aria-label="Chapters">&#9776;</button>
</nav>
<main class="reader-container" id="readerContainer">
{{range .Sections}}{{if gt .Chapter.Number 1}}<div class="chapter-marker">{{.Chapter.Name}}</div>
{{end}}{{range .Pages}}<img class="page-image" id="page-{{.Number}}" data-page="{{.Number}}" data-chapter="{{.Chapter}}" src="{{.Entry.Path}}" alt="Page {{.Number}}" loading="lazy">
{{end}}{{end}}</main>
<div class="overlay" id="overlay"></div>
<aside class="sidebar" id="sidebar">
  <div class="sidebar-title">Chapters</div>
{{range .Chapters}}  <button class="chapter-item" data-chapter="{{.Number}}" data-start="{{.StartPage}}">{{.Name}}<span class="pages">Pages {{.StartPage}}-{{.EndPage}}</span></button>
{{end}}</aside>
<div class="slider-bar" id="sliderBar">
  <div class="slider-label" id="sliderLabel">Page 1 of {{.TotalPages}}</div>
  <input type="range" class="page-slider" id="pageSlider" min="1" max="{{.TotalPages}}" value="1">
</div>
<script>
(function () {
  'use strict';

  var totalPages = {{.TotalPages}};
  var chapterRanges = {{.Ranges}};
  var storageKey = 'reader:' + {{.Title}};

  var state = {
    currentPage: 1,
    chromeVisible: true,
    sliderActive: false
  };

  var topNav = document.getElementById('topNav');
  var sliderBar = document.getElementById('sliderBar');
  var sidebar = document.getElementById('sidebar');
  var overlay = document.getElementById('overlay');
  var pageSlider = document.getElementById('pageSlider');
  var sliderLabel = document.getElementById('sliderLabel');
  var progressFill = document.getElementById('progressFill');
  var currentPageEl = document.getElementById('currentPage');
  var chapterIndicator = document.getElementById('chapterIndicator');

  function chapterForPage(page) {
    for (var key in chapterRanges) {
      var r = chapterRanges[key];
      if (page >= r.start && page <= r.end) {
        return r;
      }
    }
    return null;
  }

  function setCurrentPage(page) {
    if (page === state.currentPage) { return; }
    state.currentPage = page;
    currentPageEl.textContent = page;
    progressFill.style.width = (page / totalPages * 100) + '%';
    if (!state.sliderActive) {
      pageSlider.value = page;
      sliderLabel.textContent = 'Page ' + page + ' of ' + totalPages;
    }
    var ch = chapterForPage(page);
    chapterIndicator.textContent = ch ? ch.name : '';
    var items = sidebar.querySelectorAll('.chapter-item');
    for (var i = 0; i < items.length; i++) {
      var r = chapterRanges[items[i].dataset.chapter];
      items[i].classList.toggle('active', !!r && page >= r.start && page <= r.end);
    }
    try {
      localStorage.setItem(storageKey, String(page));
    } catch (e) { /* private mode */ }
  }

  function goToPage(page) {
    page = Math.max(1, Math.min(totalPages, page));
    var el = document.getElementById('page-' + page);
    if (el) {
      el.scrollIntoView({ block: 'start' });
    }
    setCurrentPage(page);
  }

  function toggleChrome(show) {
    state.chromeVisible = show === undefined ? !state.chromeVisible : show;
    topNav.classList.toggle('hidden', !state.chromeVisible);
    sliderBar.classList.toggle('hidden', !state.chromeVisible);
  }

  function toggleSidebar(open) {
    var want = open === undefined ? !sidebar.classList.contains('open') : open;
    sidebar.classList.toggle('open', want);
    overlay.classList.toggle('visible', want);
  }

  // Track the topmost visible page.
  var observer = new IntersectionObserver(function (entries) {
    var best = null;
    for (var i = 0; i < entries.length; i++) {
      if (entries[i].isIntersecting) {
        if (!best || entries[i].boundingClientRect.top < best.boundingClientRect.top) {
          best = entries[i];
        }
      }
    }
    if (best) {
      setCurrentPage(parseInt(best.target.dataset.page, 10));
    }
  }, { rootMargin: '-40% 0px -40% 0px' });

  var images = document.querySelectorAll('.page-image');
  for (var i = 0; i < images.length; i++) {
    observer.observe(images[i]);
  }

  // Tap zones: left third previous, right third next, middle toggles chrome.
  document.getElementById('readerContainer').addEventListener('click', function (e) {
    var x = e.clientX / window.innerWidth;
    if (x < 0.3) {
      goToPage(state.currentPage - 1);
    } else if (x > 0.7) {
      goToPage(state.currentPage + 1);
    } else {
      toggleChrome();
    }
  });

  document.addEventListener('keydown', function (e) {
    switch (e.key) {
    case 'ArrowLeft':
    case 'ArrowUp':
      e.preventDefault();
      goToPage(state.currentPage - 1);
      break;
    case 'ArrowRight':
    case 'ArrowDown':
    case ' ':
      e.preventDefault();
      goToPage(state.currentPage + 1);
      break;
    case 'Home':
      goToPage(1);
      break;
    case 'End':
      goToPage(totalPages);
      break;
    }
  });

  pageSlider.addEventListener('input', function () {
    state.sliderActive = true;
    sliderLabel.textContent = 'Page ' + pageSlider.value + ' of ' + totalPages;
  });
  pageSlider.addEventListener('change', function () {
    state.sliderActive = false;
    goToPage(parseInt(pageSlider.value, 10));
  });

  document.getElementById('chaptersBtn').addEventListener('click', function (e) {
    e.stopPropagation();
    toggleSidebar();
  });
  overlay.addEventListener('click', function () { toggleSidebar(false); });
  sidebar.addEventListener('click', function (e) {
    var item = e.target.closest('.chapter-item');
    if (item) {
      goToPage(parseInt(item.dataset.start, 10));
      toggleSidebar(false);
    }
  });

  var themeKey = 'reader:theme';
  function applyTheme(light) {
    document.body.classList.toggle('light', light);
  }
  document.getElementById('themeBtn').addEventListener('click', function (e) {
    e.stopPropagation();
    var light = !document.body.classList.contains('light');
    applyTheme(light);
    try { localStorage.setItem(themeKey, light ? 'light' : 'dark'); } catch (err) {}
  });

  try {
    applyTheme(localStorage.getItem(themeKey) === 'light');
    var saved = parseInt(localStorage.getItem(storageKey), 10);
    if (saved > 1 && saved <= totalPages) {
      window.addEventListener('load', function () { goToPage(saved); });
    }
  } catch (e) { /* private mode */ }
})();
</script>
</body>
</html>
`))
