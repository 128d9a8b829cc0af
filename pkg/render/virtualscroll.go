package render

import (
	"html/template"
	"log/slog"
	"strconv"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/book"
)

type manifestPage struct {
	Page    int    `json:"page"`
	Src     string `json:"src"`
	Chapter int    `json:"chapter"`
}

type windowedData struct {
	Title           string
	TotalPages      int
	EstimatedHeight int
	Pages           []manifestPage
	Ranges          map[string]chapterRange
}

// WriteWindowedReader emits the virtual-scroll reader: instead of one <img>
// per page the document carries a JSON page manifest and a scroll spacer
// sized from an estimated page height, and the embedded script keeps only a
// small window of pages mounted around the viewport.
func WriteWindowedReader(b *book.Book, outPath string, estimatedHeight int, log *slog.Logger) error {
	if estimatedHeight <= 0 {
		estimatedHeight = fallbackPageHeight
	}
	data := windowedData{
		Title:           b.Title,
		TotalPages:      b.TotalPages,
		EstimatedHeight: estimatedHeight,
		Pages:           make([]manifestPage, 0, len(b.Pages)),
		Ranges:          make(map[string]chapterRange, len(b.Chapters)),
	}
	for _, p := range b.Pages {
		data.Pages = append(data.Pages, manifestPage{Page: p.Number, Src: p.Entry.Path, Chapter: p.Chapter})
	}
	for _, ch := range b.Chapters {
		data.Ranges[strconv.Itoa(ch.Number)] = chapterRange{Start: ch.StartPage, End: ch.EndPage, Name: ch.Name}
	}
	log.Debug("rendering windowed reader", "pages", b.TotalPages, "estimatedHeight", estimatedHeight)
	return renderToFile(windowedTemplate, data, outPath)
}

var windowedTemplate = template.Must(template.New("windowed").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
:root {
  --bg-primary: #1a1a2e;
  --bg-nav: rgba(22, 33, 62, 0.95);
  --text-primary: #eaeaea;
  --text-secondary: #a0a0b8;
  --accent: #e94560;
}
body.light {
  --bg-primary: #f5f5f7;
  --bg-nav: rgba(255, 255, 255, 0.95);
  --text-primary: #1c1c1e;
  --text-secondary: #6c6c70;
  --accent: #d7263d;
}
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  background: var(--bg-primary);
  color: var(--text-primary);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
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
.progress-track { position: fixed; top: 0; left: 0; right: 0; height: 3px; z-index: 101; }
.progress-fill { height: 100%; width: 0%; background: var(--accent); transition: width 0.2s; }
.reader-container { max-width: 820px; margin: 0 auto; padding: 56px 0 90px; }
.scroll-spacer { position: relative; }
.page-image {
  position: absolute;
  left: 0;
  display: block;
  width: 100%;
  height: auto;
}
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
</nav>
<main class="reader-container">
  <div class="scroll-spacer" id="scrollSpacer"></div>
</main>
<div class="slider-bar" id="sliderBar">
  <div class="slider-label" id="sliderLabel">Page 1 of {{.TotalPages}}</div>
  <input type="range" class="page-slider" id="pageSlider" min="1" max="{{.TotalPages}}" value="1">
</div>
<script>
(function () {
  'use strict';

  var pages = {{.Pages}};
  var chapterRanges = {{.Ranges}};
  var estimatedHeight = {{.EstimatedHeight}};
  var totalPages = {{.TotalPages}};
  var renderBuffer = 3;
  var storageKey = 'reader:' + {{.Title}};

  var spacer = document.getElementById('scrollSpacer');
  var topNav = document.getElementById('topNav');
  var sliderBar = document.getElementById('sliderBar');
  var pageSlider = document.getElementById('pageSlider');
  var sliderLabel = document.getElementById('sliderLabel');
  var progressFill = document.getElementById('progressFill');
  var currentPageEl = document.getElementById('currentPage');
  var chapterIndicator = document.getElementById('chapterIndicator');

  function VirtualScrollManager() {
    this.heights = new Array(pages.length);
    this.offsets = new Array(pages.length + 1);
    this.mounted = {};
    this.currentPage = 1;
    this.chromeVisible = true;
    this.sliderActive = false;
    this.rebuildOffsets();
  }

  VirtualScrollManager.prototype.rebuildOffsets = function () {
    var y = 0;
    for (var i = 0; i < pages.length; i++) {
      this.offsets[i] = y;
      y += this.heights[i] || estimatedHeight;
    }
    this.offsets[pages.length] = y;
    spacer.style.height = y + 'px';
  };

  // Binary search for the page covering a document offset.
  VirtualScrollManager.prototype.pageAt = function (y) {
    var lo = 0, hi = pages.length - 1;
    while (lo < hi) {
      var mid = (lo + hi + 1) >> 1;
      if (this.offsets[mid] <= y) { lo = mid; } else { hi = mid - 1; }
    }
    return lo;
  };

  VirtualScrollManager.prototype.update = function () {
    if (pages.length === 0) { return; }
    var viewTop = Math.max(0, window.scrollY - spacer.offsetTop);
    var first = this.pageAt(viewTop);
    var last = this.pageAt(viewTop + window.innerHeight);
    var from = Math.max(0, first - renderBuffer);
    var to = Math.min(pages.length - 1, last + renderBuffer);

    for (var key in this.mounted) {
      var idx = parseInt(key, 10);
      if (idx < from || idx > to) {
        spacer.removeChild(this.mounted[key]);
        delete this.mounted[key];
      }
    }
    for (var i = from; i <= to; i++) {
      if (!this.mounted[i]) {
        this.mount(i);
      } else {
        this.mounted[i].style.top = this.offsets[i] + 'px';
      }
    }
    this.setCurrentPage(pages[first].page);
  };

  VirtualScrollManager.prototype.mount = function (i) {
    var self = this;
    var img = document.createElement('img');
    img.className = 'page-image';
    img.src = pages[i].src;
    img.alt = 'Page ' + pages[i].page;
    img.style.top = this.offsets[i] + 'px';
    img.addEventListener('load', function () {
      var h = img.getBoundingClientRect().height;
      if (h > 0 && Math.abs((self.heights[i] || estimatedHeight) - h) > 1) {
        self.heights[i] = h;
        self.rebuildOffsets();
        self.update();
      }
    });
    spacer.appendChild(img);
    this.mounted[i] = img;
  };

  VirtualScrollManager.prototype.chapterForPage = function (page) {
    for (var key in chapterRanges) {
      var r = chapterRanges[key];
      if (page >= r.start && page <= r.end) { return r; }
    }
    return null;
  };

  VirtualScrollManager.prototype.setCurrentPage = function (page) {
    if (page === this.currentPage) { return; }
    this.currentPage = page;
    currentPageEl.textContent = page;
    progressFill.style.width = (page / totalPages * 100) + '%';
    if (!this.sliderActive) {
      pageSlider.value = page;
      sliderLabel.textContent = 'Page ' + page + ' of ' + totalPages;
    }
    var ch = this.chapterForPage(page);
    chapterIndicator.textContent = ch ? ch.name : '';
    try { localStorage.setItem(storageKey, String(page)); } catch (e) {}
  };

  VirtualScrollManager.prototype.goToPage = function (page) {
    page = Math.max(1, Math.min(totalPages, page));
    window.scrollTo(0, spacer.offsetTop + this.offsets[page - 1]);
    this.setCurrentPage(page);
  };

  VirtualScrollManager.prototype.toggleChrome = function () {
    this.chromeVisible = !this.chromeVisible;
    topNav.classList.toggle('hidden', !this.chromeVisible);
    sliderBar.classList.toggle('hidden', !this.chromeVisible);
  };

  var manager = new VirtualScrollManager();
  manager.update();

  var ticking = false;
  window.addEventListener('scroll', function () {
    if (!ticking) {
      ticking = true;
      requestAnimationFrame(function () {
        manager.update();
        ticking = false;
      });
    }
  }, { passive: true });
  window.addEventListener('resize', function () { manager.update(); });

  document.querySelector('.reader-container').addEventListener('click', function (e) {
    var x = e.clientX / window.innerWidth;
    if (x < 0.3) {
      manager.goToPage(manager.currentPage - 1);
    } else if (x > 0.7) {
      manager.goToPage(manager.currentPage + 1);
    } else {
      manager.toggleChrome();
    }
  });

  document.addEventListener('keydown', function (e) {
    switch (e.key) {
    case 'ArrowLeft':
    case 'ArrowUp':
      e.preventDefault();
      manager.goToPage(manager.currentPage - 1);
      break;
    case 'ArrowRight':
    case 'ArrowDown':
    case ' ':
      e.preventDefault();
      manager.goToPage(manager.currentPage + 1);
      break;
    case 'Home':
      manager.goToPage(1);
      break;
    case 'End':
      manager.goToPage(totalPages);
      break;
    }
  });

  pageSlider.addEventListener('input', function () {
    manager.sliderActive = true;
    sliderLabel.textContent = 'Page ' + pageSlider.value + ' of ' + totalPages;
  });
  pageSlider.addEventListener('change', function () {
    manager.sliderActive = false;
    manager.goToPage(parseInt(pageSlider.value, 10));
  });

  var themeKey = 'reader:theme';
  document.getElementById('themeBtn').addEventListener('click', function (e) {
    e.stopPropagation();
    var light = !document.body.classList.contains('light');
    document.body.classList.toggle('light', light);
    try { localStorage.setItem(themeKey, light ? 'light' : 'dark'); } catch (err) {}
  });

  try {
    document.body.classList.toggle('light', localStorage.getItem(themeKey) === 'light');
    var saved = parseInt(localStorage.getItem(storageKey), 10);
    if (saved > 1 && saved <= totalPages) {
      window.addEventListener('load', function () { manager.goToPage(saved); });
    }
  } catch (e) {}
})();
</script>
</body>
</html>
`))
