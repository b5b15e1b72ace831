// Command thumbnailer backfills missing thumbnails for stored menu photos
// and keeps watching the upload directory for new ones. The server generates
// thumbnails inline on upload; this tool covers images dropped into the
// directory by other means and retries earlier failures.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"bistro/pkg/images"

	"github.com/fsnotify/fsnotify"
)

func main() {
	var (
		dir     string
		watch   bool
		workers int
	)
	base := os.Getenv("UPLOAD_BASE")
	if base == "" {
		base = "uploads"
	}
	flag.StringVar(&dir, "dir", filepath.Join(base, "menu"), "directory with stored menu images")
	flag.BoolVar(&watch, "watch", true, "keep watching after the initial scan")
	flag.IntVar(&workers, "workers", 4, "concurrent thumbnail workers")
	flag.Parse()

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("mkdir %s: %v", dir, err)
	}

	fileCh := make(chan string, 256)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				process(dir, name)
			}
		}()
	}

	initial := listImageFiles(dir)
	log.Printf("scanning %s: %d candidate files", dir, len(initial))

	if !watch {
		for _, name := range initial {
			fileCh <- name
		}
		close(fileCh)
		wg.Wait()
		return
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("watcher: %v", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		log.Fatalf("watch %s: %v", dir, err)
	}
	log.Printf("Watching %s (debounced) ...", dir)

	go func() {
		for _, name := range initial {
			fileCh <- name
		}
	}()

	// debounce create events so partially written files settle first
	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				close(fileCh)
				wg.Wait()
				return
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				name := filepath.Base(ev.Name)
				if !candidate(name) {
					continue
				}
				pending[name] = time.Now()
			}
		case <-ticker.C:
			now := time.Now()
			for name, t := range pending {
				if now.Sub(t) > 300*time.Millisecond { // stable
					fileCh <- name
					delete(pending, name)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				close(fileCh)
				wg.Wait()
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func candidate(name string) bool {
	if images.IsThumb(name) {
		return false
	}
	return images.SupportedExt(filepath.Ext(name))
}

func listImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !candidate(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func process(dir, name string) {
	src := filepath.Join(dir, name)
	thumb := images.ThumbPath(src)
	if _, err := os.Stat(thumb); err == nil {
		return // already done
	}
	if _, err := images.Thumbnail(src); err != nil {
		log.Printf("ERROR thumbnail %s: %v", name, err)
		return
	}
	log.Printf("THUMB %s", name)
}
