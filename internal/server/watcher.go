package server

import (
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces bursts of filesystem events into one reload.
const debounceDelay = 300 * time.Millisecond

// reloader watches the serve root and broadcasts a reload signal to every
// connected /events client when files change. Development builds only.
type reloader struct {
	watcher    *fsnotify.Watcher
	reloadChan chan struct{}
	quit       chan struct{}

	clientMu sync.Mutex
	clients  map[chan struct{}]struct{}

	wg sync.WaitGroup
}

func newReloader(dir string) (*reloader, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	r := &reloader{
		watcher:    watcher,
		reloadChan: make(chan struct{}, 1),
		quit:       make(chan struct{}),
		clients:    make(map[chan struct{}]struct{}),
	}

	r.wg.Add(1)
	go r.watch()
	go r.broadcast()

	return r, nil
}

func (r *reloader) watch() {
	defer r.wg.Done()

	// A pending debounce timer may still fire after shutdown; it sends into
	// the buffered reload channel, never a closed one.
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		close(r.quit)
	}()

	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Chmod != 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Reset(debounceDelay)
			} else {
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					select {
					case r.reloadChan <- struct{}{}:
					default:
					}
				})
			}

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func (r *reloader) broadcast() {
	for {
		select {
		case <-r.quit:
			return
		case <-r.reloadChan:
			r.clientMu.Lock()
			for clientChan := range r.clients {
				select {
				case clientChan <- struct{}{}:
				default:
				}
			}
			r.clientMu.Unlock()
		}
	}
}

func (r *reloader) subscribe() chan struct{} {
	clientChan := make(chan struct{}, 1)
	r.clientMu.Lock()
	r.clients[clientChan] = struct{}{}
	r.clientMu.Unlock()
	return clientChan
}

func (r *reloader) unsubscribe(clientChan chan struct{}) {
	r.clientMu.Lock()
	delete(r.clients, clientChan)
	r.clientMu.Unlock()
}

func (r *reloader) stop() {
	if err := r.watcher.Close(); err != nil {
		slog.Warn("Failed to close file watcher", "error", err)
	}
	r.wg.Wait()
}
