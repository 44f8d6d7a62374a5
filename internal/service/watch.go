package service

import (
	"sync"
	"time"
)

// watchGrace keeps the last snapshot warm after the final watcher
// detaches so a quick resubscribe gets data without re-running the
// aggregation pipeline.
const watchGrace = 3 * time.Second

// Hub fans out change notifications to order watchers and caches the
// most recent unfiltered snapshot. Mutating services call Notify after
// every successful write.
type Hub struct {
	mu        sync.Mutex
	nextID    int
	subs      map[int]chan struct{}
	snapshot  []OrderView
	hasSnap   bool
	gen       uint64
	expiresAt time.Time
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan struct{})}
}

// Notify invalidates the cached snapshot and wakes every watcher. The
// wake is non-blocking: a watcher that is already behind has a pending
// wake and will re-query anyway. Bumping the generation also voids any
// read that started before this mutation but has not stored yet.
func (h *Hub) Notify() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.hasSnap = false
	h.gen++
	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// generation tags a read about to start; store refuses the result if a
// mutation moved the generation in the meantime.
func (h *Hub) generation() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.gen
}

func (h *Hub) subscribe() (int, chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan struct{}, 1)
	h.subs[id] = ch
	return id, ch
}

func (h *Hub) unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs, id)
	if len(h.subs) == 0 {
		h.expiresAt = time.Now().Add(watchGrace)
	}
}

func (h *Hub) cached() ([]OrderView, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.hasSnap {
		return nil, false
	}
	if len(h.subs) == 0 && time.Now().After(h.expiresAt) {
		h.hasSnap = false
		return nil, false
	}
	return h.snapshot, true
}

// store caches a snapshot read under the given generation. A stale
// generation means a mutation landed mid-read; the result may predate
// it, so it must not re-validate the cache.
func (h *Hub) store(views []OrderView, gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if gen != h.gen {
		return
	}
	h.snapshot = views
	h.hasSnap = true
}
