package command

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/internal/service/ui"
)

type fakeStore struct {
	mu      sync.Mutex
	records map[string]map[string]core.Record
	reads   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]map[string]core.Record{}}
}

func (s *fakeStore) put(collection, id string, rec core.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records[collection] == nil {
		s.records[collection] = map[string]core.Record{}
	}
	s.records[collection][id] = rec
}

func (s *fakeStore) List(ctx context.Context, collection string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.records[collection]))
	for id := range s.records[collection] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *fakeStore) Read(ctx context.Context, collection, id string) (core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	rec, ok := s.records[collection][id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return maps.Clone(rec), nil
}

func (s *fakeStore) readCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

type fakeArchive struct {
	names []string
	files map[string]string
}

func (a *fakeArchive) List(ctx context.Context, includeCompressed bool) ([]string, error) {
	return a.names, nil
}

func (a *fakeArchive) Decompress(ctx context.Context, name string) (string, error) {
	data, ok := a.files[name]
	if !ok {
		return "", core.ErrNotFound
	}
	return data, nil
}

type fakeMetrics struct {
	stats core.Stats
}

func (m fakeMetrics) Stats() core.Stats {
	return m.stats
}

type harness struct {
	router  *Router
	out     *bytes.Buffer
	store   *fakeStore
	archive *fakeArchive
	exits   []int
}

func newHarness(t interface{ Fatalf(string, ...any) }) *harness {
	h := &harness{
		out:     &bytes.Buffer{},
		store:   newFakeStore(),
		archive: &fakeArchive{files: map[string]string{}},
	}
	console := ui.NewConsole(h.out, ui.WithWidth(func() int { return 40 }))

	router, err := New(Deps{
		Console: console,
		Store:   h.store,
		Archive: h.archive,
		Metrics: fakeMetrics{},
		Exit:    func(code int) { h.exits = append(h.exits, code) },
	})
	if err != nil {
		t.Fatalf("router init: %v", err)
	}
	h.router = router
	return h
}

// run dispatches line and waits for every background lookup it started.
func (h *harness) run(line string) string {
	h.out.Reset()
	h.router.ProcessInput(context.Background(), line)
	h.router.Wait()
	return h.out.String()
}
