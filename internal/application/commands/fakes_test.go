package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"pagesync/internal/domain"
)

// fakeService is an in-memory ports.PageService. Created pages become
// visible to later ListChildren calls.
type fakeService struct {
	mu        sync.Mutex
	children  map[string][]domain.ChildPage
	listErr   map[string]error
	createErr map[string]error // keyed by parentID + "/" + title
	lists     int
	creates   int
	bodies    map[string]string
}

func newFakeService() *fakeService {
	return &fakeService{
		children:  make(map[string][]domain.ChildPage),
		listErr:   make(map[string]error),
		createErr: make(map[string]error),
		bodies:    make(map[string]string),
	}
}

func (f *fakeService) ListChildren(_ context.Context, parentID string) ([]domain.ChildPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if err := f.listErr[parentID]; err != nil {
		return nil, err
	}
	out := make([]domain.ChildPage, len(f.children[parentID]))
	copy(out, f.children[parentID])
	return out, nil
}

func (f *fakeService) CreateChildPage(_ context.Context, parentID, title, body string) (*domain.ChildPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	key := parentID + "/" + title
	if err := f.createErr[key]; err != nil {
		return nil, err
	}
	page := domain.ChildPage{
		ID:    fmt.Sprintf("page-%d", f.creates),
		Title: title,
		URL:   "https://example.test/" + key,
	}
	f.children[parentID] = append(f.children[parentID], page)
	f.bodies[key] = body
	return &page, nil
}

func (f *fakeService) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists + f.creates
}

// fakeReader serves source files from a map
type fakeReader map[string]string

func (r fakeReader) ReadSource(path string) (string, error) {
	text, ok := r[path]
	if !ok {
		return "", fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return text, nil
}

// countingPacer counts Wait calls
type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait(context.Context) {
	p.waits++
}

// fakeLedger stores runs in memory
type fakeLedger struct {
	runs []*domain.RunRecord
	err  error
}

func (l *fakeLedger) Open(string) error { return nil }
func (l *fakeLedger) Close() error      { return nil }

func (l *fakeLedger) RecordRun(_ context.Context, run *domain.RunRecord) error {
	if l.err != nil {
		return l.err
	}
	l.runs = append(l.runs, run)
	return nil
}

func (l *fakeLedger) ListRuns(_ context.Context, limit int) ([]domain.RunRecord, error) {
	if l.err != nil {
		return nil, l.err
	}
	var out []domain.RunRecord
	for i := len(l.runs) - 1; i >= 0 && len(out) < limit; i-- {
		r := *l.runs[i]
		r.Outcomes = nil
		out = append(out, r)
	}
	return out, nil
}

func (l *fakeLedger) GetRun(_ context.Context, id string) (*domain.RunRecord, error) {
	if l.err != nil {
		return nil, l.err
	}
	for _, r := range l.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

var errBoom = errors.New("boom")

func testParents(n int) []domain.ParentPageRef {
	parents := make([]domain.ParentPageRef, n)
	for i := range parents {
		parents[i] = domain.ParentPageRef{
			ID:   fmt.Sprintf("3132484b-84ae-81b8-a2cb-%012d", i+1),
			Name: fmt.Sprintf("TASK_%d", i+1),
		}
	}
	return parents
}

func testFiles() []domain.SourceFile {
	return []domain.SourceFile{
		{Title: "model_a.txt", Path: "model_a.txt"},
		{Title: "model_b.txt", Path: "model_b.txt"},
	}
}

func testReader() fakeReader {
	return fakeReader{"model_a.txt": "A", "model_b.txt": "B"}
}
