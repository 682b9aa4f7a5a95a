package internal

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Sink receives the final HTML artifact. CompileFile, watch mode, and
// tests share one write path through it.
type Sink interface {
	// Write stores the artifact under name.
	Write(name string, data []byte) error
}

// DirSink writes artifacts into a directory on disk.
type DirSink struct {
	Dir string
}

// NewDirSink creates a sink rooted at dir. An empty dir means the current
// working directory.
func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

// Write creates the directory if needed and writes the file.
func (s *DirSink) Write(name string, data []byte) error {
	dir := s.Dir
	if dir != "" {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return err
		}
	}
	return os.WriteFile(filepath.Join(dir, name), data, FilePermissions)
}

// MemorySink keeps artifacts in memory, for callers that want a compile
// artifact without touching the filesystem.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// Write stores the artifact under name.
func (s *MemorySink) Write(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.files[name] = stored
	return nil
}

// Get returns the stored artifact and whether it exists.
func (s *MemorySink) Get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[name]
	return data, ok
}

// Names returns the stored artifact names, sorted.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
