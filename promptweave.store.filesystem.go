package promptweave

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FilesystemStore stores templates as document files on disk.
// Each template owns a directory; versions are separate files:
//
//	<root>/
//	  <template-name>/
//	    v1.pw.md
//	    v2.pw.md
//
// With a watch handler configured, the store runs an fsnotify watcher and
// reports the template name whenever a version file changes on disk, so
// callers can invalidate caches (see CachedStore.Invalidate) or hot-reload.
type FilesystemStore struct {
	mu      sync.RWMutex
	root    string
	watcher *fsnotify.Watcher
	onWatch func(name string)
	logger  *zap.Logger
	closed  bool
}

// FilesystemOption configures a FilesystemStore.
type FilesystemOption func(*FilesystemStore)

// WithWatchHandler enables filesystem watching; handler receives the name of
// any template whose files change on disk.
func WithWatchHandler(handler func(name string)) FilesystemOption {
	return func(s *FilesystemStore) {
		s.onWatch = handler
	}
}

// WithStoreLogger sets the logger for watcher events.
func WithStoreLogger(logger *zap.Logger) FilesystemOption {
	return func(s *FilesystemStore) {
		s.logger = logger
	}
}

// NewFilesystemStore creates a filesystem-backed template store rooted at
// the given directory, creating it when missing.
func NewFilesystemStore(root string, opts ...FilesystemOption) (*FilesystemStore, error) {
	if root == "" {
		return nil, NewStoreError(ErrMsgInvalidStoreRoot, nil)
	}
	if err := os.MkdirAll(root, FilesystemDirPermissions); err != nil {
		return nil, NewStoreError(ErrMsgInvalidStoreRoot, err)
	}

	store := &FilesystemStore{root: root}
	for _, opt := range opts {
		opt(store)
	}
	if store.logger == nil {
		store.logger = zap.NewNop()
	}

	if store.onWatch != nil {
		if err := store.startWatcher(); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// Get retrieves the latest version of a template by name.
func (s *FilesystemStore) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateTemplateName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	versions, err := s.listVersions(name)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, NewTemplateNotFoundError(name)
	}
	return s.loadVersion(name, versions[len(versions)-1])
}

// GetVersion retrieves a specific version of a template.
func (s *FilesystemStore) GetVersion(ctx context.Context, name string, version int) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateTemplateName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	if _, err := os.Stat(s.versionPath(name, version)); err != nil {
		return nil, NewVersionNotFoundError(name, version)
	}
	return s.loadVersion(name, version)
}

// Save stores a template as the next version on disk.
func (s *FilesystemStore) Save(ctx context.Context, tmpl *StoredTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateTemplateName(tmpl.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	dir := filepath.Join(s.root, tmpl.Name)
	if err := os.MkdirAll(dir, FilesystemDirPermissions); err != nil {
		return NewStoreError(ErrMsgQueryFailed, err)
	}

	versions, err := s.listVersions(tmpl.Name)
	if err != nil {
		return err
	}
	next := 1
	if len(versions) > 0 {
		next = versions[len(versions)-1] + 1
	}

	tmpl.ID = newTemplateID()
	tmpl.Version = next
	now := time.Now()
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	path := s.versionPath(tmpl.Name, next)
	if err := os.WriteFile(path, []byte(tmpl.Source), FilesystemFilePermissions); err != nil {
		return NewStoreError(ErrMsgQueryFailed, err)
	}

	if s.watcher != nil {
		// Newly created template dirs need their own watch
		_ = s.watcher.Add(dir)
	}
	return nil
}

// Delete removes all versions of a template by name.
func (s *FilesystemStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateTemplateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	dir := filepath.Join(s.root, name)
	if _, err := os.Stat(dir); err != nil {
		return NewTemplateNotFoundError(name)
	}
	if err := os.RemoveAll(dir); err != nil {
		return NewStoreError(ErrMsgQueryFailed, err)
	}
	return nil
}

// List returns all template names in sorted order.
func (s *FilesystemStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, NewStoreError(ErrMsgStoreDirUnreadable, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Close stops the watcher and marks the store closed.
func (s *FilesystemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// startWatcher wires fsnotify over the root and existing template dirs.
func (s *FilesystemStore) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return NewStoreError(ErrMsgWatcherFailed, err)
	}
	if err := watcher.Add(s.root); err != nil {
		watcher.Close()
		return NewStoreError(ErrMsgWatcherFailed, err)
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		watcher.Close()
		return NewStoreError(ErrMsgStoreDirUnreadable, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if err := watcher.Add(filepath.Join(s.root, entry.Name())); err != nil {
				watcher.Close()
				return NewStoreError(ErrMsgWatcherFailed, err)
			}
		}
	}

	s.watcher = watcher
	go s.watchLoop()
	return nil
}

// watchLoop forwards change events to the configured handler.
func (s *FilesystemStore) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name := s.templateNameForPath(event.Name)
			if name == "" {
				continue
			}
			s.logger.Debug(LogMsgTemplateChanged, zap.String(MetaKeyTemplate, name))
			s.onWatch(name)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn(LogMsgWatcherError, zap.Error(err))
		}
	}
}

// templateNameForPath maps a changed path back to its template name.
func (s *FilesystemStore) templateNameForPath(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) == 0 || parts[0] == "." {
		return ""
	}
	return parts[0]
}

// listVersions returns a template's version numbers in ascending order.
func (s *FilesystemStore) listVersions(name string) ([]int, error) {
	dir := filepath.Join(s.root, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewStoreError(ErrMsgStoreDirUnreadable, err)
	}

	var versions []int
	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(fileName, "v") || !strings.HasSuffix(fileName, FilesystemTemplateExt) {
			continue
		}
		numStr := strings.TrimSuffix(strings.TrimPrefix(fileName, "v"), FilesystemTemplateExt)
		num, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}
		versions = append(versions, num)
	}
	sort.Ints(versions)
	return versions, nil
}

// loadVersion reads one version file into a StoredTemplate.
func (s *FilesystemStore) loadVersion(name string, version int) (*StoredTemplate, error) {
	path := s.versionPath(name, version)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewStoreError(ErrMsgQueryFailed, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, NewStoreError(ErrMsgQueryFailed, err)
	}

	return &StoredTemplate{
		ID:        TemplateID(fmt.Sprintf("%s%s-v%d", TemplateIDPrefix, name, version)),
		Name:      name,
		Source:    string(data),
		Version:   version,
		CreatedAt: info.ModTime(),
		UpdatedAt: info.ModTime(),
	}, nil
}

// versionPath builds the file path for one template version.
func (s *FilesystemStore) versionPath(name string, version int) string {
	return filepath.Join(s.root, name, "v"+strconv.Itoa(version)+FilesystemTemplateExt)
}

// Filesystem store log messages
const (
	LogMsgTemplateChanged = "template changed on disk"
	LogMsgWatcherError    = "filesystem watcher error"
)
