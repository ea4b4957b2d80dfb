package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long a file must stay unchanged before a change is
// reported. PDF writers emit many write events per file.
const DefaultSettle = 500 * time.Millisecond

// ChangeType describes what happened to a watched file.
type ChangeType int

const (
	// ChangeUpdated covers created and modified files.
	ChangeUpdated ChangeType = iota
	// ChangeRemoved covers deleted and renamed-away files.
	ChangeRemoved
)

func (c ChangeType) String() string {
	if c == ChangeRemoved {
		return "removed"
	}
	return "updated"
}

// Change is a settled change to a radar PDF.
type Change struct {
	Path string
	Type ChangeType
}

// Watch reports changes to matching PDFs in the root folder until ctx is
// cancelled. The returned channel is closed when watching stops.
func (s *Source) Watch(ctx context.Context, settle time.Duration) (<-chan Change, error) {
	if err := s.Validate(ctx); err != nil {
		return nil, err
	}
	if settle <= 0 {
		settle = DefaultSettle
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", s.root, err)
	}

	changes := make(chan Change)
	go s.watchLoop(ctx, watcher, settle, changes)
	return changes, nil
}

func (s *Source) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, settle time.Duration, out chan<- Change) {
	defer close(out)
	defer watcher.Close()

	type pendingChange struct {
		kind ChangeType
		seen time.Time
	}
	pending := make(map[string]pendingChange)

	ticker := time.NewTicker(settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if change, ok := s.handleFsEvent(event); ok {
				pending[change.Path] = pendingChange{kind: change.Type, seen: time.Now()}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("Watcher error: %v", err)

		case now := <-ticker.C:
			for path, p := range pending {
				if now.Sub(p.seen) < settle {
					continue
				}
				delete(pending, path)
				select {
				case out <- Change{Path: path, Type: p.kind}:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// handleFsEvent maps a raw event to a change, dropping events for files
// that are hidden, not PDFs or outside the filename pattern.
func (s *Source) handleFsEvent(event fsnotify.Event) (Change, bool) {
	if isHidden(filepath.Base(event.Name)) {
		return Change{}, false
	}
	if err := s.Match(event.Name); err != nil {
		return Change{}, false
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return Change{Path: event.Name, Type: ChangeRemoved}, true
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return Change{Path: event.Name, Type: ChangeUpdated}, true
	default:
		return Change{}, false
	}
}
