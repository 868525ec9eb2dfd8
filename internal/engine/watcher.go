package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"resumelens/internal/errors"
)

// VocabWatcher watches a vocabulary overlay file and reloads the auditor's
// tables when it changes. Events are debounced so editors that write in
// several steps trigger a single reload.
type VocabWatcher struct {
	mu sync.Mutex

	path        string
	auditor     *Auditor
	lastModTime time.Time

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	logger *errors.Logger

	running bool
}

// NewVocabWatcher creates a watcher that feeds reloaded vocabularies into the
// given auditor.
func NewVocabWatcher(path string, auditor *Auditor, debounceDelay time.Duration, logger *errors.Logger) *VocabWatcher {
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}
	return &VocabWatcher{
		path:          path,
		auditor:       auditor,
		debounceDelay: debounceDelay,
		stopChan:      make(chan struct{}),
		reloadChan:    make(chan struct{}, 1),
		logger:        logger,
	}
}

// Start begins watching the vocabulary file for changes.
func (vw *VocabWatcher) Start() error {
	vw.mu.Lock()
	defer vw.mu.Unlock()

	if vw.running {
		return fmt.Errorf("vocabulary watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	vw.fsWatcher = watcher

	if stat, err := os.Stat(vw.path); err == nil {
		vw.lastModTime = stat.ModTime()
	}

	// Watch the file and its directory; the directory catches atomic
	// writes done as rename.
	if err := vw.fsWatcher.Add(vw.path); err != nil && !os.IsNotExist(err) {
		vw.cleanupWatcher()
		return fmt.Errorf("failed to watch file %s: %w", vw.path, err)
	}
	if err := vw.fsWatcher.Add(filepath.Dir(vw.path)); err != nil {
		vw.cleanupWatcher()
		return fmt.Errorf("failed to watch directory %s: %w", filepath.Dir(vw.path), err)
	}

	vw.running = true
	go vw.watchLoop()

	if vw.logger != nil {
		vw.logger.Info("Vocabulary file watcher started",
			"file", vw.path,
			"debounce_delay", vw.debounceDelay)
	}
	return nil
}

// Stop stops the watcher.
func (vw *VocabWatcher) Stop() error {
	vw.mu.Lock()
	defer vw.mu.Unlock()

	if !vw.running {
		return nil
	}

	close(vw.stopChan)

	if vw.debounceTimer != nil {
		vw.debounceTimer.Stop()
	}

	if vw.fsWatcher != nil {
		if err := vw.fsWatcher.Close(); err != nil {
			if vw.logger != nil {
				vw.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	vw.running = false

	if vw.logger != nil {
		vw.logger.Info("Vocabulary file watcher stopped")
	}
	return nil
}

// IsRunning returns whether the watcher is currently running.
func (vw *VocabWatcher) IsRunning() bool {
	vw.mu.Lock()
	defer vw.mu.Unlock()
	return vw.running
}

func (vw *VocabWatcher) cleanupWatcher() {
	if vw.fsWatcher != nil {
		if closeErr := vw.fsWatcher.Close(); closeErr != nil && vw.logger != nil {
			vw.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
	}
}

func (vw *VocabWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-vw.fsWatcher.Events:
			if !ok {
				return
			}
			if vw.shouldProcessEvent(event) {
				vw.scheduleReload()
			}

		case err, ok := <-vw.fsWatcher.Errors:
			if !ok {
				return
			}
			if vw.logger != nil {
				vw.logger.LogError(err, "File watcher error")
			}

		case <-vw.reloadChan:
			if vw.hasFileChanged() {
				vw.reload()
			}

		case <-vw.stopChan:
			return
		}
	}
}

func (vw *VocabWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != vw.path && filepath.Base(event.Name) != filepath.Base(vw.path) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (vw *VocabWatcher) hasFileChanged() bool {
	stat, err := os.Stat(vw.path)
	if err != nil {
		return false
	}
	vw.mu.Lock()
	defer vw.mu.Unlock()
	if stat.ModTime().After(vw.lastModTime) {
		vw.lastModTime = stat.ModTime()
		return true
	}
	return false
}

func (vw *VocabWatcher) reload() {
	vocab, err := LoadVocabulary(vw.path)
	if err != nil {
		// Keep serving the previous tables on a broken overlay.
		if vw.logger != nil {
			vw.logger.LogError(err, "Failed to reload vocabulary, keeping current tables", "file", vw.path)
		}
		return
	}
	vw.auditor.SetVocabulary(vocab)
	if vw.logger != nil {
		vw.logger.Info("Vocabulary reloaded", "file", vw.path)
	}
}

func (vw *VocabWatcher) scheduleReload() {
	vw.mu.Lock()
	defer vw.mu.Unlock()

	if vw.debounceTimer != nil {
		vw.debounceTimer.Stop()
	}

	vw.debounceTimer = time.AfterFunc(vw.debounceDelay, func() {
		select {
		case vw.reloadChan <- struct{}{}:
		default:
		}
	})
}
