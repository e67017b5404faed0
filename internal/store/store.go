// SPDX-License-Identifier: MIT

// Package store persists the video collection as a single JSON file.
//
// The backing file is one flat object with no partial-update capability,
// so all mutations are funnelled through a single-writer queue: callers
// submit whole unit-of-work closures and the executor applies them one
// at a time in submission order. Reads go straight to the file and may
// observe the pre-image of an in-flight write, never a torn one, because
// persistence is an atomic replace (temp file, fsync, rename).
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/soraprompt/gallery/internal/catalog"
	"github.com/soraprompt/gallery/internal/log"
	"github.com/soraprompt/gallery/internal/metrics"
)

// ErrCorrupt reports a data file that exists but does not hold a valid
// collection document. A missing file is not corrupt; it is the cold
// start case and reads as an empty collection.
var ErrCorrupt = errors.New("corrupt store file")

// ErrClosed reports an operation submitted after Close.
var ErrClosed = errors.New("store is closed")

// queueCapacity bounds how many operations may wait behind the
// in-flight one before submitters block on enqueue.
const queueCapacity = 64

type op struct {
	fn    func(*catalog.Collection) error
	reply chan error
}

// Store owns the persisted collection. All mutations run on its
// executor goroutine; see Update.
type Store struct {
	path   string
	logger zerolog.Logger

	ops  chan op
	done chan struct{}

	closeOnce sync.Once
}

// Open prepares the data file's directory and starts the executor.
// The file itself is created lazily on the first successful Update.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Store{
		path:   path,
		logger: log.WithComponent("store"),
		ops:    make(chan op, queueCapacity),
		done:   make(chan struct{}),
	}
	go s.run()
	return s, nil
}

// Close stops the executor after draining already queued operations.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.ops)
		<-s.done
	})
}

// Load reads the current collection. A missing file yields an empty
// collection; malformed content yields ErrCorrupt.
func (s *Store) Load(ctx context.Context) (catalog.Collection, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Collection{}, err
	}
	return readCollection(s.path)
}

// Update submits fn to the single-writer queue and waits for the
// outcome. The executor loads the collection, applies fn and, if fn
// succeeds, persists the result atomically. An error from fn aborts the
// operation with nothing written.
//
// ctx only guards the enqueue: once accepted, the operation runs to
// completion even if the caller goes away, so a half-applied mutation
// can never be abandoned mid-write. There is no queue timeout; a stuck
// write blocks every later one. Watch gallery_store_queue_depth.
func (s *Store) Update(ctx context.Context, fn func(*catalog.Collection) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			// Submitting on a closed channel means Close won the race.
			err = ErrClosed
		}
	}()

	o := op{fn: fn, reply: make(chan error, 1)}
	select {
	case s.ops <- o:
		metrics.StoreQueueDepth.Inc()
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return ErrClosed
	}

	return <-o.reply
}

func (s *Store) run() {
	defer close(s.done)
	for o := range s.ops {
		start := time.Now()
		err := s.apply(o.fn)
		metrics.StoreQueueDepth.Dec()
		metrics.StoreWriteDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.StoreOpsTotal.WithLabelValues("error").Inc()
			s.logger.Error().Err(err).
				Str(log.FieldEvent, "store.op_failed").
				Dur("elapsed", time.Since(start)).
				Int(log.FieldQueueDepth, len(s.ops)).
				Msg("store operation failed")
		} else {
			metrics.StoreOpsTotal.WithLabelValues("ok").Inc()
		}
		o.reply <- err
	}
}

func (s *Store) apply(fn func(*catalog.Collection) error) error {
	coll, err := readCollection(s.path)
	if err != nil {
		return err
	}

	if err := fn(&coll); err != nil {
		// Business-rule rejection: nothing was written.
		return err
	}

	if err := writeCollection(s.path, coll); err != nil {
		return fmt.Errorf("persist collection: %w", err)
	}
	metrics.VideosTotal.Set(float64(len(coll.Videos)))
	return nil
}

func readCollection(path string) (catalog.Collection, error) {
	// #nosec G304 -- the data file path comes from validated configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog.Collection{}, nil
		}
		return catalog.Collection{}, fmt.Errorf("read data file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var coll catalog.Collection
	if err := dec.Decode(&coll); err != nil {
		return catalog.Collection{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	// Reject trailing content after the collection document.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return catalog.Collection{}, fmt.Errorf("%w: trailing content after collection", ErrCorrupt)
	}
	return coll, nil
}

func writeCollection(path string, coll catalog.Collection) error {
	data, err := json.MarshalIndent(coll, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending data file: %w", err)
	}
	defer func() {
		// renameio removes the temp file if not committed.
		_ = pending.Cleanup()
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic).
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace data file: %w", err)
	}
	return nil
}
