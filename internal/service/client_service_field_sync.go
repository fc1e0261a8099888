// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/adapter"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/models"
)

// DefaultDebounceInterval is used when the configuration leaves it unset.
const DefaultDebounceInterval = 800 * time.Millisecond

// ErrUnconfirmedRevision marks a field whose last local edit never reached
// the server, typically because an earlier process exited offline.
var ErrUnconfirmedRevision = errors.New("local edit not confirmed by server")

// LocalFieldKey is the local store key of one user's field.
func LocalFieldKey(userID int64, fieldIdentifier string) string {
	return localUserPrefix(userID) + fieldIdentifier
}

func localUserPrefix(userID int64) string {
	return strconv.FormatInt(userID, 10) + ":"
}

type localFieldBlob struct {
	Content   string               `json:"content"`
	Category  models.FieldCategory `json:"category"`
	Pending   bool                 `json:"pending"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// FieldSync is the engine of a single field. Reads come from the local
// store first; writes go to the local store synchronously and to the server
// after a quiet period.
//
// At most one upsert is in flight. Acknowledgements for a revision older
// than the current one are dropped.
type FieldSync struct {
	userID          int64
	fieldIdentifier string
	category        models.FieldCategory
	key             string

	local    store.LocalFieldRepository
	remote   FieldRemote
	debounce time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu         sync.Mutex
	loaded     bool
	closed     bool
	discarded  bool
	content    string
	status     models.SyncStatus
	revision   uint64
	acked      uint64
	lastErr    error
	timer      *time.Timer
	inFlight   bool
	flightDone chan struct{}

	// carried is the revision restored from a pending blob of an earlier
	// process. It is pushed only by the next edit or Refresh.
	carried uint64
}

func newFieldSync(userID int64, fieldIdentifier string, category models.FieldCategory, local store.LocalFieldRepository, remote FieldRemote, debounce time.Duration, logger *logger.Logger) *FieldSync {
	return &FieldSync{
		userID:          userID,
		fieldIdentifier: fieldIdentifier,
		category:        category,
		key:             LocalFieldKey(userID, fieldIdentifier),
		local:           local,
		remote:          remote,
		debounce:        debounce,
		now:             time.Now,
		logger:          logger,
		status:          models.SyncStatusSynced,
	}
}

// State returns a snapshot of the engine.
func (f *FieldSync) State() models.FieldState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateLocked()
}

func (f *FieldSync) stateLocked() models.FieldState {
	return models.FieldState{
		FieldIdentifier: f.fieldIdentifier,
		Category:        f.category,
		Content:         f.content,
		Status:          f.status,
		Revision:        f.revision,
		AckedRevision:   f.acked,
		LastError:       f.lastErr,
	}
}

// Load returns the local value, else the server value (cached locally), else
// def. Server failures are not returned; they show up in the status.
func (f *FieldSync) Load(ctx context.Context, def string) (string, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	if f.loaded || f.revision > 0 {
		content := f.content
		f.mu.Unlock()
		return content, nil
	}
	f.mu.Unlock()

	raw, err := f.local.Get(ctx, f.key)
	switch {
	case err == nil:
		var blob localFieldBlob
		if jsonErr := json.Unmarshal([]byte(raw), &blob); jsonErr != nil {
			log.Warn().Err(jsonErr).Str("func", "FieldSync.Load").Str("key", f.key).Msg("malformed local blob, ignoring it")
			break
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		if f.revision > 0 {
			return f.content, nil
		}
		f.loaded = true
		f.content = blob.Content
		if blob.Pending {
			f.revision = f.acked + 1
			f.carried = f.revision
			f.status = models.SyncStatusError
			f.lastErr = ErrUnconfirmedRevision
		}
		return f.content, nil

	case errors.Is(err, store.ErrLocalValueNotFound):
	default:
		return def, fmt.Errorf("reading local field: %w", err)
	}

	record, err := f.remote.GetField(ctx, f.fieldIdentifier)

	f.mu.Lock()
	defer f.mu.Unlock()

	// an edit made while the server was asked wins
	if f.revision > 0 {
		return f.content, nil
	}
	f.loaded = true

	switch {
	case err == nil:
		f.content = record.Content
		f.status = models.SyncStatusSynced
		f.lastErr = nil
		if setErr := f.writeLocalLocked(ctx, false); setErr != nil {
			log.Warn().Err(setErr).Str("func", "FieldSync.Load").Str("key", f.key).Msg("caching server value failed")
		}
		return f.content, nil
	case errors.Is(err, adapter.ErrNotFound):
		f.content = def
		f.status = models.SyncStatusSynced
		f.lastErr = nil
	default:
		f.content = def
		f.setFailureLocked(err, isUnreachable(err))
		log.Info().Err(err).Str("func", "FieldSync.Load").Str("field_identifier", f.fieldIdentifier).Msg("server value unavailable, using default")
	}

	return def, nil
}

// SetValue stores content locally right away and schedules the upload.
func (f *FieldSync) SetValue(ctx context.Context, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrEngineClosed
	}

	f.revision++
	f.loaded = true
	f.content = content
	if err := f.writeLocalLocked(ctx, true); err != nil {
		return fmt.Errorf("writing local field: %w", err)
	}

	f.armLocked()
	return nil
}

// Flush pushes the pending revision now and waits for the outcome.
func (f *FieldSync) Flush(ctx context.Context) error {
	return f.flush(ctx, true)
}

// Refresh retries an unconfirmed revision, or adopts the server value when
// nothing local is pending.
func (f *FieldSync) Refresh(ctx context.Context) error {
	f.mu.Lock()
	pending := f.revision > f.acked
	startRev := f.revision
	f.mu.Unlock()

	if pending {
		return f.Flush(ctx)
	}

	record, err := f.remote.GetField(ctx, f.fieldIdentifier)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.revision != startRev {
		return nil
	}

	switch {
	case err == nil:
		f.loaded = true
		f.content = record.Content
		f.status = models.SyncStatusSynced
		f.lastErr = nil
		return f.writeLocalLocked(ctx, false)
	case errors.Is(err, adapter.ErrNotFound):
		f.status = models.SyncStatusSynced
		f.lastErr = nil
		return nil
	default:
		f.setFailureLocked(err, isUnreachable(err))
		return err
	}
}

// Close stops the timer and pushes a pending revision synchronously.
func (f *FieldSync) Close(ctx context.Context) error {
	f.mu.Lock()
	f.closed = true
	f.stopTimerLocked()
	carriedOnly := f.carried > 0 && f.revision == f.carried
	f.mu.Unlock()

	if carriedOnly {
		return nil
	}
	return f.Flush(ctx)
}

// settle stops the debounce timer and waits until no upload is in flight.
// Pending edits stay pending; resume re-arms them.
func (f *FieldSync) settle(ctx context.Context) error {
	for {
		f.mu.Lock()
		f.stopTimerLocked()
		if !f.inFlight {
			f.mu.Unlock()
			return nil
		}
		done := f.flightDone
		f.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// resume re-arms the timer for an edit that settle held back.
func (f *FieldSync) resume() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed && f.revision > f.acked && f.revision != f.carried {
		f.armLocked()
	}
}

// discard drops the engine after its rows were cleared on the server. A
// flight still running afterwards neither writes locally nor changes state.
func (f *FieldSync) discard() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.discarded = true
	f.stopTimerLocked()
	f.acked = f.revision
	f.content = ""
	f.status = models.SyncStatusSynced
	f.lastErr = nil
}

func (f *FieldSync) armLocked() {
	f.stopTimerLocked()
	f.timer = time.AfterFunc(f.debounce, func() {
		ctx := f.logger.WithContext(context.Background())
		_ = f.flush(ctx, false)
	})
}

func (f *FieldSync) stopTimerLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// flush runs flights until the newest revision was attempted. With wait
// unset it leaves an already running flight to pick up newer revisions.
func (f *FieldSync) flush(ctx context.Context, wait bool) error {
	for {
		f.mu.Lock()
		if f.inFlight {
			done := f.flightDone
			f.mu.Unlock()
			if !wait {
				return nil
			}
			select {
			case <-done:
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if f.discarded || f.revision <= f.acked {
			f.mu.Unlock()
			return nil
		}

		f.stopTimerLocked()
		rev := f.revision
		upsert := models.FieldUpsert{
			UserID:          f.userID,
			FieldIdentifier: f.fieldIdentifier,
			Category:        f.category,
			Content:         f.content,
		}
		f.inFlight = true
		f.flightDone = make(chan struct{})
		f.status = models.SyncStatusSyncing
		f.mu.Unlock()

		offline, err := f.push(ctx, upsert)

		f.mu.Lock()
		f.inFlight = false
		close(f.flightDone)

		if f.discarded {
			f.mu.Unlock()
			return ErrEngineClosed
		}

		if rev != f.revision {
			// stale acknowledgement; the newer revision goes out next
			f.mu.Unlock()
			continue
		}

		if err != nil {
			f.setFailureLocked(err, offline)
			f.mu.Unlock()
			logger.FromContext(ctx).Info().Err(err).
				Str("func", "FieldSync.flush").
				Str("field_identifier", upsert.FieldIdentifier).
				Uint64("revision", rev).
				Bool("offline", offline).
				Msg("field upload failed")
			return err
		}

		f.acked = rev
		f.status = models.SyncStatusSynced
		f.lastErr = nil
		if setErr := f.writeLocalLocked(ctx, false); setErr != nil {
			logger.FromContext(ctx).Warn().Err(setErr).Str("func", "FieldSync.flush").Str("key", f.key).Msg("clearing pending mark failed")
		}
		f.mu.Unlock()
		return nil
	}
}

// push checks connectivity and upserts. offline reports whether the server
// could not be reached.
func (f *FieldSync) push(ctx context.Context, upsert models.FieldUpsert) (offline bool, err error) {
	if err = f.remote.Ping(ctx); err != nil {
		return true, err
	}
	if _, err = f.remote.UpsertField(ctx, upsert); err != nil {
		return isUnreachable(err), err
	}
	return false, nil
}

func (f *FieldSync) setFailureLocked(err error, offline bool) {
	f.lastErr = err
	if offline {
		f.status = models.SyncStatusOffline
	} else {
		f.status = models.SyncStatusError
	}
}

func (f *FieldSync) writeLocalLocked(ctx context.Context, pending bool) error {
	blob, err := json.Marshal(localFieldBlob{
		Content:   f.content,
		Category:  f.category,
		Pending:   pending,
		UpdatedAt: f.now().UTC(),
	})
	if err != nil {
		return err
	}
	return f.local.Set(ctx, f.key, string(blob))
}

func isUnreachable(err error) bool {
	return errors.Is(err, adapter.ErrServerUnreachable)
}
