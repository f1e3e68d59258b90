package usecase

import (
	"sync"
	"time"

	"freelance-directory/internal/repository"

	"github.com/google/uuid"
)

type Clock func() time.Time

type IDGenerator func() string

// Directory is the freelancer directory: the query and mutation engines over
// one Store, plus the lock that makes each logical operation atomic.
//
// Engine methods do not lock. Concurrent callers wrap a whole operation,
// including every nested relation lookup, in View or Update.
type Directory struct {
	*DirectoryQuery
	*DirectoryMutation

	mu    sync.RWMutex
	store *repository.Store
}

type Option func(*directoryOptions)

type directoryOptions struct {
	now    Clock
	newID  IDGenerator
	events EventPublisher
}

func WithClock(c Clock) Option {
	return func(o *directoryOptions) {
		if c != nil {
			o.now = c
		}
	}
}

func WithIDGenerator(g IDGenerator) Option {
	return func(o *directoryOptions) {
		if g != nil {
			o.newID = g
		}
	}
}

func WithEventPublisher(p EventPublisher) Option {
	return func(o *directoryOptions) {
		o.events = p
	}
}

func NewDirectory(store *repository.Store, opts ...Option) *Directory {
	o := directoryOptions{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if store == nil {
		store = repository.NewStore()
	}

	return &Directory{
		DirectoryQuery:    NewDirectoryQuery(store, store, store, store),
		DirectoryMutation: NewDirectoryMutation(store, store, store, store, o.now, o.newID, o.events),
		store:             store,
	}
}

// View runs fn under the shared read lock.
func (d *Directory) View(fn func() error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return fn()
}

// Update runs fn under the exclusive write lock.
func (d *Directory) Update(fn func() error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn()
}

func (d *Directory) Stats() repository.Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store.Stats()
}
