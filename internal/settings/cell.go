// Package settings wraps the store's single settings row in an
// observable value cell. Writers go through Save, which persists and
// then publishes; subscribers receive the latest value immediately and
// every later update until they cancel.
package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/store"
)

// Cell is the process-wide settings value cell. Construct one per
// store with NewCell and share it by reference.
type Cell struct {
	store store.Store

	mu      sync.Mutex
	current model.Settings
	loaded  bool
	subs    map[int]chan model.Settings
	nextSub int
}

// NewCell creates a cell backed by the given store. The row is read
// lazily on first access.
func NewCell(s store.Store) *Cell {
	return &Cell{
		store: s,
		subs:  make(map[int]chan model.Settings),
	}
}

// Get returns the current settings, reading the store on first call.
// Absence of a saved row reads as defaults.
func (c *Cell) Get(ctx context.Context) (model.Settings, error) {
	c.mu.Lock()
	if c.loaded {
		s := c.current
		c.mu.Unlock()
		return s, nil
	}
	c.mu.Unlock()

	s, err := c.store.GetSettings(ctx)
	if err != nil {
		return model.Settings{}, fmt.Errorf("loading settings: %w", err)
	}

	c.mu.Lock()
	if !c.loaded {
		c.current = s
		c.loaded = true
	}
	s = c.current
	c.mu.Unlock()
	return s, nil
}

// Save persists the full record (replace on conflict) and publishes it
// to all subscribers. The store write happens first: a failed save
// publishes nothing.
func (c *Cell) Save(ctx context.Context, s model.Settings) error {
	if err := c.store.SaveSettings(ctx, s); err != nil {
		return err
	}
	s.ID = model.SettingsRowID

	c.mu.Lock()
	c.current = s
	c.loaded = true
	for _, ch := range c.subs {
		// Each subscriber channel holds only the most recent value;
		// a slow consumer sees the latest state, not a backlog.
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
	c.mu.Unlock()
	return nil
}

// Subscribe registers a new observer. The returned channel immediately
// carries the last known value (defaults before the first load) and
// then every subsequent Save. The cancel function removes the
// subscription and closes the channel.
func (c *Cell) Subscribe() (<-chan model.Settings, func()) {
	ch := make(chan model.Settings, 1)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	if c.loaded {
		ch <- c.current
	} else {
		ch <- model.DefaultSettings()
	}
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
		c.mu.Unlock()
	}
	return ch, cancel
}
