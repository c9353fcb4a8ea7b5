package engineio

import (
	"errors"
	"log"

	"github.com/dgraph-io/badger/v4"
)

// CachedClient decorates a Client with a badger-backed reply cache keyed on
// position and budget. With an empty directory the store is in-memory and
// lives only as long as the match, so repeated probes of the same position
// (editor experiments, retries) skip the engine without persisting anything.
type CachedClient struct {
	inner Client
	db    *badger.DB
}

// NewCachedClient wraps inner with a cache at dir; an empty dir selects the
// in-memory store.
func NewCachedClient(inner Client, dir string) (*CachedClient, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &CachedClient{inner: inner, db: db}, nil
}

// BestMove returns the cached reply for this position and budget, asking
// the wrapped client on a miss.
func (c *CachedClient) BestMove(fen string, budget Budget) (string, error) {
	key := []byte(fen + "|" + budget.String())

	var cached string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			cached = string(val)
			return nil
		})
	})
	if err == nil && cached != "" {
		return cached, nil
	}
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return "", err
	}

	text, err := c.inner.BestMove(fen, budget)
	if err != nil {
		return "", err
	}

	if err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, []byte(text))
	}); err != nil {
		// A write failure only costs a future cache hit.
		log.Printf("engine cache write failed: %v", err)
	}
	return text, nil
}

// Close releases the cache store and the wrapped client.
func (c *CachedClient) Close() error {
	dbErr := c.db.Close()
	innerErr := c.inner.Close()
	if dbErr != nil {
		return dbErr
	}
	return innerErr
}
