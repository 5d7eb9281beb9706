// DataWiz - Telegraf Collectors Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package draft persists unfinished wizard state in BadgerDB so that an
// interrupted setup can resume where it stopped.
package draft

import (
	"errors"
	"fmt"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"gopkg.in/yaml.v3"

	"github.com/cloud-exit/datawiz/internal/store"
)

// ErrNotFound is returned when no draft exists for an organization.
var ErrNotFound = errors.New("draft not found")

const keyPrefix = "draft:"

// DefaultTTL is how long an untouched draft is kept.
const DefaultTTL = 30 * 24 * time.Hour

// Options configures a Store.
type Options struct {
	Dir      string           // on-disk directory (ignored when InMemory is true)
	InMemory bool             // use in-memory storage (for tests)
	ReadOnly bool             // open without taking the directory lock
	TTL      time.Duration    // draft expiry; zero means DefaultTTL
	Now      func() time.Time // clock for log entries; nil means time.Now
}

// Store keeps one draft per organization.
type Store struct {
	db  *badger.DB
	ttl time.Duration
	now func() time.Time
}

// Open creates or opens the draft database. A WAL left incomplete by an
// unclean exit is truncated by a short read-write open before retrying.
func Open(opts Options) (*Store, error) {
	bopts := badgerOptions(opts)

	db, err := badger.Open(bopts)
	if err != nil && !opts.InMemory && needsTruncation(err) {
		rdb, rerr := badger.Open(badgerOptions(Options{Dir: opts.Dir}))
		if rerr != nil {
			return nil, fmt.Errorf("opening drafts: %w", err)
		}
		if cerr := rdb.Close(); cerr != nil {
			return nil, cerr
		}
		db, err = badger.Open(bopts)
	}
	if err != nil {
		return nil, fmt.Errorf("opening drafts: %w", err)
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{db: db, ttl: ttl, now: now}, nil
}

func badgerOptions(opts Options) badger.Options {
	bopts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts.Logger = nil
	if opts.ReadOnly && !opts.InMemory {
		bopts = bopts.WithReadOnly(true).WithBypassLockGuard(true)
	}
	return bopts
}

func needsTruncation(err error) bool {
	return strings.Contains(err.Error(), "Log truncate required") ||
		strings.Contains(err.Error(), "MANIFEST has unsupported version")
}

func key(orgID string) []byte {
	return []byte(keyPrefix + orgID)
}

// Save stores st as the draft for orgID, replacing any previous one, and
// appends an entry to the draft's log.
func (s *Store) Save(orgID string, st store.State) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	entry := logEntryFor(st)
	now := s.now()
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.SetEntry(badger.NewEntry(key(orgID), data).WithTTL(s.ttl)); err != nil {
			return err
		}
		return txn.SetEntry(badger.NewEntry(logKey(orgID, now), []byte(entry)).WithTTL(s.ttl))
	})
}

// Load returns the draft for orgID or ErrNotFound.
func (s *Store) Load(orgID string) (store.State, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(orgID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return store.State{}, err
	}

	var st store.State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return store.State{}, fmt.Errorf("decoding draft for %s: %w", orgID, err)
	}
	return st, nil
}

// Delete removes the draft for orgID and its log. Deleting a missing draft is
// not an error.
func (s *Store) Delete(orgID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(key(orgID)); err != nil {
			return err
		}
		opts := badger.DefaultIteratorOptions
		opts.Prefix = logPrefix(orgID)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			if _, ok := logTime(it.Item().Key(), opts.Prefix); ok {
				keys = append(keys, it.Item().KeyCopy(nil))
			}
		}
		it.Close()

		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns the organization IDs that have drafts, in key order.
func (s *Store) List() ([]string, error) {
	var orgs []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			k := string(it.Item().Key())
			orgs = append(orgs, strings.TrimPrefix(k, keyPrefix))
		}
		return nil
	})
	return orgs, err
}

// Close reclaims value log space and closes the database.
func (s *Store) Close() error {
	for s.db.RunValueLogGC(0.5) == nil {
	}
	return s.db.Close()
}
