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

package draft

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/cloud-exit/datawiz/internal/store"
)

// Log keys are draftlog:<orgID>:<unix nanos, zero padded> so that key order
// is time order within one draft.
const logKeyPrefix = "draftlog:"

func logPrefix(orgID string) []byte {
	return []byte(logKeyPrefix + orgID + ":")
}

func logKey(orgID string, t time.Time) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", logKeyPrefix, orgID, t.UnixNano()))
}

// logTime parses the timestamp of a log key under prefix. It reports false
// for keys of another draft whose org ID merely starts with the same text.
func logTime(k, prefix []byte) (time.Time, bool) {
	suffix := strings.TrimPrefix(string(k), string(prefix))
	if len(suffix) != 20 {
		return time.Time{}, false
	}
	ns, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(0, ns).UTC(), true
}

func logEntryFor(st store.State) string {
	steps := st.DataLoading.Steps
	return fmt.Sprintf("step=%d bucket=%s bundles=%d",
		steps.CurrentStepIndex, steps.Bucket, len(st.DataLoading.DataLoaders.PluginBundles))
}

// AddLogEntry appends desc to the log of orgID's draft at time t.
func (s *Store) AddLogEntry(orgID, desc string, t time.Time) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(logKey(orgID, t), []byte(desc)).WithTTL(s.ttl))
	})
}

// FirstLogEntry returns the oldest log entry for orgID, or ErrNotFound.
func (s *Store) FirstLogEntry(orgID string) (string, time.Time, error) {
	return s.logEntry(orgID, false)
}

// LastLogEntry returns the newest log entry for orgID, or ErrNotFound.
func (s *Store) LastLogEntry(orgID string) (string, time.Time, error) {
	return s.logEntry(orgID, true)
}

func (s *Store) logEntry(orgID string, last bool) (string, time.Time, error) {
	prefix := logPrefix(orgID)
	var (
		desc string
		at   time.Time
	)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.Reverse = last
		it := txn.NewIterator(opts)
		defer it.Close()

		if last {
			// Reverse iteration starts at the greatest key <= the seek key.
			it.Seek(append(append([]byte{}, prefix...), 0xFF))
		} else {
			it.Rewind()
		}
		for ; it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			t, ok := logTime(item.Key(), prefix)
			if !ok {
				continue
			}
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			desc, at = string(v), t
			return nil
		}
		return ErrNotFound
	})
	return desc, at, err
}

// CreatedUpdated returns when orgID's draft was first and last saved.
func (s *Store) CreatedUpdated(orgID string) (created, updated time.Time, err error) {
	_, created, err = s.FirstLogEntry(orgID)
	if err != nil {
		return created, updated, err
	}
	_, updated, err = s.LastLogEntry(orgID)
	return created, updated, err
}
