package histutil

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketCmd = "cmd"

// DBStore is an append-only command log in a bolt database. Unlike MemStore
// it is unbounded and keeps adjacent duplicates; bounding and deduplication
// happen when the log is loaded into a MemStore at startup.
type DBStore struct {
	db *bolt.DB
}

// OpenDB opens (creating if necessary) the history database at path. The
// open times out rather than blocking forever when another process holds the
// file lock.
func OpenDB(path string) (*DBStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init history db: %w", err)
	}
	return &DBStore{db}, nil
}

// Close closes the underlying database.
func (s *DBStore) Close() error { return s.db.Close() }

// Add appends cmd to the log.
func (s *DBStore) Add(cmd string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		var key [8]byte
		binary.BigEndian.PutUint64(key[:], seq)
		return b.Put(key[:], []byte(cmd))
	})
}

// All returns every stored command, oldest first.
func (s *DBStore) All() ([]string, error) {
	var cmds []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		return b.ForEach(func(_, v []byte) error {
			cmds = append(cmds, string(v))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cmds, nil
}
