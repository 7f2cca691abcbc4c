package preferences

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var prefsBucket = []byte("preferences")

// BoltStore keeps preferences in a single bbolt file on local disk.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the preference file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open preference file %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(prefsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create preference bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Get(_ context.Context, key string) (string, error) {
	var val string
	err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(prefsBucket).Get([]byte(key)); v != nil {
			val = string(v)
		}
		return nil
	})
	return val, err
}

func (b *BoltStore) Set(_ context.Context, key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(prefsBucket).Put([]byte(key), []byte(value))
	})
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
