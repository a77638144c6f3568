// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	dberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/polkadotters/SubAuction/kv"
)

var _ kv.GetPutter = (*LevelDB)(nil)

// Options options for creating level db instance.
type Options struct {
	CacheSize              int // size of read cache, in entries
	OpenFilesCacheCapacity int
}

// LevelDB wraps goleveldb, with a small read-through cache in front of gets.
type LevelDB struct {
	db    *leveldb.DB
	cache *lru.Cache
}

// New create a persistent level db instance.
// Create an empty one if the db does not exist at the given path.
func New(path string, opts Options) (*LevelDB, error) {
	if opts.CacheSize < 16 {
		opts.CacheSize = 16
	}
	db, err := leveldb.OpenFile(path, &opt.Options{
		OpenFilesCacheCapacity: opts.OpenFilesCacheCapacity,
	})
	if _, corrupted := err.(*dberrors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, errors.Wrap(err, "open leveldb")
	}
	return newLevelDB(db, opts.CacheSize)
}

// NewMem create a level db backed by memory, for testing.
func NewMem() (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "open in-memory leveldb")
	}
	return newLevelDB(db, 128)
}

func newLevelDB(db *leveldb.DB, cacheSize int) (*LevelDB, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &LevelDB{db: db, cache: cache}, nil
}

// IsNotFound reports whether the error means the key was absent.
func (ldb *LevelDB) IsNotFound(err error) bool {
	return err == leveldb.ErrNotFound
}

func (ldb *LevelDB) Get(key []byte) ([]byte, error) {
	if v, ok := ldb.cache.Get(string(key)); ok {
		cached := v.([]byte)
		cpy := make([]byte, len(cached))
		copy(cpy, cached)
		return cpy, nil
	}
	value, err := ldb.db.Get(key, nil)
	if err != nil {
		return nil, err
	}
	ldb.cache.Add(string(key), append([]byte(nil), value...))
	return value, nil
}

func (ldb *LevelDB) Has(key []byte) (bool, error) {
	if ldb.cache.Contains(string(key)) {
		return true, nil
	}
	return ldb.db.Has(key, nil)
}

func (ldb *LevelDB) Put(key, value []byte) error {
	if err := ldb.db.Put(key, value, nil); err != nil {
		return err
	}
	ldb.cache.Add(string(key), append([]byte(nil), value...))
	return nil
}

func (ldb *LevelDB) Delete(key []byte) error {
	if err := ldb.db.Delete(key, nil); err != nil {
		return err
	}
	ldb.cache.Remove(string(key))
	return nil
}

// Close closes the underlying db.
func (ldb *LevelDB) Close() error {
	ldb.cache.Purge()
	return ldb.db.Close()
}
