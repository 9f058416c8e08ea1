package bench

import (
	"hash/maphash"
	"net/textproto"
	"sync"
)

// shardCount must be a power of two.
const shardCount = 16

// shardedStore is a lock-striped Go map, the layout a concurrent header
// cache would use. It measures what locking costs on the single-threaded
// path the other contenders take for free.
type shardedStore struct {
	shards [shardCount]*storeShard
	seed   maphash.Seed
}

type storeShard struct {
	mu    sync.RWMutex
	items map[string][]string
}

func newShardedStore(capacity int) *shardedStore {
	per := capacity / shardCount
	s := &shardedStore{seed: maphash.MakeSeed()}
	for i := range s.shards {
		s.shards[i] = &storeShard{items: make(map[string][]string, per)}
	}
	return s
}

func (s *shardedStore) shard(key string) *storeShard {
	return s.shards[maphash.String(s.seed, key)&(shardCount-1)]
}

func (s *shardedStore) Add(name, value string) {
	key := textproto.CanonicalMIMEHeaderKey(name)
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.items[key] = append(sh.items[key], value)
}

func (s *shardedStore) Get(name string) (string, bool) {
	key := textproto.CanonicalMIMEHeaderKey(name)
	sh := s.shard(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.items[key]
	if !ok || len(v) == 0 {
		return "", ok
	}
	return v[0], true
}

func (s *shardedStore) Del(name string) bool {
	key := textproto.CanonicalMIMEHeaderKey(name)
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	_, ok := sh.items[key]
	delete(sh.items, key)
	return ok
}

func (s *shardedStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.items)
		sh.mu.RUnlock()
	}
	return n
}

func (s *shardedStore) Reset() {
	for _, sh := range s.shards {
		sh.mu.Lock()
		clear(sh.items)
		sh.mu.Unlock()
	}
}
