package bench

import (
	"fmt"
	"net/textproto"
	"slices"

	"github.com/spaolacci/murmur3"

	"github.com/yndnr/vecmap-go/pkg/header"
)

// Store is the header map interface every contender implements.
// Names are case-insensitive.
type Store interface {
	// Add appends value to name, creating the name if needed.
	Add(name, value string)
	// Get returns the first value of name.
	Get(name string) (string, bool)
	// Del removes name and reports whether it was present.
	Del(name string) bool
	// Len returns the number of distinct names.
	Len() int
	// Reset removes everything but keeps allocated storage where possible.
	Reset()
}

// Factory creates a Store sized for capacity names.
type Factory func(capacity int) Store

// Contender names.
const (
	ContenderVecMap  = "vecmap"
	ContenderGoMap   = "gomap"
	ContenderMurmur  = "murmur"
	ContenderSharded = "sharded"
)

var factories = map[string]Factory{
	ContenderVecMap:  func(capacity int) Store { return &vecStore{h: header.New(capacity)} },
	ContenderGoMap:   func(capacity int) Store { return newGoMapStore(capacity) },
	ContenderMurmur:  func(capacity int) Store { return newMurmurStore(capacity) },
	ContenderSharded: func(capacity int) Store { return newShardedStore(capacity) },
}

// Contenders returns the registered contender names in sorted order.
func Contenders() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewStore creates the named contender.
func NewStore(name string, capacity int) (Store, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContender, name)
	}
	return f(capacity), nil
}

// vecStore is the contender under test: header.Map on top of vecmap.
type vecStore struct {
	h *header.Map
}

func (s *vecStore) Add(name, value string)         { s.h.Add(name, value) }
func (s *vecStore) Get(name string) (string, bool) { return s.h.Lookup(name) }
func (s *vecStore) Del(name string) bool           { return s.h.Del(name) }
func (s *vecStore) Len() int                       { return s.h.Len() }
func (s *vecStore) Reset()                         { s.h.Clear() }

// goMapStore mirrors net/http.Header: a Go map keyed by canonical names.
type goMapStore struct {
	m map[string][]string
}

func newGoMapStore(capacity int) *goMapStore {
	return &goMapStore{m: make(map[string][]string, capacity)}
}

func (s *goMapStore) Add(name, value string) {
	key := textproto.CanonicalMIMEHeaderKey(name)
	s.m[key] = append(s.m[key], value)
}

func (s *goMapStore) Get(name string) (string, bool) {
	v, ok := s.m[textproto.CanonicalMIMEHeaderKey(name)]
	if !ok || len(v) == 0 {
		return "", ok
	}
	return v[0], true
}

func (s *goMapStore) Del(name string) bool {
	key := textproto.CanonicalMIMEHeaderKey(name)
	_, ok := s.m[key]
	delete(s.m, key)
	return ok
}

func (s *goMapStore) Len() int { return len(s.m) }
func (s *goMapStore) Reset()   { clear(s.m) }

// murmurStore is a chained hash table keyed by the murmur3 hash of the
// canonical name: the classic hashed layout the linear scan competes with.
type murmurStore struct {
	buckets [][]murmurEntry
	mask    uint32
	n       int
}

type murmurEntry struct {
	hash   uint32
	name   string
	values []string
}

func newMurmurStore(capacity int) *murmurStore {
	// Power of two at or above capacity, minimum 8.
	size := 8
	for size < capacity {
		size <<= 1
	}
	return &murmurStore{
		buckets: make([][]murmurEntry, size),
		mask:    uint32(size - 1),
	}
}

func (s *murmurStore) locate(name string) (key string, hash uint32, bucket int, pos int) {
	key = textproto.CanonicalMIMEHeaderKey(name)
	hash = murmur3.Sum32([]byte(key))
	bucket = int(hash & s.mask)
	for i, e := range s.buckets[bucket] {
		if e.hash == hash && e.name == key {
			return key, hash, bucket, i
		}
	}
	return key, hash, bucket, -1
}

func (s *murmurStore) Add(name, value string) {
	key, hash, b, pos := s.locate(name)
	if pos >= 0 {
		e := &s.buckets[b][pos]
		e.values = append(e.values, value)
		return
	}
	s.buckets[b] = append(s.buckets[b], murmurEntry{hash: hash, name: key, values: []string{value}})
	s.n++
}

func (s *murmurStore) Get(name string) (string, bool) {
	_, _, b, pos := s.locate(name)
	if pos < 0 {
		return "", false
	}
	return s.buckets[b][pos].values[0], true
}

func (s *murmurStore) Del(name string) bool {
	_, _, b, pos := s.locate(name)
	if pos < 0 {
		return false
	}
	s.buckets[b] = slices.Delete(s.buckets[b], pos, pos+1)
	s.n--
	return true
}

func (s *murmurStore) Len() int { return s.n }

func (s *murmurStore) Reset() {
	for i := range s.buckets {
		clear(s.buckets[i])
		s.buckets[i] = s.buckets[i][:0]
	}
	s.n = 0
}
