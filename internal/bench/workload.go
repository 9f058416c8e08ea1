package bench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// MaxSize bounds the number of header names in one workload.
const MaxSize = 256

// commonHeaders are typical request header names, most frequent first.
var commonHeaders = []string{
	"Host",
	"User-Agent",
	"Accept",
	"Accept-Encoding",
	"Accept-Language",
	"Connection",
	"Content-Type",
	"Content-Length",
	"Cookie",
	"Authorization",
	"Cache-Control",
	"Referer",
	"Origin",
	"Upgrade-Insecure-Requests",
	"If-None-Match",
	"If-Modified-Since",
	"X-Forwarded-For",
	"X-Forwarded-Proto",
	"X-Request-Id",
	"X-Real-Ip",
	"Pragma",
	"Te",
	"Sec-Fetch-Dest",
	"Sec-Fetch-Mode",
	"Sec-Fetch-Site",
	"Sec-Fetch-User",
	"Dnt",
	"Via",
	"Forwarded",
	"Range",
	"If-Range",
	"Expect",
}

// ulidEpoch pins the timestamp part of generated ULIDs so runs with the
// same seed produce the same values.
var ulidEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Workload is the input for one map size.
type Workload struct {
	// Names are distinct header names in insertion order.
	Names []string
	// Values holds one value per name.
	Values []string
	// Misses are names that never appear in Names.
	Misses []string
}

// Size returns the number of names.
func (w *Workload) Size() int {
	return len(w.Names)
}

// NewWorkload builds a workload of size header names. The first names come
// from a list of common request headers; larger sizes add X-Custom-NNN names.
func NewWorkload(size int, valueKind string, seed int64) (*Workload, error) {
	if size <= 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: workload size %d out of range 1..%d", ErrInvalidConfig, size, MaxSize)
	}

	w := &Workload{
		Names:  make([]string, size),
		Values: make([]string, size),
		Misses: make([]string, size),
	}

	for i := range w.Names {
		if i < len(commonHeaders) {
			w.Names[i] = commonHeaders[i]
		} else {
			w.Names[i] = fmt.Sprintf("X-Custom-%03d", i)
		}
		w.Misses[i] = fmt.Sprintf("X-Missing-%03d", i)
	}

	switch valueKind {
	case ValueKindULID:
		entropy := ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
		ts := ulid.Timestamp(ulidEpoch)
		for i := range w.Values {
			id, err := ulid.New(ts, entropy)
			if err != nil {
				return nil, fmt.Errorf("generate value: %w", err)
			}
			w.Values[i] = id.String()
		}
	case ValueKindStatic:
		for i := range w.Values {
			w.Values[i] = fmt.Sprintf("value-%d", i)
		}
	default:
		return nil, fmt.Errorf("%w: value kind %q", ErrInvalidConfig, valueKind)
	}

	return w, nil
}
