package vecmap_test

import (
	"fmt"
	"strings"

	"github.com/yndnr/vecmap-go/pkg/vecmap"
)

func Example() {
	m := vecmap.New[string, int](4)
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("a", 3)

	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	// Output:
	// a 3
	// b 2
}

func ExampleMap_Entry() {
	m := vecmap.New[string, int](0)
	m.Insert("x", 10)

	for _, key := range []string{"x", "z"} {
		switch e := m.Entry(key).(type) {
		case *vecmap.VacantEntry[string, int]:
			e.Insert(99)
		case *vecmap.OccupiedEntry[string, int]:
			*e.IntoMut() *= 2
		}
	}

	fmt.Println(m.Get("x"))
	fmt.Println(m.Get("z"))
	// Output:
	// 20 true
	// 99 true
}

func ExampleLookup() {
	m := vecmap.NewFunc[[]byte, string](0, func(a, b []byte) bool { return string(a) == string(b) })
	m.Insert([]byte("Host"), "example.com")

	v, ok := vecmap.Lookup(m, "host", func(q string, k []byte) bool {
		return strings.EqualFold(q, string(k))
	})
	fmt.Println(v, ok)
	// Output: example.com true
}
