package maptrait_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
	"jsouthworth.net/go/maptrait"
	"jsouthworth.net/go/maptrait/hashmap"
	"jsouthworth.net/go/maptrait/hashset"
	"jsouthworth.net/go/maptrait/lastinsert"
	"jsouthworth.net/go/maptrait/treemap"
	"jsouthworth.net/go/maptrait/treeset"
)

var mapImpls = []struct {
	name string
	new  func() maptrait.Map[int, int, int]
}{
	{"hashmap", func() maptrait.Map[int, int, int] {
		return hashmap.New[int, int]()
	}},
	{"treemap", func() maptrait.Map[int, int, int] {
		return treemap.New[int, int]()
	}},
	{"lastinsert", func() maptrait.Map[int, int, int] {
		m := hashmap.New[int, int]()
		l := lastinsert.NewMap[int, int, int](m, 0, 0)
		m.Delete(0)
		return l
	}},
}

var setImpls = []struct {
	name string
	new  func() maptrait.Set[int, int]
}{
	{"hashset", func() maptrait.Set[int, int] { return hashset.New[int]() }},
	{"treeset", func() maptrait.Set[int, int] { return treeset.New[int]() }},
}

func TestMapContract(t *testing.T) {
	for _, impl := range mapImpls {
		t.Run(impl.name, func(t *testing.T) {
			parameters := gopter.DefaultTestParameters()
			properties := gopter.NewProperties(parameters)
			properties.Property("insert of a new key returns absent",
				prop.ForAll(
					func(k, v int) bool {
						m := impl.new()
						_, replaced := m.Insert(k, v)
						got, ok := maptrait.Find(m, k)
						return !replaced && ok && got == v
					},
					gen.Int(),
					gen.Int(),
				))
			properties.Property("insert over v1 returns v1 once",
				prop.ForAll(
					func(k, v1, v2 int) bool {
						m := impl.new()
						m.Insert(k, v1)
						old, replaced := m.Insert(k, v2)
						got, _ := maptrait.Find(m, k)
						return replaced && old == v1 && got == v2
					},
					gen.Int(),
					gen.Int(),
					gen.Int(),
				))
			properties.Property("get of a missing key returns nil",
				prop.ForAll(
					func(k, j int) bool {
						m := impl.new()
						m.Insert(k, k)
						g, ok := m.Get(j)
						return k == j || (!ok && g == nil)
					},
					gen.Int(),
					gen.Int(),
				))
			properties.TestingRun(t)
		})
	}
}

func TestMapScenario(t *testing.T) {
	for _, impl := range mapImpls {
		t.Run(impl.name, func(t *testing.T) {
			m := impl.new()
			_, replaced := m.Insert(1, 2)
			require.False(t, replaced)
			g, ok := m.Get(1)
			require.True(t, ok)
			require.Equal(t, 2, *g.Deref())

			old, replaced := m.Insert(1, 3)
			require.True(t, replaced)
			require.Equal(t, 2, old)
			g, ok = m.Get(1)
			require.True(t, ok)
			require.Equal(t, 3, *g.Deref())
		})
	}
}

func TestSetContract(t *testing.T) {
	for _, impl := range setImpls {
		t.Run(impl.name, func(t *testing.T) {
			parameters := gopter.DefaultTestParameters()
			properties := gopter.NewProperties(parameters)
			properties.Property("insert new returns true then false",
				prop.ForAll(
					func(x int) bool {
						s := impl.new()
						return s.Insert(x) && s.Contains(x) &&
							!s.Insert(x) && s.Contains(x)
					},
					gen.Int(),
				))
			properties.Property("delete removes membership",
				prop.ForAll(
					func(x int) bool {
						s := impl.new()
						s.Insert(x)
						d, ok := s.(maptrait.SetDeleter[int])
						return ok && d.Delete(x) && !s.Contains(x)
					},
					gen.Int(),
				))
			properties.TestingRun(t)
		})
	}
}

func TestLength(t *testing.T) {
	m := hashmap.New[int, int]()
	m.Insert(1, 1)
	n, ok := maptrait.Length(m)
	require.True(t, ok)
	require.Equal(t, 1, n)

	_, ok = maptrait.Length(lastinsert.NewMap[int, int, int](m, 2, 2))
	require.False(t, ok)
}

// key owns a buffer and is looked up by the string it holds.
type key struct {
	buf []byte
}

func (k key) Borrow() string {
	return string(k.buf)
}

func TestHeterogeneousLookup(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	maps := map[string]func() maptrait.Map[key, string, int]{
		"hashmap": func() maptrait.Map[key, string, int] {
			return hashmap.NewBorrowed[key, string, int](
				maptrait.BorrowOf[key, string], hashmap.StringHasher())
		},
		"treemap": func() maptrait.Map[key, string, int] {
			return treemap.NewBorrowed[key, string, int](
				maptrait.BorrowOf[key, string], strings.Compare)
		},
	}
	for name, newMap := range maps {
		properties.Property(name+": view lookup matches owned lookup",
			prop.ForAll(
				func(stored []string, probe string) bool {
					owned := hashmap.New[string, int]()
					m := newMap()
					for i, s := range stored {
						owned.Insert(s, i)
						m.Insert(key{buf: []byte(s)}, i)
					}
					for _, q := range append(stored, probe) {
						ov, ook := owned.Find(q)
						hv, hok := maptrait.Find(m, q)
						if ov != hv || ook != hok {
							return false
						}
					}
					return true
				},
				gen.SliceOf(gen.AlphaString()),
				gen.AlphaString(),
			))
	}
	properties.TestingRun(t)
}

func TestBorrowedViewIsStored(t *testing.T) {
	m := hashmap.NewBorrowed[key, string, int](
		maptrait.BorrowOf[key, string], hashmap.StringHasher())
	k := key{buf: []byte("abc")}
	m.Insert(k, 1)
	copy(k.buf, "xyz")
	require.True(t, m.Contains("abc"))
	require.False(t, m.Contains("xyz"))
}

type caseless string

func (c caseless) Equal(o caseless) bool {
	return strings.EqualFold(string(c), string(o))
}

func (c caseless) Hash() uint64 {
	return xxh3.HashString(strings.ToLower(string(c)))
}

func (c caseless) Compare(o caseless) int {
	return strings.Compare(strings.ToLower(string(c)), strings.ToLower(string(o)))
}

func TestEqualAndCompare(t *testing.T) {
	require.True(t, maptrait.Equal[caseless]("Go", "gO"))
	require.True(t, maptrait.Equal(1, 1))
	require.False(t, maptrait.Equal("a", "b"))

	require.Equal(t, 0, maptrait.CompareMethod[caseless]("ABC", "abc"))
	require.Equal(t, 0, maptrait.Compare[caseless]("ABC", "abc"))
	require.Equal(t, -1, maptrait.Compare(1, 2))
	require.Equal(t, 1, maptrait.Compare("b", "a"))

	s := treeset.NewFunc(maptrait.CompareMethod[caseless], "B", "a", "b")
	require.Equal(t, 2, s.Length())
}

func TestMethodKeysByDefault(t *testing.T) {
	sets := []struct {
		name string
		set  maptrait.Set[caseless, caseless]
	}{
		{"hashset", hashset.New[caseless]("Go", "gO", "b")},
		{"treeset", treeset.New[caseless]("Go", "gO", "b")},
	}
	for _, tc := range sets {
		t.Run(tc.name, func(t *testing.T) {
			l, _ := maptrait.Length(tc.set)
			require.Equal(t, 2, l)
			require.True(t, tc.set.Contains("GO"))
			require.False(t, tc.set.Insert("B"))
		})
	}
}

func TestRef(t *testing.T) {
	v := []byte("hello")
	var g maptrait.Guard[[]byte] = maptrait.RefOf(&v)
	require.True(t, bytes.Equal(v, *g.Deref()))
	require.Equal(t, 5, maptrait.Identity(5))
}
