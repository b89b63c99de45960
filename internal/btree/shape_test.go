package btree

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func at(k int) func(int) int {
	return func(item int) int {
		return cmp.Compare(item, k)
	}
}

func newIntTree() *Tree[int] {
	return New(cmp.Compare[int], func(a, b int) bool { return a == b })
}

// height walks n and returns the number of levels below it. Every
// non-root node must be at least half full, keys must ascend and each
// internal key must be the largest item of its child.
func height(n node[int], root bool) (int, error) {
	switch v := n.(type) {
	case *leafNode[int]:
		if !root && v.len < minLen {
			return 0, fmt.Errorf("leaf holds %d items", v.len)
		}
		if !slices.IsSorted(v.items()) {
			return 0, fmt.Errorf("leaf %v out of order", v.items())
		}
		return 1, nil
	case *internalNode[int]:
		switch {
		case root && v.len < 2:
			return 0, fmt.Errorf("root has %d children", v.len)
		case !root && v.len < minLen:
			return 0, fmt.Errorf("node has %d children", v.len)
		case v.len > maxLen:
			return 0, fmt.Errorf("node has %d children", v.len)
		}
		levels := -1
		for i, child := range v.nodes() {
			if v.keys[i] != child.maxKey() {
				return 0, fmt.Errorf("key %d for child ending at %d",
					v.keys[i], child.maxKey())
			}
			if i > 0 && v.keys[i-1] >= v.keys[i] {
				return 0, fmt.Errorf("keys %v out of order", v.items())
			}
			h, err := height(child, false)
			if err != nil {
				return 0, err
			}
			if levels >= 0 && h != levels {
				return 0, fmt.Errorf("children of height %d and %d", levels, h)
			}
			levels = h
		}
		return levels + 1, nil
	default:
		return 0, fmt.Errorf("unexpected node %T", n)
	}
}

// matches checks the shape of t and that it holds exactly model.
func matches(t *Tree[int], model map[int]bool) error {
	if _, err := height(t.root, true); err != nil {
		return err
	}
	if t.Length() != len(model) {
		return fmt.Errorf("length %d, want %d", t.Length(), len(model))
	}
	var got []int
	iter := t.Iterator()
	for iter.HasNext() {
		got = append(got, iter.Next())
	}
	want := slices.Sorted(maps.Keys(model))
	if !slices.Equal(got, want) {
		return fmt.Errorf("items %v, want %v", got, want)
	}
	return nil
}

type op struct {
	kind, key int
}

func TestShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)
	properties.Property("edits and clones keep every tree balanced",
		prop.ForAll(
			func(ops []op) bool {
				type snapshot struct {
					tree  *Tree[int]
					model map[int]bool
				}
				tree := newIntTree()
				model := map[int]bool{}
				var snaps []snapshot
				for _, o := range ops {
					switch o.kind {
					case 0, 1, 2:
						tree.Add(o.key)
						model[o.key] = true
					case 3, 4:
						tree.Delete(at(o.key))
						delete(model, o.key)
					default:
						snaps = append(snaps,
							snapshot{tree.Clone(), maps.Clone(model)})
					}
				}
				snaps = append(snaps, snapshot{tree, model})
				for _, s := range snaps {
					if err := matches(s.tree, s.model); err != nil {
						t.Log(err)
						return false
					}
				}
				return true
			},
			gen.SliceOfN(3000, gopter.CombineGens(
				gen.IntRange(0, 5),
				gen.IntRange(0, 600),
			).Map(func(vs []interface{}) op {
				return op{kind: vs[0].(int), key: vs[1].(int)}
			})),
		))
	properties.TestingRun(t)
}

func TestShapeAfterDrain(t *testing.T) {
	tree := newIntTree()
	model := map[int]bool{}
	for i := 0; i < 5000; i++ {
		tree.Add(i)
		model[i] = true
	}
	require.NoError(t, matches(tree, model))

	frozen := tree.Clone()
	frozenModel := maps.Clone(model)
	for i := 0; i < 5000; i += 3 {
		tree.Delete(at(i))
		delete(model, i)
	}
	require.NoError(t, matches(tree, model))
	for i := 4999; i >= 0; i-- {
		tree.Delete(at(i))
		delete(model, i)
	}
	require.NoError(t, matches(tree, model))
	require.NoError(t, matches(frozen, frozenModel))
}
