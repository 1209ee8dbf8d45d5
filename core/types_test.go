package core_test

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bstree/core"
)

func TestNewTreeFunc_NilComparatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		core.NewTreeFunc[int](nil)
	})
}

func TestNode_NilSafeChildren(t *testing.T) {
	var n *core.Node[int]
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())
}

func TestNewTreeFunc_ReverseOrder(t *testing.T) {
	tr := core.NewTreeFunc(func(a, b int) int { return cmp.Compare(b, a) })
	for _, v := range scenarioValues {
		tr.Insert(v)
	}
	assert.Equal(t, []int{170, 20, 15, 9, 6, 4, 1}, inorder(tr.Root(), []int{}))
	require.NoError(t, tr.Validate())

	lo, _ := tr.Min()
	assert.Equal(t, 170, lo)
}

type employee struct {
	id   int
	name string
}

func TestNewTreeFunc_KeyedStruct(t *testing.T) {
	tr := core.NewTreeFunc(func(a, b employee) int { return cmp.Compare(a.id, b.id) })
	tr.Insert(employee{id: 3, name: "carol"})
	tr.Insert(employee{id: 1, name: "alice"})
	tr.Insert(employee{id: 2, name: "bob"})

	n, ok := tr.Lookup(employee{id: 2})
	require.True(t, ok)
	assert.Equal(t, "bob", n.Value().name)

	assert.True(t, tr.Remove(employee{id: 3}))
	assert.False(t, tr.Contains(employee{id: 3}))
	assert.Equal(t, 2, tr.Len())
}

func TestNewTree_Strings(t *testing.T) {
	tr := core.NewTree[string]()
	for _, s := range []string{"m", "c", "x", "a", "e"} {
		tr.Insert(s)
	}
	assert.Equal(t, []string{"a", "c", "e", "m", "x"}, inorder(tr.Root(), []string{}))
	assert.Equal(t, 0, tr.Compare()("e", "e"))
	assert.Negative(t, tr.Compare()("a", "b"))
}

func TestValidate_Healthy(t *testing.T) {
	require.NoError(t, core.NewTree[int]().Validate())
	require.NoError(t, buildTree(scenarioValues...).Validate())
	require.NoError(t, buildTree(5, 5, 5, 5).Validate())
}

func TestValidate_OrderingViolatedDeep(t *testing.T) {
	// 9's left subtree holds 4 whose right child is swapped for 10:
	// locally 10 >= 4, but 10 must be < 9.
	tr := buildTree(9, 4, 6)
	four, ok := tr.Lookup(4)
	require.True(t, ok)
	bad := buildTree(10).Root()
	core.Attach(four, nil, bad)

	err := tr.Validate()
	require.ErrorIs(t, err, core.ErrCorruptTree)
	assert.True(t, strings.Contains(err.Error(), "left subtree of 9"), err.Error())
}

func TestValidate_EqualValueOnLeftRejected(t *testing.T) {
	tr := buildTree(5)
	core.Attach(tr.Root(), buildTree(5).Root(), nil)
	core.ForceSize(tr, 2)
	require.ErrorIs(t, tr.Validate(), core.ErrCorruptTree)
}

func TestValidate_SharedAndCyclicNodes(t *testing.T) {
	tr := buildTree(5, 7)
	seven := tr.Root().Right()
	core.Attach(seven, nil, seven) // seven points back at itself
	require.ErrorIs(t, tr.Validate(), core.ErrCorruptTree)

	tr = buildTree(5)
	leaf := buildTree(5).Root()
	core.Attach(tr.Root(), nil, leaf)
	core.Attach(leaf, nil, leaf)
	require.ErrorIs(t, tr.Validate(), core.ErrCorruptTree)
}

func TestValidate_SizeMismatch(t *testing.T) {
	tr := buildTree(scenarioValues...)
	core.ForceSize(tr, 3)
	err := tr.Validate()
	require.ErrorIs(t, err, core.ErrCorruptTree)
	assert.Contains(t, err.Error(), "7 reachable nodes")
}
