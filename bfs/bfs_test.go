package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bstree/bfs"
	"github.com/katalvlaran/bstree/core"
)

// buildTree inserts vals into a fresh int tree in order.
func buildTree(vals ...int) *core.Tree[int] {
	t := core.NewTree[int]()
	for _, v := range vals {
		t.Insert(v)
	}

	return t
}

var scenarioValues = []int{9, 4, 6, 20, 170, 15, 1}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil tree
	res, err := bfs.BFS[int](nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrTreeNil)

	// negative MaxDepth is a violation
	_, err = bfs.BFS(buildTree(1), bfs.WithMaxDepth[int](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_EmptyTree(t *testing.T) {
	res, err := bfs.BFS(core.NewTree[int]())
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Levels)
	assert.Equal(t, 0, res.Width())

	assert.Equal(t, []int{}, bfs.Values(core.NewTree[int]()))
	assert.Equal(t, []int{}, bfs.Values[int](nil))
}

func TestBFS_ReferenceScenario(t *testing.T) {
	tr := buildTree(scenarioValues...)
	res, err := bfs.BFS(tr)
	require.NoError(t, err)

	assert.Equal(t, []int{9, 4, 20, 1, 6, 15, 170}, res.Order)
	assert.Equal(t, [][]int{{9}, {4, 20}, {1, 6, 15, 170}}, res.Levels)
	assert.Equal(t, 4, res.Width())
	assert.Equal(t, res.Order, bfs.Values(tr))
}

func TestBFS_AfterRemovals(t *testing.T) {
	tr := buildTree(scenarioValues...)
	require.True(t, tr.Remove(20))
	assert.Equal(t, []int{9, 4, 170, 1, 6, 15}, bfs.Values(tr))

	require.True(t, tr.Remove(9))
	// 9's right child 170 has left child 15, so 15 becomes the root.
	assert.Equal(t, []int{15, 4, 170, 1, 6}, bfs.Values(tr))
}

// TestBFS_LevelOrderLaw checks that every depth-k node precedes every
// depth-(k+1) node, using the OnVisit hook to observe depths.
func TestBFS_LevelOrderLaw(t *testing.T) {
	tr := buildTree(50, 30, 70, 20, 40, 60, 80, 10, 45, 65, 90, 85, 5, 35)
	var depths []int
	res, err := bfs.BFS(tr, bfs.WithOnVisit(func(_ int, d int) error {
		depths = append(depths, d)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, depths, tr.Len())
	assert.Equal(t, 50, res.Order[0])
	assert.Equal(t, 0, depths[0])
	for i := 1; i < len(depths); i++ {
		assert.LessOrEqual(t, depths[i-1], depths[i], "position %d", i)
	}
	assert.Len(t, res.Levels, tr.Height())
}

func TestBFS_Degenerate(t *testing.T) {
	tr := buildTree(1, 2, 3, 4)
	res, err := bfs.BFS(tr)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Order)
	assert.Equal(t, 1, res.Width())
	assert.Len(t, res.Levels, 4)
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	tr := buildTree(scenarioValues...)

	res, err := bfs.BFS(tr, bfs.WithMaxDepth[int](1))
	require.NoError(t, err)
	assert.Equal(t, []int{9, 4, 20}, res.Order)

	res, err = bfs.BFS(tr, bfs.WithMaxDepth[int](0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 7)

	res, err = bfs.BFS(tr, bfs.WithMaxDepth[int](10))
	require.NoError(t, err)
	assert.Len(t, res.Order, 7)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop here")
	tr := buildTree(scenarioValues...)
	res, err := bfs.BFS(tr, bfs.WithOnVisit(func(v int, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "bfs: OnVisit error at 1")
	assert.Equal(t, []int{9, 4, 20, 1}, res.Order)
}

func TestBFS_Restartable(t *testing.T) {
	tr := buildTree(scenarioValues...)
	first := bfs.Values(tr)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, bfs.Values(tr))
	}
	assert.Equal(t, 7, tr.Len())
}
