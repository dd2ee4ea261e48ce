package rbinterval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqString(a, b string) bool { return a == b }

// newScenarioTree builds the fixture tree shared by S1-S5 (§8).
func newScenarioTree() *Tree[Interval[int], string] {
	t := NewTree[Interval[int], string](eqString)
	t.InsertInterval(ClosedInterval(16, 21), "a")
	t.InsertInterval(ClosedInterval(9, 10), "b")
	t.InsertInterval(ClosedInterval(28, 29), "c")
	t.InsertInterval(ClosedInterval(4, 5), "d")
	t.InsertInterval(Singleton(15), "e")
	t.InsertInterval(New(Open, 21, 23, Closed), "f")
	t.InsertInterval(New(Closed, 30, 32, Open), "g")
	t.InsertInterval(Singleton(24), "h")
	t.InsertInterval(Singleton(40), "i")
	return t
}

func searchStrings(t *Tree[Interval[int], string], q Interval[int]) []string {
	var out []string
	for _, p := range t.Search(q) {
		out = append(out, p.Key.String()+"->"+p.Value)
	}
	return out
}

func TestScenarioS1_ExtendAndAbsorb(t *testing.T) {
	tree := newScenarioTree()
	tree.InsertInterval(ClosedInterval(22, 30), "g")

	require.NoError(t, tree.checkInvariants())

	assert.Equal(t, []string{"[4,5]->d"}, searchStrings(tree, ClosedInterval(4, 5)))
	assert.Equal(t, []string{"(21,22)->f"}, searchStrings(tree, New(Open, 21, 22, Open)))
	assert.Equal(t, []string{"[22,32)->g"}, searchStrings(tree, New(Closed, 22, 32, Open)))
	assert.Equal(t, []string{"{40}->i"}, searchStrings(tree, Singleton(40)))
	assert.Equal(t, []string{"{24}->g"}, searchStrings(tree, Singleton(24)))
	assert.Equal(t, []string{"[28,29]->g"}, searchStrings(tree, ClosedInterval(28, 29)))
}

func TestScenarioS2_SplitAroundReplacement(t *testing.T) {
	tree := newScenarioTree()
	tree.InsertInterval(ClosedInterval(18, 20), "j")

	require.NoError(t, tree.checkInvariants())

	union := tree.Find("a")
	require.Len(t, union, 2)
	assert.Equal(t, "[16,18)", union[0].String())
	assert.Equal(t, "(20,21]", union[1].String())
	assert.Equal(t, []string{"[18,20]->j"}, searchStrings(tree, ClosedInterval(18, 20)))
}

func TestScenarioS3_TruncateThenExtend(t *testing.T) {
	tree := newScenarioTree()
	tree.InsertInterval(ClosedInterval(29, 32), "g")

	require.NoError(t, tree.checkInvariants())

	assert.Equal(t, []string{"[28,29)->c"}, searchStrings(tree, New(Closed, 28, 29, Open)))
	assert.Equal(t, []string{"[29,32]->g"}, searchStrings(tree, ClosedInterval(29, 32)))
	assert.Equal(t, []string{"{40}->i"}, searchStrings(tree, Singleton(40)))
}

func TestScenarioS4_RangeDeleteTruncates(t *testing.T) {
	tree := newScenarioTree()
	tree.DeleteInterval(ClosedInterval(18, 22))

	require.NoError(t, tree.checkInvariants())

	assert.Equal(t, []string{"[16,18)->a"}, searchStrings(tree, New(Closed, 16, 18, Open)))
	assert.Equal(t, []string{"(22,23]->f"}, searchStrings(tree, New(Open, 22, 23, Closed)))
	assert.Empty(t, searchStrings(tree, ClosedInterval(18, 22)))
}

func TestScenarioS5_Search(t *testing.T) {
	tree := newScenarioTree()
	got := searchStrings(tree, ClosedInterval(14, 25))
	assert.Equal(t, []string{
		"{15}->e",
		"[16,21]->a",
		"(21,23]->f",
		"{24}->h",
	}, got)
}

func TestScenarioS6_ContainedSameValueAbsorbed(t *testing.T) {
	tree := NewTree[Interval[int], string](eqString)
	tree.InsertInterval(ClosedInterval(0, 2), "a")
	tree.InsertInterval(ClosedInterval(0, 1), "a")

	require.NoError(t, tree.checkInvariants())
	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, []string{"[0,2]->a"}, searchStrings(tree, ClosedInterval(0, 2)))
}
