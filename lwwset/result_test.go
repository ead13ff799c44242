package lwwset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lwwgraph/element"
	"github.com/katalvlaran/lwwgraph/lwwset"
)

func TestMergeResult_AccessorsReturnCopies(t *testing.T) {
	adds := map[string]element.Element{"vB": vtx(1, "B"), "vA": vtx(1, "A")}
	rems := map[string]element.Element{"vC": vtx(2, "C")}
	res := lwwset.NewMergeResult(adds, rems)

	delete(adds, "vA")
	assert.Len(t, res.EffectiveAdditions(), 2, "constructor copies its input")

	got := res.EffectiveAdditions()
	delete(got, "vB")
	assert.Len(t, res.EffectiveAdditions(), 2, "accessor hands out copies")

	assert.Equal(t, []string{"vC"}, keysOf(res.EffectiveRemovals()))
	assert.False(t, res.Empty())
}

func TestMergeResult_ListsAreKeyOrdered(t *testing.T) {
	res := lwwset.NewMergeResult(
		map[string]element.Element{"vB": vtx(1, "B"), "vA": vtx(1, "A")},
		nil,
	)

	list := res.AdditionList()
	if assert.Len(t, list, 2) {
		assert.Equal(t, "vA", list[0].UniqueValue())
		assert.Equal(t, "vB", list[1].UniqueValue())
	}
	assert.Empty(t, res.RemovalList())
}

func TestMergeResult_Empty(t *testing.T) {
	assert.True(t, lwwset.NewMergeResult(nil, nil).Empty())
}
