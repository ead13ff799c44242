package lwwset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lwwgraph/element"
	"github.com/katalvlaran/lwwgraph/lwwset"
)

// MergeSuite exercises Set.Merge effectiveness reporting and its algebra.
type MergeSuite struct {
	suite.Suite
}

func TestMergeSuite(t *testing.T) {
	suite.Run(t, new(MergeSuite))
}

// founding returns a set holding: A,B present; C added then removed;
// D added, removed, re-added.
func founding() *lwwset.Set {
	s := lwwset.New()
	s.Add(vtx(10, "A"))
	s.Add(vtx(10, "B"))
	s.Add(vtx(10, "C"))
	s.Remove(vtx(11, "C"))
	s.Add(vtx(10, "D"))
	s.Remove(vtx(11, "D"))
	s.Add(vtx(12, "D"))

	return s
}

func (s *MergeSuite) TestMergeOnEmptySet() {
	set := lwwset.New()
	adds := []element.Element{edge(1, "A", "B"), edge(1, "B", "C"), vtx(1, "A")}
	removes := []element.Element{edge(1, "X", "Y"), vtx(1, "Z")}

	res := set.Merge(adds, removes)
	require.Equal(s.T(), []string{"eA,B", "eB,C", "vA"}, keysOf(res.EffectiveAdditions()))
	require.Empty(s.T(), res.EffectiveRemovals(), "removals of never-seen elements are inert")
	require.Len(s.T(), set.Elements(), 3)

	again := set.Merge(adds, removes)
	require.True(s.T(), again.Empty(), "re-merge must report nothing")
	require.Len(s.T(), set.Elements(), 3)
}

func (s *MergeSuite) TestAdditionsOfPresentElements() {
	set := founding()

	res := set.Merge([]element.Element{vtx(10, "A"), vtx(5, "B"), vtx(20, "B"), vtx(1, "N")}, nil)

	require.Equal(s.T(), []string{"vB", "vN"}, keysOf(res.EffectiveAdditions()))
	got := res.EffectiveAdditions()["vB"]
	require.True(s.T(), got.Timestamp().Equal(at(20)), "duplicates fold to the newest record")
	require.Empty(s.T(), res.EffectiveRemovals())
}

func (s *MergeSuite) TestAdditionOfRemovedElement() {
	set := founding()

	res := set.Merge([]element.Element{vtx(30, "C")}, nil)
	require.Equal(s.T(), []string{"vC"}, keysOf(res.EffectiveAdditions()))
	require.True(s.T(), set.Exists(vtx(0, "C")))
}

func (s *MergeSuite) TestStaleAdditionOfRemovedElementIsNotEffective() {
	set := founding()

	res := set.Merge([]element.Element{vtx(3, "C")}, nil)
	require.True(s.T(), res.Empty())
	require.False(s.T(), set.Exists(vtx(0, "C")))
}

func (s *MergeSuite) TestRemovals() {
	set := founding()

	res := set.Merge(nil, []element.Element{
		vtx(20, "A"), // present → effective
		vtx(20, "C"), // absent, deeper removal → effective
		vtx(11, "C"), // duplicate of the latest removal, folded away
		vtx(20, "Q"), // never seen → inert
		vtx(5, "B"),  // older than B's addition → no change
	})

	require.Equal(s.T(), []string{"vA", "vC"}, keysOf(res.EffectiveRemovals()))
	require.Empty(s.T(), res.EffectiveAdditions())
	require.False(s.T(), set.Exists(vtx(0, "A")))
	require.True(s.T(), set.Exists(vtx(0, "B")))
}

func (s *MergeSuite) TestShallowRemovalOfAbsentElement() {
	set := founding()

	res := set.Merge(nil, []element.Element{vtx(11, "C"), vtx(2, "C")})
	require.True(s.T(), res.Empty())
}

func (s *MergeSuite) TestNeutralizedAddThenRemove() {
	set := founding()

	res := set.Merge(
		[]element.Element{vtx(20, "N"), vtx(21, "M")},
		[]element.Element{vtx(25, "N")},
	)

	require.Equal(s.T(), []string{"vM"}, keysOf(res.EffectiveAdditions()))
	require.Empty(s.T(), res.EffectiveRemovals())
	require.False(s.T(), set.Exists(vtx(0, "N")))
	require.Len(s.T(), set.Additions(), 7, "neutralized records are still absorbed")
	require.Len(s.T(), set.Removals(), 3)
}

func (s *MergeSuite) TestNeutralizedRemoveThenAdd() {
	set := founding()

	res := set.Merge(
		[]element.Element{vtx(30, "A")},
		[]element.Element{vtx(20, "A"), vtx(20, "B")},
	)

	require.Empty(s.T(), res.EffectiveAdditions())
	require.Equal(s.T(), []string{"vB"}, keysOf(res.EffectiveRemovals()))
	require.True(s.T(), set.Exists(vtx(0, "A")))
	require.False(s.T(), set.Exists(vtx(0, "B")))
}

func (s *MergeSuite) TestPresentElementAddedThenRemovedLaterInBatch() {
	set := founding()

	// A present since 10; the batch re-adds at 20 and removes at 30: A goes away.
	res := set.Merge([]element.Element{vtx(20, "A")}, []element.Element{vtx(30, "A")})

	require.Empty(s.T(), res.EffectiveAdditions())
	require.Equal(s.T(), []string{"vA"}, keysOf(res.EffectiveRemovals()))
	require.False(s.T(), set.Exists(vtx(0, "A")))
}

func (s *MergeSuite) TestTieInsideBatch() {
	set := lwwset.New()

	res := set.Merge([]element.Element{vtx(5, "A")}, []element.Element{vtx(5, "A")})
	require.True(s.T(), res.Empty())
	require.False(s.T(), set.Exists(vtx(5, "A")))
}

func (s *MergeSuite) TestResultListsFollowBatchOrder() {
	set := lwwset.New()

	res := set.Merge([]element.Element{vtx(1, "Z"), vtx(1, "A"), vtx(1, "M")}, nil)
	var order []string
	for _, e := range res.AdditionList() {
		order = append(order, e.UniqueValue())
	}
	require.Equal(s.T(), []string{"vZ", "vA", "vM"}, order)
	require.Empty(s.T(), res.RemovalList())
}

// TestReportsTrackResolvedTransitions checks, over random batches, that every
// membership flip is reported in the right direction and nothing reported
// contradicts the post-merge state.
func (s *MergeSuite) TestReportsTrackResolvedTransitions() {
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		set := build(randomBatch(rng, 30))
		before := presentKeys(set)

		b := randomBatch(rng, 20)
		res := set.Merge(b.adds, b.removes)
		after := presentKeys(set)

		adds, rems := res.EffectiveAdditions(), res.EffectiveRemovals()
		for k := range after {
			if !before[k] {
				require.Contains(s.T(), adds, k, "seed %d: %s appeared unreported", seed, k)
			}
		}
		for k := range before {
			if !after[k] {
				require.Contains(s.T(), rems, k, "seed %d: %s vanished unreported", seed, k)
			}
		}
		for k := range adds {
			require.True(s.T(), after[k], "seed %d: reported addition %s is absent", seed, k)
			require.NotContains(s.T(), rems, k, "seed %d: %s reported both ways", seed, k)
		}
		for k := range rems {
			require.False(s.T(), after[k], "seed %d: reported removal %s is present", seed, k)
		}
	}
}

func (s *MergeSuite) TestIdempotence() {
	for seed := int64(1); seed <= 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		set := build(randomBatch(rng, 30))
		b := randomBatch(rng, 20)

		set.Merge(b.adds, b.removes)
		want := membership(set)
		for i := 0; i < 3; i++ {
			res := set.Merge(b.adds, b.removes)
			require.True(s.T(), res.Empty(), "seed %d: repeated merge reported changes", seed)
			require.Equal(s.T(), want, membership(set), "seed %d", seed)
		}
	}
}

func (s *MergeSuite) TestCommutativity() {
	for seed := int64(1); seed <= 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		base := randomBatch(rng, 20)
		b := randomBatch(rng, 15)
		c := randomBatch(rng, 15)

		left := build(base)
		left.Merge(b.adds, b.removes)
		left.Merge(c.adds, c.removes)

		right := build(base)
		right.Merge(c.adds, c.removes)
		right.Merge(b.adds, b.removes)

		require.Equal(s.T(), membership(left), membership(right), "seed %d", seed)

		// Replica direction: A ⊔ B on A's side equals A ⊔ B on B's side.
		replicaA := build(b)
		replicaB := build(c)
		replicaA.Merge(c.adds, c.removes)
		replicaB.Merge(b.adds, b.removes)
		require.Equal(s.T(), membership(replicaA), membership(replicaB), "seed %d", seed)
	}
}

func (s *MergeSuite) TestAssociativity() {
	for seed := int64(1); seed <= 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		a := build(randomBatch(rng, 20))
		b := randomBatch(rng, 15)
		c := randomBatch(rng, 15)

		// (A ⊔ B) ⊔ C
		left := clone(a)
		left.Merge(b.adds, b.removes)
		left.Merge(c.adds, c.removes)

		// A ⊔ (B ⊔ C)
		bc := build(b)
		bc.Merge(c.adds, c.removes)
		right := clone(a)
		right.Merge(bc.Additions(), bc.Removals())

		require.Equal(s.T(), membership(left), membership(right), "seed %d", seed)
	}
}

// TestReAddOverOlderRemovalIsReported pins a removed key whose batch carries
// a removal and a newer re-addition, both newer than the stored removal.
// Stage 5 cancels the pair; the key still comes back, so it is reported as
// an addition.
func (s *MergeSuite) TestReAddOverOlderRemovalIsReported() {
	set := founding()
	s.Require().False(set.Exists(vtx(0, "C")))

	res := set.Merge([]element.Element{vtx(30, "C")}, []element.Element{vtx(20, "C")})

	s.True(set.Exists(vtx(0, "C")))
	s.Equal([]string{"vC"}, keysOf(res.EffectiveAdditions()))
	s.True(res.EffectiveAdditions()["vC"].Timestamp().Equal(at(30)))
	s.Empty(res.EffectiveRemovals())
}
