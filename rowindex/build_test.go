package rowindex

import (
	"slices"
	"testing"

	"github.com/forestrie/go-shipsearch/rule"
	"github.com/stretchr/testify/require"
)

func mustEvolver(t *testing.T, r rule.Rule, width int, sym rule.Symmetry) *rule.Evolver {
	ev, err := rule.NewEvolver(r, width, sym)
	require.NoError(t, err)
	return ev
}

func TestBuildCoversEveryLegalTripleOnce(t *testing.T) {
	for _, sym := range []rule.Symmetry{rule.Asymmetric, rule.Odd, rule.Even, rule.Gutter} {
		for width := 1; width <= 4; width++ {
			ev := mustEvolver(t, rule.Life, width, sym)
			x, err := Build(ev, WithReorder(false))
			require.NoError(t, err)

			want := make(map[uint32][]uint16)
			valid := 0
			n := uint32(1) << width
			for r1 := uint32(0); r1 < n; r1++ {
				for r2 := uint32(0); r2 < n; r2++ {
					for r3 := uint32(0); r3 < n; r3++ {
						r4, ok := ev.EvolveRow(r1, r2, r3)
						if !ok {
							continue
						}
						valid++
						key := x.Key(uint16(r1), uint16(r2), uint16(r4))
						want[key] = append(want[key], uint16(r3))
					}
				}
			}
			require.Equal(t, valid, x.Len(), "%s w%d", sym, width)

			keys := uint32(KeyCount(width))
			var next uint32
			for key := uint32(0); key < keys; key++ {
				start, count := x.Range(key)
				require.Equal(t, next, start, "ranges must be contiguous")
				next = start + count

				got := slices.Clone(x.Candidates(key))
				slices.Sort(got)
				exp := want[key]
				slices.Sort(exp)
				if len(exp) == 0 {
					require.True(t, x.Empty(key))
					continue
				}
				require.Equal(t, exp, got, "%s w%d key %d", sym, width, key)
			}
			require.Equal(t, uint32(x.Len()), next)
		}
	}
}

func TestBuildNaiveOrderPutsEmptyRowLast(t *testing.T) {
	ev := mustEvolver(t, rule.Life, 4, rule.Even)
	x, err := Build(ev, WithReorder(false))
	require.NoError(t, err)

	// r3 is enumerated in ascending order and ranges fill from the back
	c := x.Candidates(x.Key(0, 0, 0))
	require.NotEmpty(t, c)
	require.Equal(t, uint16(0), c[len(c)-1])
	for i := 1; i < len(c); i++ {
		require.Greater(t, c[i-1], c[i])
	}
}

func TestBuildReorderIsStablePermutationByFrequency(t *testing.T) {
	ev := mustEvolver(t, rule.Life, 4, rule.Odd)
	naive, err := Build(ev, WithReorder(false))
	require.NoError(t, err)
	sorted, err := Build(ev)
	require.NoError(t, err)
	require.Equal(t, naive.Len(), sorted.Len())

	freq := make([]int, 1<<4)
	n := uint32(1) << 4
	for r1 := uint32(0); r1 < n; r1++ {
		for r2 := uint32(0); r2 < n; r2++ {
			for r3 := uint32(0); r3 < n; r3++ {
				if r4, ok := ev.EvolveRow(r1, r2, r3); ok {
					freq[r4]++
				}
			}
		}
	}
	freq[0] = 0

	for key := uint32(0); key < uint32(KeyCount(4)); key++ {
		a := slices.Clone(naive.Candidates(key))
		b := slices.Clone(sorted.Candidates(key))
		for i := 1; i < len(b); i++ {
			require.GreaterOrEqual(t, freq[b[i-1]], freq[b[i]])
		}
		slices.Sort(a)
		slices.Sort(b)
		require.Equal(t, a, b)
	}

	// the empty row has frequency 0 and starts last, so it stays last
	c := sorted.Candidates(sorted.Key(0, 0, 0))
	require.Equal(t, uint16(0), c[len(c)-1])
}

func TestBuildBlankAbove(t *testing.T) {
	ev := mustEvolver(t, rule.Life, 3, rule.Asymmetric)
	x, err := Build(ev)
	require.NoError(t, err)
	n := uint32(1) << 3
	for r2 := uint32(0); r2 < n; r2++ {
		for r3 := uint32(0); r3 < n; r3++ {
			want, wantOK := ev.EvolveRow(0, r2, r3)
			got, ok := x.BlankAbove(uint16(r2), uint16(r3))
			require.Equal(t, wantOK, ok)
			if ok {
				require.Equal(t, uint16(want), got)
			}
		}
	}
}

func TestBuildWidthOne(t *testing.T) {
	for _, sym := range []rule.Symmetry{rule.Asymmetric, rule.Odd, rule.Even, rule.Gutter} {
		x, err := Build(mustEvolver(t, rule.Life, 1, sym))
		require.NoError(t, err)
		require.Equal(t, 1, x.Width())
		require.False(t, x.Empty(x.Key(0, 0, 0)), sym.String())
	}
}

func TestCheckWidth(t *testing.T) {
	require.ErrorIs(t, CheckWidth(0), ErrBadWidth)
	require.ErrorIs(t, CheckWidth(MaxWidth+1), ErrBadWidth)
	require.NoError(t, CheckWidth(6))
	require.Equal(t, uint64(1)<<18, KeyCount(6))
	require.Equal(t, (uint64(1)<<18+1)*4, StartsBytes(6))
}
