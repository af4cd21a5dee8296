package mixer_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringmix/mixer"
	"github.com/katalvlaran/ringmix/ring"
)

// sample is the seven-element example sequence.
var sample = []int64{1, 2, -3, 3, -2, 0, 4}

// naiveMix is the O(N²) slice model: each move removes the element and
// reinserts it (pos+amount) mod (N-1) slots further on.
func naiveMix(values []int64, key int64, rounds int) []int64 {
	n := len(values)
	dec := make([]int64, n)
	idx := make([]int, n)
	for i, v := range values {
		dec[i] = v * key
		idx[i] = i
	}
	for r := 0; r < rounds; r++ {
		for cur := 0; cur < n; cur++ {
			pos := 0
			for idx[pos] != cur {
				pos++
			}
			idx = append(idx[:pos], idx[pos+1:]...)
			at := (pos + mixer.Amount(dec[cur], n)) % (n - 1)
			idx = append(idx[:at], append([]int{cur}, idx[at:]...)...)
		}
	}
	out := make([]int64, n)
	for i, node := range idx {
		out[i] = dec[node]
	}

	return out
}

func TestSolve_SampleScenarios(t *testing.T) {
	sum, err := mixer.Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum)

	sum, err = mixer.Solve(sample, mixer.PartB.Options()...)
	require.NoError(t, err)
	assert.Equal(t, int64(1623178306), sum)
}

func TestMixer_SampleOrders(t *testing.T) {
	m, err := mixer.New(sample)
	require.NoError(t, err)
	require.NoError(t, m.Mix())
	assert.Equal(t, []int64{0, 3, -2, 1, 2, -3, 4}, m.Values())

	coords, err := m.GroveCoordinates()
	require.NoError(t, err)
	assert.Equal(t, [3]int64{4, -3, 2}, coords)

	m, err = mixer.New(sample, mixer.PartB.Options()...)
	require.NoError(t, err)
	require.NoError(t, m.Mix())
	assert.Equal(t, 10, m.RoundsDone())
	assert.Equal(t, []int64{0, -2434767459, 1623178306, 3246356612, -1623178306, 2434767459, 811589153}, m.Values())
}

func TestAmount_Boundary(t *testing.T) {
	assert.Equal(t, 4, mixer.Amount(-2, 7), "-2 on N=7 moves like +4")
	assert.Equal(t, 0, mixer.Amount(6, 7))
	assert.Equal(t, 0, mixer.Amount(-6, 7))
	assert.Equal(t, 3, mixer.Amount(-3, 7))
	assert.Equal(t, 0, mixer.Amount(12345, 1))
	assert.Equal(t, 0, mixer.Amount(-7, 2))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		n := rng.Intn(5000) + 2
		v := rng.Int63n(1<<31) - 1<<30
		a := mixer.Amount(v*mixer.PartBDecryptionKey, n)
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, n-1)
	}
}

func TestMixer_MatchesNaiveModel(t *testing.T) {
	rng := rand.New(rand.NewSource(2022))
	for trial := 0; trial < 30; trial++ {
		n := rng.Intn(60) + 3
		values := make([]int64, n)
		for i := range values {
			values[i] = rng.Int63n(2001) - 1000
			if values[i] == 0 {
				values[i] = 1
			}
		}
		values[rng.Intn(n)] = 0

		for _, part := range []mixer.Part{mixer.PartA, mixer.PartB} {
			m, err := mixer.New(values, part.Options()...)
			require.NoError(t, err)
			require.NoError(t, m.Mix())

			rounds := 1
			key := int64(1)
			if part == mixer.PartB {
				rounds, key = mixer.PartBRounds, mixer.PartBDecryptionKey
			}
			want := naiveMix(values, key, rounds)
			assert.Equal(t, ring.MinimalRotation(want), ring.MinimalRotation(m.Values()), "trial=%d part=%s", trial, part)

			// the naive order, rotated to start at zero, gives the coordinates directly
			z := 0
			for want[z] != 0 {
				z++
			}
			var wantSum int64
			for _, off := range mixer.GroveOffsets {
				wantSum += want[(z+off)%n]
			}
			sum, err := m.GroveSum()
			require.NoError(t, err)
			assert.Equal(t, wantSum, sum, "trial=%d part=%s", trial, part)
		}
	}
}

func TestMixer_PermutationAndDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([]int64, 500)
	for i := range values {
		values[i] = rng.Int63n(20001) - 10000
	}

	run := func() []int64 {
		m, err := mixer.New(values, mixer.PartB.Options()...)
		require.NoError(t, err)
		require.NoError(t, m.Mix())

		return m.Values()
	}
	first, second := run(), run()
	assert.Equal(t, first, second, "same input and options must give the same order")

	got := append([]int64{}, first...)
	want := make([]int64, len(values))
	for i, v := range values {
		want[i] = v * mixer.PartBDecryptionKey
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	assert.Equal(t, want, got, "mixing only permutes")
}

func TestMixer_JumpDoesNotChangeResult(t *testing.T) {
	values := []int64{5, -17, 0, 33, 8, -1, 12, 9, -40, 2, 7, 100}
	ref, err := mixer.Solve(values, mixer.PartB.Options()...)
	require.NoError(t, err)
	for j := 1; j <= len(values)-2; j++ {
		opts := append(mixer.PartB.Options(), mixer.WithJump(j))
		got, err := mixer.Solve(values, opts...)
		require.NoError(t, err)
		assert.Equal(t, ref, got, "J=%d", j)
	}
}

func TestMixer_ZeroDisplacementIsNoop(t *testing.T) {
	// every value is a multiple of N-1, so nothing moves
	values := []int64{0, 4, -8, 12, 400}
	m, err := mixer.New(values, mixer.WithRounds(3))
	require.NoError(t, err)
	require.NoError(t, m.Mix())
	assert.Equal(t, values, m.Values())
}

func TestMixer_WrapAroundOffsets(t *testing.T) {
	// with nothing moving, offsets are plain (off mod 7) indexes
	values := []int64{0, 12, 24, 36, 48, 60, 72}
	m, err := mixer.New(values)
	require.NoError(t, err)
	require.NoError(t, m.Mix())
	coords, err := m.GroveCoordinates()
	require.NoError(t, err)
	assert.Equal(t, [3]int64{values[1000%7], values[2000%7], values[3000%7]}, coords)
}

func TestNew_Errors(t *testing.T) {
	_, err := mixer.New(nil)
	assert.ErrorIs(t, err, mixer.ErrEmptyInput)

	_, err = mixer.New(sample, mixer.WithRounds(0))
	assert.ErrorIs(t, err, mixer.ErrBadRounds)

	_, err = mixer.New(sample, mixer.WithDecryptionKey(0))
	assert.ErrorIs(t, err, mixer.ErrBadKey)

	_, err = mixer.New(sample, mixer.WithJump(6))
	assert.ErrorIs(t, err, ring.ErrBadJump)

	_, err = mixer.Solve(nil)
	assert.ErrorIs(t, err, mixer.ErrEmptyInput)

	_, err = mixer.New([]int64{20000000000, 0, 1}, mixer.WithDecryptionKey(mixer.PartBDecryptionKey))
	require.ErrorIs(t, err, mixer.ErrValueOverflow)
	assert.Contains(t, err.Error(), "index 0")

	_, err = mixer.Solve([]int64{1, 0, -20000000000}, mixer.PartB.Options()...)
	assert.ErrorIs(t, err, mixer.ErrValueOverflow)

	_, err = mixer.New([]int64{0, math.MinInt64}, mixer.WithDecryptionKey(-1))
	assert.ErrorIs(t, err, mixer.ErrValueOverflow)
}

func TestGroveSum_Overflow(t *testing.T) {
	// N=3: offsets 1000, 2000, 3000 land on positions 1, 2, 0 after the zero
	big := int64(math.MaxInt64 - 1)
	m, err := mixer.New([]int64{0, big, big})
	require.NoError(t, err)
	_, err = m.GroveCoordinates()
	require.NoError(t, err)
	_, err = m.GroveSum()
	assert.ErrorIs(t, err, mixer.ErrValueOverflow)

	m, err = mixer.New([]int64{0, math.MaxInt64, math.MinInt64})
	require.NoError(t, err)
	sum, err := m.GroveSum()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), sum)
}

func TestGroveSum_ZeroLookup(t *testing.T) {
	m, err := mixer.New([]int64{1, 2, 3})
	require.NoError(t, err)
	_, err = m.GroveSum()
	assert.ErrorIs(t, err, mixer.ErrNoZero)
	assert.Equal(t, []int64{1, 2, 3}, m.Values(), "without a zero the order starts at the first element")

	m, err = mixer.New([]int64{0, 5, 0, 1})
	require.NoError(t, err)
	_, err = m.GroveCoordinates()
	assert.ErrorIs(t, err, mixer.ErrMultipleZeros)

	_, err = mixer.Solve([]int64{4, 5, 6}, mixer.PartB.Options()...)
	assert.ErrorIs(t, err, mixer.ErrNoZero)
}

func TestGroveSum_TinyInputs(t *testing.T) {
	sum, err := mixer.Solve([]int64{0})
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)

	// every offset is even, so a two-element ring always lands back on zero
	sum, err = mixer.Solve([]int64{0, 9}, mixer.PartB.Options()...)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)

	// 2 and 4 are multiples of N-1, so nothing moves; offsets mod 3 are 1, 2, 0
	sum, err = mixer.Solve([]int64{0, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, int64(6), sum)
}

func TestMix_OnRoundHook(t *testing.T) {
	var seen []int
	m, err := mixer.New(sample, mixer.WithRounds(4), mixer.WithOnRound(func(round int) error {
		seen = append(seen, round)
		return nil
	}))
	require.NoError(t, err)
	require.NoError(t, m.Mix())
	assert.Equal(t, []int{1, 2, 3, 4}, seen)

	stop := errors.New("stop")
	m, err = mixer.New(sample, mixer.WithRounds(4), mixer.WithOnRound(func(round int) error {
		if round == 2 {
			return stop
		}
		return nil
	}))
	require.NoError(t, err)
	assert.ErrorIs(t, m.Mix(), stop)
	assert.Equal(t, 2, m.RoundsDone())
}

func TestMix_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m, err := mixer.New(sample, mixer.WithRounds(10), mixer.WithContext(ctx),
		mixer.WithOnRound(func(round int) error {
			if round == 3 {
				cancel()
			}
			return nil
		}))
	require.NoError(t, err)
	assert.ErrorIs(t, m.Mix(), context.Canceled)
	assert.Equal(t, 3, m.RoundsDone())
}

func TestDefaultOptions(t *testing.T) {
	m, err := mixer.New(sample, mixer.WithContext(nil))
	require.NoError(t, err)
	o := m.Options()
	assert.NotNil(t, o.Ctx)
	assert.Equal(t, int64(1), o.DecryptionKey)
	assert.Equal(t, 1, o.Rounds)
	assert.Equal(t, 7, m.Len())
	assert.Equal(t, 1, m.Jump())
}

func TestParsePart(t *testing.T) {
	for in, want := range map[string]mixer.Part{"a": mixer.PartA, "A": mixer.PartA, " b\n": mixer.PartB, "B": mixer.PartB} {
		got, err := mixer.ParsePart(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"", "c", "ab", "1"} {
		_, err := mixer.ParsePart(in)
		assert.ErrorIs(t, err, mixer.ErrUnknownPart, "input %q", in)
	}
	assert.Equal(t, "a", mixer.PartA.String())
	assert.Equal(t, "b", mixer.PartB.String())
	assert.Equal(t, "Part(7)", mixer.Part(7).String())
}
