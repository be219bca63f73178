package seq

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/matthiasbeyer/filters/pkg/filter"
)

func TestFilter(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}

	inRange := filter.FuncOf(func(a int) bool { return a > 5 }).
		And(filter.Func[int](func(a int) bool { return a < 15 }))

	got := slices.Collect(Filter(slices.Values(values), inRange))

	assert.Equal(t, []int{6, 7, 8, 9, 10, 11, 12, 13, 14}, got)
}

func TestFilter_Lazy(t *testing.T) {
	var produced int
	naturals := func(yield func(int) bool) {
		for i := 0; ; i++ {
			produced++
			if !yield(i) {
				return
			}
		}
	}

	even := filter.FuncOf(func(a int) bool { return a%2 == 0 })

	var got []int
	for v := range Filter(iter.Seq[int](naturals), even) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}

	assert.Equal(t, []int{0, 2, 4}, got)
	assert.Equal(t, 5, produced)
}

// codeErr carries a numeric code so error entries can be filtered by value.
type codeErr struct {
	code int
}

func (e codeErr) Error() string { return fmt.Sprintf("code %d", e.code) }

type entry struct {
	value int
	err   error
}

func entriesSeq(entries []entry) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for _, e := range entries {
			if !yield(e.value, e.err) {
				return
			}
		}
	}
}

func collect2(src iter.Seq2[int, error]) []entry {
	var out []entry
	for v, err := range src {
		out = append(out, entry{value: v, err: err})
	}
	return out
}

func TestFilterOks(t *testing.T) {
	src := []entry{
		{value: 1}, {err: codeErr{code: 2}},
		{value: 3}, {err: codeErr{code: 4}},
		{value: 5}, {err: codeErr{code: 6}},
		{value: 7}, {err: codeErr{code: 8}},
		{value: 9}, {err: codeErr{code: 0}},
	}

	gtFive := filter.FuncOf(func(a int) bool { return a > 5 })

	got := collect2(FilterOks(entriesSeq(src), gtFive))

	assert.Equal(t, []entry{
		{err: codeErr{code: 2}}, {err: codeErr{code: 4}}, {err: codeErr{code: 6}},
		{value: 7}, {err: codeErr{code: 8}}, {value: 9}, {err: codeErr{code: 0}},
	}, got)
}

func TestFilterErrs(t *testing.T) {
	src := []entry{
		{value: 1}, {err: codeErr{code: 2}},
		{value: 3}, {err: codeErr{code: 4}},
		{value: 5}, {err: codeErr{code: 6}},
		{value: 7}, {err: codeErr{code: 8}},
		{value: 9}, {err: codeErr{code: 0}},
	}

	bigCode := filter.FuncOf(func(err error) bool {
		ce, ok := err.(codeErr)
		return ok && ce.code > 5
	})

	got := collect2(FilterErrs(entriesSeq(src), bigCode))

	assert.Equal(t, []entry{
		{value: 1}, {value: 3}, {value: 5},
		{err: codeErr{code: 6}}, {value: 7}, {err: codeErr{code: 8}}, {value: 9},
	}, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 50).Draw(t, "values")
		limit := rapid.IntRange(-100, 100).Draw(t, "limit")

		f := filter.FuncOf(func(a int) bool { return a > limit })

		var want []int
		for _, v := range values {
			if f.Evaluate(v) {
				want = append(want, v)
			}
		}

		got := slices.Collect(Filter(slices.Values(values), f))
		if !slices.Equal(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})
}
