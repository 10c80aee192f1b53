package linq

import (
	"slices"
	"testing"
)

func TestFrom_Order(t *testing.T) {
	var got []string
	From(&generalPeople).Each(func(p person) {
		got = append(got, p.name)
	})
	want := []string{"P1", "P2", "P3", "P4", "P5", "P6"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFrom_NilPanics(t *testing.T) {
	expectPanic(t, func() {
		From[[]int](nil)
	})
}

func TestFrom_ObservesMutation(t *testing.T) {
	nums := []int{1, 2, 3, 4}
	r := From(&nums)

	if got := r.ToSlice(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Fatalf("got %v", got)
	}

	nums = append(nums, 5)
	nums[0] = 9

	if got := r.ToSlice(); !slices.Equal(got, []int{9, 2, 3, 4, 5}) {
		t.Errorf("mutation not observed: got %v", got)
	}
}

func TestFromMutable_NilPanics(t *testing.T) {
	expectPanic(t, func() {
		FromMutable[[]int](nil)
	})
}

func TestFromMutable_InPlaceMutation(t *testing.T) {
	nums := []int{1, 2, 3, 4}

	FromMutable(&nums).
		Where(func(p *int) bool { return *p%2 == 0 }).
		Each(func(p *int) { *p *= 10 })

	if !slices.Equal(nums, []int{1, 20, 3, 40}) {
		t.Errorf("got %v", nums)
	}
}

func TestFromCopy_IgnoresLaterMutation(t *testing.T) {
	nums := []int{1, 2, 3, 4}
	r := FromCopy(nums)

	nums[0] = 9
	nums = append(nums, 5)
	_ = nums

	if got := r.ToSlice(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("copy observed source mutation: got %v", got)
	}
}

func TestFromValues(t *testing.T) {
	if got := FromValues("a", "b", "c").ToSlice(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("got %v", got)
	}
	if got := FromValues[int]().ToSlice(); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestFromSeq(t *testing.T) {
	r := FromSeq(slices.Values([]int{1, 2, 3}))

	// Two full traversals: the sequence must be restartable.
	for range 2 {
		if got := r.ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
			t.Errorf("got %v", got)
		}
	}
}
