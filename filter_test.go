package linq

import (
	"fmt"
	"slices"
	"testing"
)

func TestWhere_Simple(t *testing.T) {
	var lines []string
	From(&generalPeople).
		Where(func(p person) bool { return p.age > 20 }).
		Each(func(p person) {
			lines = append(lines, fmt.Sprintf("%s: %d", p.name, p.age))
		})

	want := []string{"P2: 21", "P3: 22", "P6: 391"}
	if !slices.Equal(lines, want) {
		t.Errorf("got %v, want %v", lines, want)
	}
}

func TestWhere_Compound(t *testing.T) {
	got := From(&generalPeople).
		Where(func(p person) bool {
			return (p.age > 20 && p.age < 391) || p.name == "P5"
		}).
		ToSlice()

	if len(got) != 3 {
		t.Fatalf("expected 3 people, got %d", len(got))
	}
	if got[0].name != "P2" || got[1].name != "P3" || got[2].name != "P5" {
		t.Errorf("got %v", got)
	}
}

func TestWhere_CountMatchesPredicateCount(t *testing.T) {
	r := FromTo(1, 100)
	pred := func(v int) bool { return v%7 == 0 }

	if a, b := r.Where(pred).Count(), r.Count(pred); a != b {
		t.Errorf("Where().Count() = %d, Count(pred) = %d", a, b)
	}
}

func TestDistinct(t *testing.T) {
	nums := []int{1, 2, 3, 3, 5, 4, 5, 6, 7}
	got := Distinct(From(&nums)).ToSlice()
	want := []int{1, 2, 3, 5, 4, 6, 7}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDistinct_NoDuplicatesInOutput(t *testing.T) {
	got := Distinct(FromValues("a", "b", "a", "c", "b", "a")).ToSlice()
	for i, v := range got {
		for _, w := range got[i+1:] {
			if v == w {
				t.Fatalf("duplicate %q in output %v", v, got)
			}
		}
	}
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("got %v", got)
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []int
	}{
		{"fewer than source", 3, []int{1, 2, 3}},
		{"exactly source", 5, []int{1, 2, 3, 4, 5}},
		{"more than source", 10, []int{1, 2, 3, 4, 5}},
		{"zero", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTo(1, 5).Take(tt.count).ToSlice()
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTakeWhile(t *testing.T) {
	got := FromValues(1, 2, 9, 3, 4).
		TakeWhile(func(v int) bool { return v < 5 }).
		ToSlice()
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v", got)
	}
}

func TestTakeWhile_Idempotent(t *testing.T) {
	pred := func(v int) bool { return v < 5 }
	once := FromTo(0, 10).TakeWhile(pred).ToSlice()
	twice := FromTo(0, 10).TakeWhile(pred).TakeWhile(pred).ToSlice()
	if !slices.Equal(once, twice) {
		t.Errorf("second application changed output: %v vs %v", once, twice)
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []int
	}{
		{"some", 2, []int{3, 4, 5}},
		{"all", 5, nil},
		{"beyond length", 10, nil},
		{"zero", 0, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTo(1, 5).Skip(tt.count).ToSlice()
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSkipWhile(t *testing.T) {
	got := FromTo(0, 10).
		SkipWhile(func(v int) bool { return v < 5 }).
		ToSlice()
	if !slices.Equal(got, []int{5, 6, 7, 8, 9, 10}) {
		t.Errorf("got %v", got)
	}

	// The predicate applies to the leading run only; later matches pass.
	got = FromValues(1, 6, 2, 7).
		SkipWhile(func(v int) bool { return v < 5 }).
		ToSlice()
	if !slices.Equal(got, []int{6, 2, 7}) {
		t.Errorf("got %v", got)
	}
}

func TestSkipWhile_Idempotent(t *testing.T) {
	pred := func(v int) bool { return v < 5 }
	once := FromTo(0, 10).SkipWhile(pred).ToSlice()
	twice := FromTo(0, 10).SkipWhile(pred).SkipWhile(pred).ToSlice()
	if !slices.Equal(once, twice) {
		t.Errorf("second application changed output: %v vs %v", once, twice)
	}
}

func TestSkipWhile_AllMatch(t *testing.T) {
	got := FromTo(1, 5).SkipWhile(func(int) bool { return true }).ToSlice()
	if len(got) != 0 {
		t.Errorf("got %v", got)
	}
}
