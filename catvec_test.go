package catvec

import "testing"

func TestNewFromAndToSlice(t *testing.T) {
	values := []int{10, 20, 30, 40, 50}
	v, err := From[int](Config{Order: 5}, values)
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	if v.Len() != len(values) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(values))
	}
	got := v.ToSlice()
	if len(got) != len(values) {
		t.Fatalf("ToSlice() length = %d, want %d", len(got), len(values))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("ToSlice()[%d] = %d, want %d", i, got[i], values[i])
		}
	}
	if err := v.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants failed: %v", err)
	}
}

func TestPushBackAndInsertAt(t *testing.T) {
	v, err := New[string](Config{Order: 4})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, s := range []string{"a", "b", "c"} {
		v, err = v.PushBack(s)
		if err != nil {
			t.Fatalf("PushBack failed: %v", err)
		}
	}
	v, err = v.InsertAt(1, "x")
	if err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}
	want := []string{"a", "x", "b", "c"}
	got := v.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("ToSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSliceIntoAndAppend(t *testing.T) {
	a, err := From[int](Config{Order: 4}, []int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	mid, err := a.SliceInto(2, 4)
	if err != nil {
		t.Fatalf("SliceInto failed: %v", err)
	}
	if got := mid.ToSlice(); len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("SliceInto result = %v, want [3 4]", got)
	}

	b, err := From[int](Config{Order: 4}, []int{7, 8, 9})
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	combined, err := a.Append(b)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := combined.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("Append result = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Append result[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEqual(t *testing.T) {
	a, _ := From[int](Config{Order: 4}, []int{1, 2, 3})
	b, _ := From[int](Config{Order: 8}, []int{1, 2, 3})
	c, _ := From[int](Config{Order: 4}, []int{1, 2, 4})
	if !Equal(a, b) {
		t.Fatal("Equal(a, b) = false, want true (same content, different order)")
	}
	if Equal(a, c) {
		t.Fatal("Equal(a, c) = true, want false")
	}
}

func TestGetMutIsolatesOriginal(t *testing.T) {
	v, _ := From[int](Config{Order: 4}, []int{1, 2, 3})
	updated, ptr, err := v.GetMut(1)
	if err != nil {
		t.Fatalf("GetMut failed: %v", err)
	}
	*ptr = 99
	if got, _ := updated.Get(1); got != 99 {
		t.Fatalf("updated.Get(1) = %d, want 99", got)
	}
	if got, _ := v.Get(1); got != 2 {
		t.Fatalf("original v.Get(1) = %d, want 2 (untouched)", got)
	}
}

func TestOutOfRangeErrors(t *testing.T) {
	v, _ := From[int](Config{Order: 4}, []int{1, 2, 3})
	if _, ok := v.Get(10); ok {
		t.Fatal("Get(10) ok = true, want false")
	}
	if _, err := v.InsertAt(-1, 0); err != ErrIndexOutOfBounds {
		t.Fatalf("InsertAt(-1) err = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := v.SliceInto(2, 1); err != ErrInvalidRange {
		t.Fatalf("SliceInto(2,1) err = %v, want ErrInvalidRange", err)
	}
}
