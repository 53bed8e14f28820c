package btree

import "testing"

func TestConcatBasic(t *testing.T) {
	left := buildSeq(t, 5, 37)
	right := newIntTree(t, 5)
	var err error
	for i := 0; i < 43; i++ {
		right, err = right.InsertAt(i, i+1000)
		if err != nil {
			t.Fatalf("InsertAt failed: %v", err)
		}
	}
	merged, err := left.Concat(right)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if merged.Len() != 80 {
		t.Fatalf("Len() = %d, want 80", merged.Len())
	}
	for i := 0; i < 37; i++ {
		got, ok := merged.Get(i)
		if !ok || got != i {
			t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", i, got, ok, i)
		}
	}
	for i := 0; i < 43; i++ {
		got, ok := merged.Get(37 + i)
		if !ok || got != i+1000 {
			t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", 37+i, got, ok, i+1000)
		}
	}
	if err := merged.Check(); err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
}

func TestConcatWithEmpty(t *testing.T) {
	left := buildSeq(t, 5, 12)
	empty := newIntTree(t, 5)

	r1, err := left.Concat(empty)
	if err != nil {
		t.Fatalf("Concat(empty) failed: %v", err)
	}
	if r1.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", r1.Len())
	}

	r2, err := empty.Concat(left)
	if err != nil {
		t.Fatalf("empty.Concat(left) failed: %v", err)
	}
	if r2.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", r2.Len())
	}
}

func TestConcatUnequalHeights(t *testing.T) {
	tall := buildSeq(t, 4, 500)
	short := newIntTree(t, 4)
	short, err := short.InsertAt(0, -1)
	if err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}

	merged, err := tall.Concat(short)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if merged.Len() != 501 {
		t.Fatalf("Len() = %d, want 501", merged.Len())
	}
	last, ok := merged.Get(500)
	if !ok || last != -1 {
		t.Fatalf("Get(500) = (%d, %v), want (-1, true)", last, ok)
	}
	if err := merged.Check(); err != nil {
		t.Fatalf("Check() failed: %v", err)
	}

	merged2, err := short.Concat(tall)
	if err != nil {
		t.Fatalf("Concat (reversed) failed: %v", err)
	}
	if merged2.Len() != 501 {
		t.Fatalf("Len() = %d, want 501", merged2.Len())
	}
	first, ok := merged2.Get(0)
	if !ok || first != -1 {
		t.Fatalf("Get(0) = (%d, %v), want (-1, true)", first, ok)
	}
	if err := merged2.Check(); err != nil {
		t.Fatalf("Check() failed: %v", err)
	}
}

func TestConcatManySmallPieces(t *testing.T) {
	tree := newIntTree(t, 4)
	total := 0
	for p := 0; p < 30; p++ {
		piece := newIntTree(t, 4)
		var err error
		for i := 0; i < p%5+1; i++ {
			piece, err = piece.InsertAt(i, total)
			total++
			if err != nil {
				t.Fatalf("InsertAt failed: %v", err)
			}
		}
		tree, err = tree.Concat(piece)
		if err != nil {
			t.Fatalf("Concat failed at piece %d: %v", p, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("Check() failed at piece %d: %v", p, err)
		}
	}
	if tree.Len() != total {
		t.Fatalf("Len() = %d, want %d", tree.Len(), total)
	}
	for i := 0; i < total; i++ {
		got, ok := tree.Get(i)
		if !ok || got != i {
			t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", i, got, ok, i)
		}
	}
}
