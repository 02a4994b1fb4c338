package bfsearch

import "testing"

func TestNewTapeIsAllZero(t *testing.T) {
	tape := NewTape()
	for _, i := range []int64{0, 1, -1, 1000, -1000} {
		if got := tape.Get(i); got != 0 {
			t.Errorf("Get(%d) on a fresh Tape = %d, want 0", i, got)
		}
	}
}

func TestSetAndGet(t *testing.T) {
	tape := NewTape()
	tape2 := tape.Set(5, 42)

	if got := tape2.Get(5); got != 42 {
		t.Errorf("Get(5) after Set(5, 42) = %d, want 42", got)
	}
	if got := tape.Get(5); got != 0 {
		t.Errorf("Set returned a Tape that mutated the original: Get(5) = %d, want 0", got)
	}
}

func TestSetNegativeIndex(t *testing.T) {
	tape := NewTape().Set(-3, 7)
	if got := tape.Get(-3); got != 7 {
		t.Errorf("Get(-3) = %d, want 7", got)
	}
	if got := tape.Get(3); got != 0 {
		t.Errorf("Get(3) = %d, want 0 (unrelated cell)", got)
	}
}

func TestSetZeroPrunesNode(t *testing.T) {
	tape := NewTape().Set(1, 5).Set(1, 0)
	if tape.root != nil {
		t.Errorf("Set(1, 0) should prune cell 1 back to an empty tree, got root = %+v", tape.root)
	}
}

func TestIncWraps(t *testing.T) {
	tape := NewTape().Set(0, 255)
	tape = tape.Inc(0)
	if got := tape.Get(0); got != 0 {
		t.Errorf("Inc(0) on cell holding 255 = %d, want 0 (wraparound)", got)
	}
}

func TestDecWraps(t *testing.T) {
	tape := NewTape() // cell 0 is 0
	tape = tape.Dec(0)
	if got := tape.Get(0); got != 255 {
		t.Errorf("Dec(0) on cell holding 0 = %d, want 255 (wraparound)", got)
	}
}

func TestStructuralSharingAcrossBranches(t *testing.T) {
	base := NewTape().Set(1, 1).Set(2, 2).Set(3, 3)
	left := base.Set(10, 10)
	right := base.Set(20, 20)

	if left.Get(10) != 10 || left.Get(20) != 0 {
		t.Errorf("left branch did not see its own write or saw the sibling's write")
	}
	if right.Get(20) != 20 || right.Get(10) != 0 {
		t.Errorf("right branch did not see its own write or saw the sibling's write")
	}
	// Both branches still see base's writes, unaffected by each other.
	if left.Get(1) != 1 || right.Get(1) != 1 {
		t.Errorf("branch lost a write present in a shared ancestor")
	}
}

func TestManySetsAndDeletes(t *testing.T) {
	tape := NewTape()
	for i := int64(0); i < 64; i++ {
		tape = tape.Set(i, uint8(i+1))
	}
	for i := int64(0); i < 64; i++ {
		if got := tape.Get(i); got != uint8(i+1) {
			t.Errorf("Get(%d) = %d, want %d", i, got, i+1)
		}
	}
	for i := int64(0); i < 64; i += 2 {
		tape = tape.Set(i, 0)
	}
	for i := int64(0); i < 64; i++ {
		want := uint8(i + 1)
		if i%2 == 0 {
			want = 0
		}
		if got := tape.Get(i); got != want {
			t.Errorf("after deletions, Get(%d) = %d, want %d", i, got, want)
		}
	}
}
