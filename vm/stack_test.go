package vm

import "testing"

func TestDequeZeroValueIsEmpty(t *testing.T) {
	var d Deque[int]
	if !d.IsEmpty() {
		t.Error("zero-value Deque should be empty")
	}
	if _, ok := d.Front(); ok {
		t.Error("Front() on an empty Deque should report false")
	}
	if _, ok := d.ShiftFront(); ok {
		t.Error("ShiftFront() on an empty Deque should report false")
	}
}

func TestDequePushBackAndFrontBack(t *testing.T) {
	var d Deque[string]
	d.PushBack("a")
	d.PushBack("b")
	d.PushBack("c")

	if front, ok := d.Front(); !ok || front != "a" {
		t.Errorf("Front() = %q, %v, want a, true", front, ok)
	}
	if back, ok := d.Back(); !ok || back != "c" {
		t.Errorf("Back() = %q, %v, want c, true", back, ok)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
}

func TestDequeShiftFrontRemovesInOrder(t *testing.T) {
	var d Deque[int]
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)

	for _, want := range []int{1, 2, 3} {
		got, ok := d.ShiftFront()
		if !ok || got != want {
			t.Fatalf("ShiftFront() = %d, %v, want %d, true", got, ok, want)
		}
	}
	if !d.IsEmpty() {
		t.Error("Deque should be empty after shifting out every item")
	}
}

func TestDequeAtIndexesFromFront(t *testing.T) {
	var d Deque[int]
	d.PushBack(10)
	d.PushBack(20)
	d.PushBack(30)

	if v, ok := d.At(1); !ok || v != 20 {
		t.Errorf("At(1) = %d, %v, want 20, true", v, ok)
	}
	if _, ok := d.At(-1); ok {
		t.Error("At(-1) should report false")
	}
	if _, ok := d.At(3); ok {
		t.Error("At(len) should report false")
	}
}
