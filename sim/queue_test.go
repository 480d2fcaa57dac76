package sim

import "testing"

func TestTurnQueue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with zombies [0, 1, 2]
	q := &TurnQueue{}
	for i := 0; i < 3; i++ {
		q.Enqueue(&Zombie{ID: i})
	}

	// WHEN they are dequeued
	// THEN they come out in enqueue order
	for want := 0; want < 3; want++ {
		z := q.Dequeue()
		if z == nil || z.ID != want {
			t.Fatalf("Dequeue: got %v, want zombie %d", z, want)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len after drain: got %d, want 0", q.Len())
	}
}

func TestTurnQueue_DequeueEmpty_ReturnsNil(t *testing.T) {
	q := &TurnQueue{}
	if got := q.Dequeue(); got != nil {
		t.Errorf("Dequeue on empty queue: got %v, want nil", got)
	}
}

func TestTurnQueue_Peek_DoesNotRemove(t *testing.T) {
	// GIVEN a queue with one zombie
	q := &TurnQueue{}
	z := &Zombie{ID: 7}
	q.Enqueue(z)

	// WHEN Peek is called
	got := q.Peek()

	// THEN the front is returned without removal
	if got != z {
		t.Errorf("Peek: got %v, want zombie 7", got)
	}
	if q.Len() != 1 {
		t.Errorf("Peek modified queue length: got %d, want 1", q.Len())
	}
}

func TestTurnQueue_PeekEmpty_ReturnsNil(t *testing.T) {
	q := &TurnQueue{}
	if got := q.Peek(); got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
}
