// Implements the TurnQueue, which holds zombies waiting to take their
// turn. Zombies are enqueued at creation and processed in FIFO order.

package sim

// TurnQueue is a FIFO queue of zombies pending their movement turn.
// Turn order is the engine's central guarantee: a zombie completes its
// whole movement sequence before the next queued zombie begins, even
// when it spawned new zombies mid-sequence.
type TurnQueue struct {
	queue []*Zombie
}

// Enqueue adds a zombie to the back of the queue.
func (q *TurnQueue) Enqueue(z *Zombie) {
	q.queue = append(q.queue, z)
}

// Dequeue removes and returns the front zombie.
// Returns nil if the queue is empty.
func (q *TurnQueue) Dequeue() *Zombie {
	if len(q.queue) == 0 {
		return nil
	}
	z := q.queue[0]
	q.queue = q.queue[1:]
	return z
}

// Peek returns the front zombie without removing it.
// Returns nil if the queue is empty.
func (q *TurnQueue) Peek() *Zombie {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of zombies waiting for a turn.
func (q *TurnQueue) Len() int {
	return len(q.queue)
}
