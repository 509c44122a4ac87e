package input

import (
	"sync/atomic"

	"github.com/lixenwraith/dungeon-survival/parameter"
)

// IntentQueue is a lock-free MPSC ring buffer for player intents
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (simulation tick)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest intents overwritten when full
type IntentQueue struct {
	intents   [parameter.IntentQueueSize]Intent
	published [parameter.IntentQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                          // Read index
	tail      atomic.Uint64                          // Write index
}

func NewIntentQueue() *IntentQueue {
	q := &IntentQueue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push adds an intent using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (q *IntentQueue) Push(it Intent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.IntentBufferMask

			q.intents[idx] = it
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread intents
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.IntentQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.IntentQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending intents in FIFO order and advances head
// Single-consumer design (tick start). Checks published flags for safety
func (q *IntentQueue) Consume() []Intent {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.IntentQueueSize {
			maxAvailable = parameter.IntentQueueSize
			currentHead = currentTail - parameter.IntentQueueSize
		}

		result := make([]Intent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.IntentBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.intents[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
