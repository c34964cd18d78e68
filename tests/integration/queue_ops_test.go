package integration

import (
	"math/rand"
	"sort"
	"testing"

	sortablequeue "github.com/timzifer/sortable_queue"
)

func drain(t *testing.T, q *sortablequeue.Queue) []string {
	t.Helper()

	var out []string
	for {
		e := q.RemoveHead()
		if e == nil {
			return out
		}
		out = append(out, e.Value())
		q.Release(e)
	}
}

func expectDrain(t *testing.T, q *sortablequeue.Queue, want []string) {
	t.Helper()

	got := drain(t, q)
	if len(got) != len(want) {
		t.Fatalf("unexpected contents: got %v want %v", got, want)
	}
	for i, v := range got {
		if v != want[i] {
			t.Fatalf("unexpected value at %d: got %v want %v", i, got, want)
		}
	}
}

func TestSortThenDedupScenario(t *testing.T) {
	q := sortablequeue.NewQueue()
	for _, v := range []string{"cherry", "apple", "banana", "apple", "cherry", "date"} {
		if !q.InsertTail(v) {
			t.Fatalf("InsertTail(%q) failed", v)
		}
	}

	q.Sort()
	if !q.DeleteDuplicates() {
		t.Fatalf("expected DeleteDuplicates to succeed")
	}

	expectDrain(t, q, []string{"banana", "date"})
}

func TestTransformationPipeline(t *testing.T) {
	q := sortablequeue.NewQueue(sortablequeue.WithInitialValues("a", "b", "c", "d", "e"))

	q.SwapPairs()
	q.Reverse()

	// swap: b a d c e, reverse: e c d a b
	expectDrain(t, q, []string{"e", "c", "d", "a", "b"})
}

func TestDeleteMiddleRepeatedly(t *testing.T) {
	q := sortablequeue.NewQueue(sortablequeue.WithInitialValues("a", "b", "c", "d", "e"))

	if !q.DeleteMiddle() {
		t.Fatalf("first DeleteMiddle failed")
	}
	// a b d e -> later middle is d
	if !q.DeleteMiddle() {
		t.Fatalf("second DeleteMiddle failed")
	}

	expectDrain(t, q, []string{"a", "b", "e"})
}

func TestFreeOnEmptyAndNilHandles(t *testing.T) {
	q := sortablequeue.NewQueue()
	q.Free()

	var nilQ *sortablequeue.Queue
	nilQ.Free()

	if q.Size() != 0 || nilQ.Size() != 0 {
		t.Fatalf("expected both queues to report size 0")
	}
}

// TestRandomisedOperationsAgainstModel replays a deterministic operation
// sequence against a plain slice model and checks that the queue agrees with
// the model after every step.
func TestRandomisedOperationsAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := sortablequeue.NewQueue()
	var model []string

	words := []string{"ant", "bee", "cat", "dog", "eel", "ant", "bee"}

	for step := 0; step < 500; step++ {
		switch rng.Intn(8) {
		case 0:
			v := words[rng.Intn(len(words))]
			q.InsertHead(v)
			model = append([]string{v}, model...)
		case 1:
			v := words[rng.Intn(len(words))]
			q.InsertTail(v)
			model = append(model, v)
		case 2:
			e := q.RemoveHead()
			if len(model) == 0 {
				if e != nil {
					t.Fatalf("step %d: RemoveHead returned %q from empty queue", step, e.Value())
				}
				continue
			}
			if e == nil || e.Value() != model[0] {
				t.Fatalf("step %d: RemoveHead mismatch, want %q", step, model[0])
			}
			q.Release(e)
			model = model[1:]
		case 3:
			e := q.RemoveTail()
			if len(model) == 0 {
				if e != nil {
					t.Fatalf("step %d: RemoveTail returned %q from empty queue", step, e.Value())
				}
				continue
			}
			if e == nil || e.Value() != model[len(model)-1] {
				t.Fatalf("step %d: RemoveTail mismatch, want %q", step, model[len(model)-1])
			}
			q.Release(e)
			model = model[:len(model)-1]
		case 4:
			ok := q.DeleteMiddle()
			if len(model) == 0 {
				if ok {
					t.Fatalf("step %d: DeleteMiddle succeeded on empty queue", step)
				}
				continue
			}
			if !ok {
				t.Fatalf("step %d: DeleteMiddle failed on non-empty queue", step)
			}
			mid := len(model) / 2
			model = append(model[:mid], model[mid+1:]...)
		case 5:
			q.SwapPairs()
			for i := 0; i+1 < len(model); i += 2 {
				model[i], model[i+1] = model[i+1], model[i]
			}
		case 6:
			q.Reverse()
			for i, j := 0, len(model)-1; i < j; i, j = i+1, j-1 {
				model[i], model[j] = model[j], model[i]
			}
		case 7:
			q.Sort()
			sort.SliceStable(model, func(i, j int) bool { return model[i] < model[j] })
		}

		if got := q.Size(); got != len(model) {
			t.Fatalf("step %d: size %d, model holds %d", step, got, len(model))
		}
	}

	expectDrain(t, q, model)
}
