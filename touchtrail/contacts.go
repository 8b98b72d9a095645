package touchtrail

import (
	"bytes"
	"container/heap"

	"github.com/google/uuid"
)

// Contact is a pair of registered objects whose bounding boxes touch.
type Contact struct {
	First  uuid.UUID
	Second uuid.UUID
	// Intersection over Union of both boxes. Zero when boxes only share an edge or a corner
	IoU float64
	// Distance between box centers
	Distance float64
}

// Involves returns true if object with given identifier takes part in contact
func (c Contact) Involves(id uuid.UUID) bool {
	return c.First == id || c.Second == id
}

// contactHeap implements heap.Interface: strongest contact (highest IoU, then closest centers) on top
type contactHeap []Contact

func (h contactHeap) Len() int { return len(h) }

func (h contactHeap) Less(i, j int) bool {
	if h[i].IoU != h[j].IoU {
		return h[i].IoU > h[j].IoU
	}
	if h[i].Distance != h[j].Distance {
		return h[i].Distance < h[j].Distance
	}
	if cmp := bytes.Compare(h[i].First[:], h[j].First[:]); cmp != 0 {
		return cmp < 0
	}
	return bytes.Compare(h[i].Second[:], h[j].Second[:]) < 0
}

func (h contactHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *contactHeap) Push(x any) {
	*h = append(*h, x.(Contact))
}

func (h *contactHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// FindContacts returns every touching pair among given objects exactly once.
// Pairs are ordered by IoU descending, then by center distance ascending.
// Within a pair First is the identifier with lower byte order.
func FindContacts(objects map[uuid.UUID]*Registered) []Contact {
	ids := make([]uuid.UUID, 0, len(objects))
	for id := range objects {
		ids = append(ids, id)
	}

	pq := &contactHeap{}
	heap.Init(pq)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			first, second := ids[i], ids[j]
			if bytes.Compare(first[:], second[:]) > 0 {
				first, second = second, first
			}
			boxOne := objects[first].GetBBox()
			boxTwo := objects[second].GetBBox()
			if !boxOne.IsTouching(boxTwo) {
				continue
			}
			heap.Push(pq, Contact{
				First:    first,
				Second:   second,
				IoU:      IoU(boxOne, boxTwo),
				Distance: euclideanDistance(boxOne.Center(), boxTwo.Center()),
			})
		}
	}

	contacts := make([]Contact, 0, pq.Len())
	for pq.Len() > 0 {
		contacts = append(contacts, heap.Pop(pq).(Contact))
	}
	return contacts
}
