package climb

import "container/heap"

// Frontier is a min-priority queue of Candidates ordered by Cost, then
// TieBreak, then insertion order. Duplicates of a position are allowed; the
// search discards stale ones lazily when they are extracted.
//
// The zero value is not usable; call NewFrontier.
type Frontier struct {
	policy TieBreak
	pq     candidatePQ
	next   uint64
}

// NewFrontier returns an empty frontier using the given tie-break policy.
// Under TieBreakFIFO the candidate's TieBreak key is ignored.
func NewFrontier(policy TieBreak) *Frontier {
	f := &Frontier{policy: policy}
	heap.Init(&f.pq)
	return f
}

// Insert adds c. O(log n).
func (f *Frontier) Insert(c Candidate) {
	if f.policy == TieBreakFIFO {
		c.TieBreak = 0
	}
	c.seq = f.next
	f.next++
	heap.Push(&f.pq, c)
}

// ExtractMin removes and returns the minimum candidate.
// ok is false when the frontier is empty.
func (f *Frontier) ExtractMin() (c Candidate, ok bool) {
	if f.pq.Len() == 0 {
		return Candidate{}, false
	}
	return heap.Pop(&f.pq).(Candidate), true
}

// Len returns the number of queued candidates, stale ones included.
func (f *Frontier) Len() int { return f.pq.Len() }

// less is the frontier order: cost, then tie-break key, then insertion sequence.
func less(a, b Candidate) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.TieBreak != b.TieBreak {
		return a.TieBreak < b.TieBreak
	}
	return a.seq < b.seq
}

// candidatePQ implements heap.Interface over Candidate values.
type candidatePQ []Candidate

func (pq candidatePQ) Len() int           { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool { return less(pq[i], pq[j]) }
func (pq candidatePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(Candidate)) }

// Pop removes the last element; called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
