// Copyright (C) 2017-2021  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

package list
// link primitives - the only code that mutates prev/next

// Everything else in the package routes chain surgery through the functions
// here, so the prev/next symmetry invariant (n.prev.next == n and
// n.next.prev == n for every linked node) has exactly one place to hold.
//
// The primitives operate on nodes only. List head/tail/size bookkeeping is
// the caller's job, except in unlink which is a List method because removal
// always has to repair list ends.

// linkBefore splices n immediately before base in base's chain.
//
// n is first detached from wherever it currently sits; the detach is a no-op
// if n is not linked anywhere. base must be non-nil.
func linkBefore(base, n *node) {
	// close the gap n leaves behind
	if n.next != nil {
		n.next.prev = n.prev
	}
	if n.prev != nil {
		n.prev.next = n.next
	}

	n.prev = base.prev
	n.next = base
	if base.prev != nil {
		base.prev.next = n
	}
	base.prev = n
}

// linkAfter splices n immediately after base in base's chain.
//
// Symmetric counterpart of linkBefore.
func linkAfter(base, n *node) {
	if n.next != nil {
		n.next.prev = n.prev
	}
	if n.prev != nil {
		n.prev.next = n.next
	}

	n.next = base.next
	n.prev = base
	if base.next != nil {
		base.next.prev = n
	}
	base.next = n
}

// swap exchanges the chain positions of a and b, leaving every other node's
// links intact.
//
// a and b must be distinct nodes of the same chain. Adjacent nodes need the
// special case below: the generic four-pointer exchange degenerates when the
// two neighbour sets overlap.
func swap(a, b *node) {
	if a.next == b || b.next == a {
		swapAdjacent(a, b)
		return
	}

	aprev := a.prev
	anext := a.next
	bprev := b.prev
	bnext := b.next

	if aprev != nil {
		aprev.next = b
	}
	b.prev = aprev

	if anext != nil {
		anext.prev = b
	}
	b.next = anext

	if bprev != nil {
		bprev.next = a
	}
	a.prev = bprev

	if bnext != nil {
		bnext.prev = a
	}
	a.next = bnext
}

// swapAdjacent is swap for the case when a and b are chain neighbours.
func swapAdjacent(a, b *node) {
	if a.next == b {
		if b.next != nil {
			b.next.prev = a
		}
		a.next = b.next

		if a.prev != nil {
			a.prev.next = b
		}
		b.prev = a.prev

		a.prev = b
		b.next = a
		return
	}

	if b.next == a {
		swapAdjacent(b, a)
	}
}

// unlink removes n from the chain, repairing neighbour links and list
// head/tail, and returns its payload.
//
// The node comes out fully detached; the payload stays owned by the caller.
func (l *List) unlink(n *node) interface{} {
	data := n.data

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev = nil
	n.next = nil
	n.data = nil
	l.size--

	return data
}

// nodeAt returns the node at index i, or nil if i is out of range.
//
// The walk starts from whichever list end is closer to i, so it takes at
// most size/2 steps.
func (l *List) nodeAt(i int) *node {
	if i < 0 || i >= l.size {
		return nil
	}

	var n *node
	if i < l.size/2 {
		n = l.head
		for ; i > 0; i-- {
			n = n.next
		}
	} else {
		n = l.tail
		for i = l.size - 1 - i; i > 0; i-- {
			n = n.prev
		}
	}
	return n
}

// nodeOf returns the first node whose payload equals v, or nil if there is
// none.
func (l *List) nodeOf(v interface{}) *node {
	for n := l.head; n != nil; n = n.next {
		if n.data == v {
			return n
		}
	}
	return nil
}
