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
// traversal helpers - copies, searches, reversal

import (
	"github.com/pkg/errors"
)

// CloneFunc produces an independent copy of one payload for CopyDeep.
type CloneFunc func(v interface{}) interface{}

// ToArray returns a slice with the payloads of all elements in head to tail
// order.
func (l *List) ToArray() []interface{} {
	array := make([]interface{}, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		array = append(array, n.data)
	}
	return array
}

// Contains returns how many elements of the list are equal to v.
func (l *List) Contains(v interface{}) int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		if n.data == v {
			count++
		}
	}
	return count
}

// IndexOf returns the index of the first element equal to v.
//
// Returns ErrNotFound, and -1 for the index, if no element matches.
func (l *List) IndexOf(v interface{}) (int, error) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.data == v {
			return i, nil
		}
		i++
	}
	return -1, errors.Wrap(ErrNotFound, "IndexOf")
}

// ForEach calls op once for every payload, in head to tail order.
//
// op must not mutate the list.
func (l *List) ForEach(op func(v interface{})) {
	for n := l.head; n != nil; n = n.next {
		op(n.data)
	}
}

// CopyShallow returns a new list with the same payload references in the
// same order.
func (l *List) CopyShallow() *List {
	c := New()
	for n := l.head; n != nil; n = n.next {
		c.AddLast(n.data)
	}
	return c
}

// CopyDeep returns a new list whose payloads are copies of l's payloads,
// produced by clone.
//
// clone is called exactly once per element, in head to tail order.
func (l *List) CopyDeep(clone CloneFunc) *List {
	c := New()
	for n := l.head; n != nil; n = n.next {
		c.AddLast(clone(n.data))
	}
	return c
}

// Sublist returns a new list holding the payload references of the elements
// from index b through index e inclusive.
//
// Requires b <= e and e < len; ErrRange otherwise.
func (l *List) Sublist(b, e int) (*List, error) {
	if b > e || b < 0 || e >= l.size {
		return nil, errors.Wrapf(ErrRange, "Sublist: range [%d, %d], size %d", b, e, l.size)
	}

	sub := New()
	n := l.nodeAt(b)
	for i := b; i <= e; i++ {
		sub.AddLast(n.data)
		n = n.next
	}
	return sub, nil
}

// Reverse reverses the order of the elements in place.
//
// It swaps head and tail and then pairwise swaps nodes walking inward from
// both ends; the middle element of an odd-length list stays where it is.
func (l *List) Reverse() {
	oldHead := l.head
	oldTail := l.tail

	left := l.head
	right := l.tail

	for i := 0; i < l.size/2; i++ {
		lnext := left.next
		rprev := right.prev

		swap(left, right)

		left = lnext
		right = rprev
	}

	l.head = oldTail
	l.tail = oldHead
}
