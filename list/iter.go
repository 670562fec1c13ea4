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
// forward and reverse iterators

import (
	"github.com/pkg/errors"
)

// Iter is a forward iterator over a List - it walks the list from head to
// tail.
//
// An iterator is a cursor, not an owner: it keeps positional references into
// the list it was created from. The list may be mutated during iteration,
// but only through this same iterator (Add, Remove, Replace). Any structural
// mutation through another path - a direct List call or a second iterator -
// leaves the cursors dangling and further use of the iterator is a contract
// violation with undefined behaviour.
type Iter struct {
	list *List
	next *node // node Next will return, nil when exhausted
	last *node // node Next returned last, nil before first Next or after Remove

	// index of next in list order.
	//
	// It is maintained on iterator-side mutations so that Index stays
	// exact: Add shifts next right by one, Remove shifts it left.
	index int
}

// Iterator returns a new forward iterator positioned at the head of l.
func (l *List) Iterator() *Iter {
	return &Iter{list: l, next: l.head}
}

// HasNext reports whether there are more elements to iterate over.
func (it *Iter) HasNext() bool {
	return it.next != nil
}

// Next returns the next element and advances the iterator.
//
// Next must not be called when HasNext returns false - doing so panics.
func (it *Iter) Next() interface{} {
	if it.next == nil {
		panic("list: Iter.Next: iterator exhausted")
	}

	v := it.next.data
	it.last = it.next
	it.next = it.next.next
	it.index++
	return v
}

// Index returns the index of the most recently returned element.
//
// Valid only after at least one Next call.
func (it *Iter) Index() int {
	return it.index - 1
}

// Remove removes the element most recently returned by Next and returns its
// payload.
//
// Only the first Remove after a Next takes effect; calling Remove again
// without an intervening Next finds nothing to remove and returns
// ErrNotFound, leaving the list as is.
func (it *Iter) Remove() (interface{}, error) {
	if it.last == nil {
		return nil, errors.Wrap(ErrNotFound, "Iter.Remove: nothing to remove")
	}

	v := it.list.unlink(it.last)
	it.last = nil
	it.index-- // next shifted one position towards the head
	return v, nil
}

// Add inserts v at the iterator's current position: after the element most
// recently returned by Next and before the element the following Next would
// return.
//
// The new element becomes the "most recently returned" one, so a Replace or
// Remove right after Add acts on it. Iteration continues from the same
// upcoming element as before the Add.
func (it *Iter) Add(v interface{}) {
	n := &node{data: v}

	if it.next == nil {
		// exhausted (or fresh on an empty list) - the insertion gap is
		// at the tail end
		if it.list.tail == nil {
			it.list.head = n
			it.list.tail = n
		} else {
			linkAfter(it.list.tail, n)
			it.list.tail = n
		}
	} else {
		if it.next == it.list.head {
			it.list.head = n
		}
		linkBefore(it.next, n)
	}

	it.list.size++
	it.index++
	it.last = n
}

// Replace replaces the payload of the element most recently returned by Next
// with v and returns the previous payload.
//
// Returns ErrNotFound if there is no current element (no Next was called
// yet, or it was consumed by Remove).
func (it *Iter) Replace(v interface{}) (interface{}, error) {
	if it.last == nil {
		return nil, errors.Wrap(ErrNotFound, "Iter.Replace: no current element")
	}

	old := it.last.data
	it.last.data = v
	return old, nil
}

// RIter is a reverse iterator over a List - it walks the list from tail to
// head.
//
// It mirrors Iter; the same single-mutator contract applies: once the list
// is structurally changed through any other path the iterator must be
// discarded.
type RIter struct {
	list *List
	next *node // node Next will return, nil when exhausted
	last *node // node Next returned last, nil before first Next or after Remove

	// index of next in list order (counts down towards 0).
	index int
}

// DIterator returns a new reverse (descending) iterator positioned at the
// tail of l.
func (l *List) DIterator() *RIter {
	return &RIter{list: l, next: l.tail, index: l.size - 1}
}

// HasNext reports whether there are more elements to iterate over.
func (it *RIter) HasNext() bool {
	return it.next != nil
}

// Next returns the next element in tail to head order and advances the
// iterator.
//
// Next must not be called when HasNext returns false - doing so panics.
func (it *RIter) Next() interface{} {
	if it.next == nil {
		panic("list: RIter.Next: iterator exhausted")
	}

	v := it.next.data
	it.last = it.next
	it.next = it.next.prev
	it.index--
	return v
}

// Index returns the list-order index of the most recently returned element.
//
// Valid only after at least one Next call.
func (it *RIter) Index() int {
	return it.index + 1
}

// Remove removes the element most recently returned by Next and returns its
// payload.
//
// Like Iter.Remove it is single-shot: a second Remove without an intervening
// Next returns ErrNotFound.
func (it *RIter) Remove() (interface{}, error) {
	if it.last == nil {
		return nil, errors.Wrap(ErrNotFound, "RIter.Remove: nothing to remove")
	}

	v := it.list.unlink(it.last)
	it.last = nil
	// next sits headward of last, so its index is unaffected
	return v, nil
}

// Add inserts v at the iterator's current position: after the element the
// following Next would return and before the element most recently returned.
//
// Mirror image of Iter.Add - both insert into the gap between last-returned
// and next-to-be-returned. The new element becomes the "most recently
// returned" one.
func (it *RIter) Add(v interface{}) {
	n := &node{data: v}

	if it.next == nil {
		// exhausted (or fresh on an empty list) - the insertion gap is
		// at the head end
		if it.list.head == nil {
			it.list.head = n
			it.list.tail = n
		} else {
			linkBefore(it.list.head, n)
			it.list.head = n
		}
	} else {
		if it.next == it.list.tail {
			it.list.tail = n
		}
		linkAfter(it.next, n)
	}

	it.list.size++
	// next keeps its index: the new node lands tailward of it
	it.last = n
}

// Replace replaces the payload of the element most recently returned by Next
// with v and returns the previous payload.
//
// Returns ErrNotFound if there is no current element.
func (it *RIter) Replace(v interface{}) (interface{}, error) {
	if it.last == nil {
		return nil, errors.Wrap(ErrNotFound, "RIter.Replace: no current element")
	}

	old := it.last.data
	it.last.data = v
	return old, nil
}
