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
// splicing whole lists into one another

import (
	"github.com/pkg/errors"
)

// Splice moves the entire contents of l2 to the tail of l, leaving l2 empty.
//
// The transfer is structural: l2's whole chain is reattached in O(1), no
// element is copied or reallocated. Splicing an empty l2 is a no-op.
func (l *List) Splice(l2 *List) {
	l.spliceBetween(l2, l.tail, nil)
}

// SpliceBefore moves the entire contents of l2 into l immediately before the
// element at index i, leaving l2 empty.
//
// i must be in [0, len(l)); ErrRange otherwise. Like Splice this is O(1)
// regardless of either list's length.
func (l *List) SpliceBefore(l2 *List, i int) error {
	at := l.nodeAt(i)
	if at == nil {
		return errRange("SpliceBefore", i, l.size)
	}

	l.spliceBetween(l2, at.prev, at)
	return nil
}

// SpliceAfter moves the entire contents of l2 into l immediately after the
// element at index i, leaving l2 empty.
//
// i must be in [0, len(l)); ErrRange otherwise.
func (l *List) SpliceAfter(l2 *List, i int) error {
	at := l.nodeAt(i)
	if at == nil {
		return errRange("SpliceAfter", i, l.size)
	}

	l.spliceBetween(l2, at, at.next)
	return nil
}

// spliceBetween reattaches l2's whole chain into the gap between left and
// right in l, then resets l2 to the empty state.
//
// left and right must be either adjacent nodes of l, or nil meaning the
// corresponding list end: left=nil makes l2's head the new head of l,
// right=nil makes l2's tail the new tail. With both nil l must be empty and
// l2's chain becomes the whole of l.
func (l *List) spliceBetween(l2 *List, left, right *node) {
	if l2.size == 0 {
		return
	}

	if left != nil {
		left.next = l2.head
	} else {
		l.head = l2.head
	}
	l2.head.prev = left

	if right != nil {
		right.prev = l2.tail
	} else {
		l.tail = l2.tail
	}
	l2.tail.next = right

	l.size += l2.size

	l2.head = nil
	l2.tail = nil
	l2.size = 0
}

// AddAll appends a copy of every element of l2 to the tail of l.
//
// Unlike Splice this copies: new nodes are allocated for l2's payload
// references and l2 itself stays untouched. Returns ErrInvalid if l2 is
// empty.
func (l *List) AddAll(l2 *List) error {
	return l.AddAllAt(l2, l.size)
}

// AddAllAt inserts a copy of every element of l2 into l in front of index i.
//
// i must be in [0, len(l)]; i = len(l) appends. The payload references are
// shared with l2; l2 itself stays untouched. Returns ErrInvalid if l2 is
// empty, ErrRange on a bad index. On failure l is left unmodified.
func (l *List) AddAllAt(l2 *List, i int) error {
	if l2.size == 0 {
		return errors.Wrap(ErrInvalid, "AddAllAt: empty source list")
	}
	if i < 0 || i > l.size {
		return errRange("AddAllAt", i, l.size)
	}

	// build a detached chain holding l2's payload references
	var head, tail *node
	for n := l2.head; n != nil; n = n.next {
		nn := &node{data: n.data}
		if head == nil {
			head = nn
		} else {
			nn.prev = tail
			tail.next = nn
		}
		tail = nn
	}

	sub := &List{head: head, tail: tail, size: l2.size}

	var left, right *node
	if i == l.size {
		left = l.tail // right stays nil - append at the tail end
	} else {
		right = l.nodeAt(i)
		left = right.prev
	}

	l.spliceBetween(sub, left, right)
	return nil
}
