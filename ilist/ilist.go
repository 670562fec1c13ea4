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

// Package ilist provides intrusive double-linked lists.
//
// This is the zero-allocation sibling of lab.nexedi.com/kirr/xcontainer/list:
// instead of the list owning nodes that carry payloads, here the element
// embeds a list Head itself. That way an element can be unlinked or moved in
// O(1) starting from a pointer to just its data, and linking allocates
// nothing.
//
// A list is organized as a ring: a designated anchor Head linked to itself
// represents the empty list, elements are inserted into the ring around it.
// There are no nil links - the ring closes on the anchor.
package ilist

// Head is a list head entry for an element in an intrusive doubly-linked
// list.
//
// Zero Head value is NOT valid - always call Init to initialize a head
// before using it.
type Head struct {
	next, prev *Head
}

// Next returns the next head in the ring.
func (h *Head) Next() *Head { return h.next }

// Prev returns the previous head in the ring.
func (h *Head) Prev() *Head { return h.prev }

// Init initializes a head making it point to itself via .next and .prev.
//
// An initialized head is an empty ring: it is its own anchor.
func (h *Head) Init() {
	h.next = h
	h.prev = h
}

// Empty reports whether h is linked to no other head.
//
// For a ring anchor that means the list is empty.
func (h *Head) Empty() bool {
	return h.next == h
}

// Delete deletes h from its ring and reinitializes it.
func (h *Head) Delete() {
	h.next.prev = h.prev
	h.prev.next = h.next
	h.Init()
}

// InsertBefore inserts h immediately before b in b's ring.
//
// h must not be linked anywhere (freshly Init'ed or Delete'd).
func (h *Head) InsertBefore(b *Head) {
	h.next = b
	h.prev = b.prev
	b.prev = h
	h.prev.next = h
}

// InsertAfter inserts h immediately after b in b's ring.
//
// h must not be linked anywhere (freshly Init'ed or Delete'd).
func (h *Head) InsertAfter(b *Head) {
	h.prev = b
	h.next = b.next
	b.next = h
	h.next.prev = h
}

// MoveBefore moves h, unlinking it first, to be immediately before b.
func (h *Head) MoveBefore(b *Head) {
	h.Delete()
	h.InsertBefore(b)
}

// MoveAfter moves h, unlinking it first, to be immediately after b.
func (h *Head) MoveAfter(b *Head) {
	h.Delete()
	h.InsertAfter(b)
}

// Len returns the number of heads in h's ring not counting h itself.
//
// For a ring anchor that is the length of the list. It walks the whole ring.
func (h *Head) Len() int {
	n := 0
	for p := h.next; p != h; p = p.next {
		n++
	}
	return n
}
