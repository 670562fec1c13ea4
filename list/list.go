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

// Package list provides a double-linked list container.
//
// In contrast to lab.nexedi.com/kirr/go123/xcontainer/list, which is
// intrusive and requires elements to embed list heads themselves, here the
// list owns its nodes and carries payloads as opaque references. Payloads are
// never inspected, copied or freed by the list - they stay fully owned by the
// caller.
//
// A List supports positional access and mutation (AddAt, RemoveAt, Get,
// ReplaceAt, ...), O(1) structural splicing of whole lists into one another
// (Splice, SpliceBefore, SpliceAfter), bidirectional iteration with in-place
// mutation through the iterator (Iter, RIter), and a stable in-place merge
// sort (Sort). Positional access walks from whichever list end is closer to
// the target index, so it costs at most len/2 steps.
//
// Lists are not safe for concurrent use - callers must serialize access
// themselves if a list is shared between goroutines.
package list

import (
	"github.com/pkg/errors"
)

// errors returned by list operations.
//
// Operations wrap these with argument context - use errors.Cause to
// discriminate.
var (
	ErrRange    = errors.New("index out of range")
	ErrEmpty    = errors.New("list is empty")
	ErrInvalid  = errors.New("invalid argument")
	ErrNotFound = errors.New("element not found")

	// ErrAlloc is reserved for node allocation failures. The Go runtime
	// aborts on OOM instead of reporting it, so no operation currently
	// returns ErrAlloc - it is kept so that the failure taxonomy stays
	// complete for callers that mirror it.
	ErrAlloc = errors.New("node allocation failed")
)

// node is one unit of a list chain: a payload and two links.
//
// Nothing outside this package sees nodes - the only access paths are List
// and its iterators.
type node struct {
	data interface{}
	next *node
	prev *node
}

// List is a double-linked list of opaque payloads.
//
// The zero value is an empty list ready to use.
type List struct {
	head *node
	tail *node
	size int
}

// New returns a new empty list.
func New() *List {
	return &List{}
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List) Empty() bool {
	return l.size == 0
}

// Add appends v to the end of the list.
func (l *List) Add(v interface{}) {
	l.AddLast(v)
}

// AddFirst prepends v to the list making it the new first element.
func (l *List) AddFirst(v interface{}) {
	n := &node{data: v}

	if l.size == 0 {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.size++
}

// AddLast appends v to the list making it the new last element.
func (l *List) AddLast(v interface{}) {
	n := &node{data: v}

	if l.size == 0 {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// AddAt inserts v so that it becomes the element at index i; the element
// previously at i and everything after it shift one position towards the
// tail.
//
// AddAt requires the list to be non-empty - inserting into an empty list
// must go through AddFirst or AddLast; on an empty list ErrInvalid is
// returned. i must be in [0, len); ErrRange otherwise.
func (l *List) AddAt(v interface{}, i int) error {
	if l.size == 0 {
		return errors.Wrap(ErrInvalid, "AddAt: empty list (use AddFirst/AddLast)")
	}

	at := l.nodeAt(i)
	if at == nil {
		return errRange("AddAt", i, l.size)
	}

	n := &node{data: v}
	linkBefore(at, n)
	if i == 0 {
		l.head = n
	}
	l.size++

	return nil
}

// Remove removes the first element equal to v and returns its payload.
//
// Returns ErrNotFound if no element matches.
func (l *List) Remove(v interface{}) (interface{}, error) {
	n := l.nodeOf(v)
	if n == nil {
		return nil, errors.Wrap(ErrNotFound, "Remove")
	}
	return l.unlink(n), nil
}

// RemoveAt removes the element at index i and returns its payload.
//
// i must be in [0, len); ErrRange otherwise.
func (l *List) RemoveAt(i int) (interface{}, error) {
	n := l.nodeAt(i)
	if n == nil {
		return nil, errRange("RemoveAt", i, l.size)
	}
	return l.unlink(n), nil
}

// RemoveFirst removes the first element and returns its payload.
//
// Returns ErrEmpty if the list has no elements.
func (l *List) RemoveFirst() (interface{}, error) {
	if l.size == 0 {
		return nil, errors.Wrap(ErrEmpty, "RemoveFirst")
	}
	return l.unlink(l.head), nil
}

// RemoveLast removes the last element and returns its payload.
//
// Returns ErrEmpty if the list has no elements.
func (l *List) RemoveLast() (interface{}, error) {
	if l.size == 0 {
		return nil, errors.Wrap(ErrEmpty, "RemoveLast")
	}
	return l.unlink(l.tail), nil
}

// RemoveAll removes every element in head to tail order.
//
// It reports whether anything was removed: false means the list was already
// empty. That is a no-op indication, not an error - the list is valid and
// empty either way.
func (l *List) RemoveAll() bool {
	return l.removeAll(nil)
}

// RemoveAllFunc is RemoveAll that additionally calls release on every removed
// payload, in head to tail order.
//
// Use it when payloads hold resources that must be returned explicitly, e.g.
// refcounted buffers.
func (l *List) RemoveAllFunc(release func(v interface{})) bool {
	return l.removeAll(release)
}

func (l *List) removeAll(release func(v interface{})) bool {
	if l.size == 0 {
		return false
	}

	n := l.head
	for n != nil {
		next := n.next
		v := l.unlink(n)
		if release != nil {
			release(v)
		}
		n = next
	}
	return true
}

// ReplaceAt replaces the payload at index i with v and returns the previous
// payload. The node and its links stay untouched.
//
// i must be in [0, len); ErrRange otherwise.
func (l *List) ReplaceAt(v interface{}, i int) (interface{}, error) {
	n := l.nodeAt(i)
	if n == nil {
		return nil, errRange("ReplaceAt", i, l.size)
	}

	old := n.data
	n.data = v
	return old, nil
}

// GetFirst returns the payload of the first element.
//
// Returns ErrEmpty if the list has no elements.
func (l *List) GetFirst() (interface{}, error) {
	if l.size == 0 {
		return nil, errors.Wrap(ErrEmpty, "GetFirst")
	}
	return l.head.data, nil
}

// GetLast returns the payload of the last element.
//
// Returns ErrEmpty if the list has no elements.
func (l *List) GetLast() (interface{}, error) {
	if l.size == 0 {
		return nil, errors.Wrap(ErrEmpty, "GetLast")
	}
	return l.tail.data, nil
}

// Get returns the payload of the element at index i.
//
// i must be in [0, len); ErrRange otherwise.
func (l *List) Get(i int) (interface{}, error) {
	n := l.nodeAt(i)
	if n == nil {
		return nil, errRange("Get", i, l.size)
	}
	return n.data, nil
}

// errRange returns ErrRange wrapped with operation context.
func errRange(op string, i, size int) error {
	return errors.Wrapf(ErrRange, "%s: index %d, size %d", op, i, size)
}
