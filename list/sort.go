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
// stable in-place merge sort over the node chain

// Comparator is a three-way comparison over two payloads: it returns a
// negative value if a sorts before b, zero if they sort equal, and a
// positive value if a sorts after b.
//
// A comparator must describe a consistent total order; Sort behaviour is
// undefined otherwise.
type Comparator func(a, b interface{}) int

// Sort sorts the list in place in ascending order as defined by cmp.
//
// The sort is a top-down recursive merge sort operating directly on the node
// chain: elements move by pointer relinking only, no payload is copied and
// no auxiliary buffer is allocated. It is stable - elements comparing equal
// keep their relative order. A list of 0 or 1 elements is left as is.
func (l *List) Sort(cmp Comparator) {
	if l.size < 2 {
		return
	}
	l.split(l.head, l.size, cmp)
}

// split recursively sorts the run of size nodes starting at b and returns
// the head of the sorted run.
//
// After the runs of a level are merged, list head/tail are re-pointed at the
// merged run's boundaries; intermediate assignments are overwritten on the
// way out of the recursion, so after the top-level split they hold the
// boundaries of the whole sorted chain.
func (l *List) split(b *node, size int, cmp Comparator) *node {
	if size < 2 {
		return b
	}

	// an uneven split leaves the larger run on the right
	lsize := size / 2
	rsize := size - lsize

	center := b
	for i := 0; i < lsize; i++ {
		center = center.next
	}

	lrun := l.split(b, lsize, cmp)
	rrun := l.split(center, rsize, cmp)

	head, tail := merge(lrun, rrun, lsize, rsize, cmp)

	l.head = head
	l.tail = tail
	return head
}

// merge merges two adjacent sorted runs into one sorted run and returns its
// boundaries.
//
// The left run starts at lrun and is lsize nodes long; the right run follows
// directly after it, starts at rrun and is rsize nodes long.
//
// The merge walks both runs at once. While the left element sorts
// less-or-equal it is already in place and only the left cursor advances -
// ties keeping the left element first is what makes the sort stable. When
// the right element sorts less, its node is relinked immediately before the
// current left node: a single pointer splice, never a payload copy. Counts
// of consumed nodes from each run detect when one run is exhausted; the
// other run's cursor is then fast-forwarded to its end so that the merged
// run's tail is known.
func merge(lrun, rrun *node, lsize, rsize int, cmp Comparator) (head, tail *node) {
	size := lsize + rsize
	l := 0 // nodes consumed from the left run
	r := 0 // nodes consumed from the right run

	lcur := lrun
	rcur := rrun

	head = lrun
	tail = rrun

	for i := 0; i < size; i++ {
		if cmp(lcur.data, rcur.data) <= 0 {
			// two single nodes already in order
			if i == 0 && size == 2 {
				break
			}
			// left run exhausted - the rest of the right run is
			// already in place; fast-forward to its end
			if l == lsize {
				for ; r < rsize-1; r++ {
					rcur = rcur.next
				}
				tail = rcur
				break
			}
			lcur = lcur.next
			l++
		} else {
			next := rcur.next
			linkBefore(lcur, rcur)

			// two single nodes swapped - that was the whole merge
			if i == 0 && size == 2 {
				head = rcur
				tail = lcur
				break
			}
			r++
			// right run exhausted - the rest of the left run is
			// already in place; fast-forward to its end
			if r == rsize {
				for ; l < lsize-1; l++ {
					lcur = lcur.next
				}
				tail = lcur
				break
			}
			if i == 0 {
				head = rcur
			}
			rcur = next
		}
	}

	return head, tail
}
