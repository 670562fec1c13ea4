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

import (
	"testing"
)

func TestIterDrain(t *testing.T) {
	l := mklist(1, 2, 3)

	it := l.Iterator()
	var got []interface{}
	for it.HasNext() {
		got = append(got, it.Next())
	}

	want := []interface{}{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("drained %d elements  ; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v  ; want %v", i, got[i], want[i])
		}
	}

	if it.HasNext() {
		t.Fatalf("HasNext = true after drain")
	}
	checkList(t, l, 1, 2, 3)
}

func TestIterEmpty(t *testing.T) {
	l := New()
	it := l.Iterator()
	if it.HasNext() {
		t.Fatalf("HasNext = true on empty list")
	}

	rit := l.DIterator()
	if rit.HasNext() {
		t.Fatalf("reverse HasNext = true on empty list")
	}
}

func TestIterNextExhaustedPanics(t *testing.T) {
	l := mklist(1)
	it := l.Iterator()
	it.Next()

	defer func() {
		if recover() == nil {
			t.Fatalf("Next on exhausted iterator did not panic")
		}
	}()
	it.Next()
}

func TestIterIndex(t *testing.T) {
	l := mklist("a", "b", "c")

	it := l.Iterator()
	for i := 0; it.HasNext(); i++ {
		it.Next()
		if it.Index() != i {
			t.Fatalf("Index() = %d  ; want %d", it.Index(), i)
		}
	}

	rit := l.DIterator()
	for i := 2; rit.HasNext(); i-- {
		rit.Next()
		if rit.Index() != i {
			t.Fatalf("reverse Index() = %d  ; want %d", rit.Index(), i)
		}
	}
}

func TestIterRemove(t *testing.T) {
	l := mklist(1, 2, 3, 4)

	it := l.Iterator()
	it.Next() // 1
	it.Next() // 2

	v, err := it.Remove()
	if err != nil || v != 2 {
		t.Fatalf("Remove: %v, %v  ; want 2, nil", v, err)
	}
	checkList(t, l, 1, 3, 4)

	// second Remove without intervening Next finds nothing and changes nothing
	_, err = it.Remove()
	checkErr(t, err, ErrNotFound)
	checkList(t, l, 1, 3, 4)

	// iteration continues from the upcoming element
	if v := it.Next(); v != 3 {
		t.Fatalf("Next after Remove = %v  ; want 3", v)
	}
	if it.Index() != 1 {
		t.Fatalf("Index after Remove+Next = %d  ; want 1", it.Index())
	}
}

func TestIterRemoveBeforeNext(t *testing.T) {
	l := mklist(1, 2)
	it := l.Iterator()

	_, err := it.Remove()
	checkErr(t, err, ErrNotFound)
	checkList(t, l, 1, 2)
}

func TestIterRemoveAllForward(t *testing.T) {
	l := mklist(1, 2, 3)

	it := l.Iterator()
	for it.HasNext() {
		it.Next()
		_, err := it.Remove()
		if err != nil {
			t.Fatal(err)
		}
	}
	checkList(t, l)
}

func TestIterAdd(t *testing.T) {
	l := mklist(1, 3)

	it := l.Iterator()
	it.Next() // 1
	it.Add(2) // between 1 and 3
	checkList(t, l, 1, 2, 3)

	// the inserted element became the current one
	old, err := it.Replace(9)
	if err != nil || old != 2 {
		t.Fatalf("Replace after Add: %v, %v  ; want 2, nil", old, err)
	}
	checkList(t, l, 1, 9, 3)

	// iteration resumes with the element that was upcoming before Add
	if v := it.Next(); v != 3 {
		t.Fatalf("Next after Add = %v  ; want 3", v)
	}
}

func TestIterAddAtHead(t *testing.T) {
	l := mklist(1, 2)

	// no Next yet - insertion lands before the head
	it := l.Iterator()
	it.Add(0)
	checkList(t, l, 0, 1, 2)

	if v := it.Next(); v != 1 {
		t.Fatalf("Next after fresh Add = %v  ; want 1", v)
	}
}

func TestIterAddExhausted(t *testing.T) {
	l := mklist(1)

	it := l.Iterator()
	it.Next()
	it.Add(2) // at the tail end
	checkList(t, l, 1, 2)

	// fresh iterator over an empty list appends too
	l2 := New()
	it2 := l2.Iterator()
	it2.Add(1)
	checkList(t, l2, 1)
}

func TestIterReplace(t *testing.T) {
	l := mklist("a", "b")

	it := l.Iterator()
	_, err := it.Replace("x")
	checkErr(t, err, ErrNotFound)

	it.Next()
	old, err := it.Replace("x")
	if err != nil || old != "a" {
		t.Fatalf("Replace: %v, %v  ; want a, nil", old, err)
	}
	checkList(t, l, "x", "b")

	// Replace after Remove has no current element
	_, err = it.Remove()
	if err != nil {
		t.Fatal(err)
	}
	_, err = it.Replace("y")
	checkErr(t, err, ErrNotFound)
	checkList(t, l, "b")
}

// forward scenario: consume 1,2,3 then Remove then Add(9) then drain.
func TestIterScenario(t *testing.T) {
	l := mklist(1, 2, 3, 4, 5)

	it := l.Iterator()
	it.Next()
	it.Next()
	it.Next()

	v, err := it.Remove()
	if err != nil || v != 3 {
		t.Fatalf("Remove: %v, %v  ; want 3, nil", v, err)
	}

	it.Add(9)

	var rest []interface{}
	for it.HasNext() {
		rest = append(rest, it.Next())
	}
	if len(rest) != 2 || rest[0] != 4 || rest[1] != 5 {
		t.Fatalf("rest = %v  ; want [4 5]", rest)
	}

	checkList(t, l, 1, 2, 9, 4, 5)
}

func TestRIterDrain(t *testing.T) {
	l := mklist(1, 2, 3)

	it := l.DIterator()
	var got []interface{}
	for it.HasNext() {
		got = append(got, it.Next())
	}

	want := []interface{}{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("drained %d elements  ; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v  ; want %v", i, got[i], want[i])
		}
	}
	checkList(t, l, 1, 2, 3)
}

func TestRIterRemove(t *testing.T) {
	l := mklist(1, 2, 3)

	it := l.DIterator()
	it.Next() // 3
	it.Next() // 2

	v, err := it.Remove()
	if err != nil || v != 2 {
		t.Fatalf("Remove: %v, %v  ; want 2, nil", v, err)
	}
	checkList(t, l, 1, 3)

	_, err = it.Remove()
	checkErr(t, err, ErrNotFound)

	if v := it.Next(); v != 1 {
		t.Fatalf("Next after Remove = %v  ; want 1", v)
	}
	if it.HasNext() {
		t.Fatalf("HasNext = true after draining")
	}
}

func TestRIterAdd(t *testing.T) {
	l := mklist(1, 3)

	it := l.DIterator()
	it.Next() // 3
	it.Add(2) // between next-to-be-returned (1) and last-returned (3)
	checkList(t, l, 1, 2, 3)

	// the inserted element became the current one
	old, err := it.Replace(9)
	if err != nil || old != 2 {
		t.Fatalf("Replace after Add: %v, %v  ; want 2, nil", old, err)
	}
	checkList(t, l, 1, 9, 3)

	if v := it.Next(); v != 1 {
		t.Fatalf("Next after Add = %v  ; want 1", v)
	}
}

func TestRIterAddAtTail(t *testing.T) {
	l := mklist(1, 2)

	// no Next yet - insertion lands after the tail
	it := l.DIterator()
	it.Add(3)
	checkList(t, l, 1, 2, 3)

	if v := it.Next(); v != 2 {
		t.Fatalf("Next after fresh Add = %v  ; want 2", v)
	}
}

func TestRIterAddExhausted(t *testing.T) {
	l := mklist(2)

	it := l.DIterator()
	it.Next()
	it.Add(1) // at the head end
	checkList(t, l, 1, 2)

	l2 := New()
	it2 := l2.DIterator()
	it2.Add(1)
	checkList(t, l2, 1)
}
