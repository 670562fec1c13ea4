// Copyright (C) 2021  Nexedi SA and Contributors.
//                     Kirill Smelkov <kirr@nexedi.com>
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

package main
// xlist bench - microbenchmark list operations

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
	"unsafe"

	"github.com/golang/glog"
	"lab.nexedi.com/kirr/go123/prog"

	"lab.nexedi.com/kirr/xcontainer/ilist"
	"lab.nexedi.com/kirr/xcontainer/list"
)

const benchSummary = "microbenchmark list operations"

func benchUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: xlist bench [options]
Exercise list and ilist operations on n elements and report timings.

The payload list is timed on append, positional access, splice, sort and
iterator traversal; the intrusive list on insert and ring traversal.

Options:

`)
}

// timed runs f and reports how long it took.
func timed(w io.Writer, name string, n int, f func()) {
	t0 := time.Now()
	f()
	d := time.Since(t0)
	fmt.Fprintf(w, "%-16s %10d ops in %10s (%8.1f ns/op)\n",
		name, n, d, float64(d.Nanoseconds())/float64(n))
}

func benchMain(argv []string) {
	flags := flag.NewFlagSet("", flag.ExitOnError)
	flags.Usage = func() { benchUsage(os.Stderr); flags.PrintDefaults() }
	n := flags.Int("n", 100000, "number of elements")
	seed := flags.Int64("seed", 1, "seed for the payload generator")
	flags.Parse(argv[1:])

	if len(flags.Args()) != 0 {
		flags.Usage()
		prog.Exit(2)
	}
	if *n <= 0 {
		prog.Fatal("n must be positive")
	}

	w := os.Stdout
	rng := rand.New(rand.NewSource(*seed))
	glog.V(1).Infof("bench: n=%d seed=%d", *n, *seed)

	// payload list
	l := list.New()
	timed(w, "list.AddLast", *n, func() {
		for i := 0; i < *n; i++ {
			l.AddLast(rng.Int())
		}
	})

	timed(w, "list.Get", *n, func() {
		for i := 0; i < *n; i++ {
			_, err := l.Get(rng.Intn(l.Len()))
			if err != nil {
				prog.Fatal(err)
			}
		}
	})

	l2 := list.New()
	for i := 0; i < *n; i++ {
		l2.AddLast(rng.Int())
	}
	timed(w, "list.Splice", 1, func() {
		l.Splice(l2)
	})

	timed(w, "list.Sort", l.Len(), func() {
		l.Sort(func(a, b interface{}) int {
			x, y := a.(int), b.(int)
			switch {
			case x < y:
				return -1
			case x > y:
				return +1
			}
			return 0
		})
	})

	sum := 0
	timed(w, "list.Iterator", l.Len(), func() {
		it := l.Iterator()
		for it.HasNext() {
			sum += it.Next().(int)
		}
	})
	glog.V(1).Infof("bench: iterator checksum %d", sum)

	// intrusive list
	type ielem struct {
		ilist.Head
		value int
	}

	var ring ilist.Head
	ring.Init()
	elemv := make([]ielem, *n)
	timed(w, "ilist.InsertBefore", *n, func() {
		for i := range elemv {
			elemv[i].value = i
			elemv[i].Init()
			elemv[i].InsertBefore(&ring)
		}
	})

	isum := 0
	timed(w, "ilist walk", *n, func() {
		for h := ring.Next(); h != &ring; h = h.Next() {
			// Head is the first field of ielem - the head pointer is
			// also the element pointer
			e := (*ielem)(unsafe.Pointer(h))
			isum += e.value
		}
	})
	glog.V(1).Infof("bench: ring checksum %d", isum)
}
