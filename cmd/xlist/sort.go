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
// xlist sort - sort lines of text stably

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"lab.nexedi.com/kirr/go123/prog"

	"lab.nexedi.com/kirr/xcontainer/list"
)

const sortSummary = "sort lines of text"

func sortUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: xlist sort [options]
Read lines from stdin, sort them and write the result to stdout.

The sort is stable: lines that compare equal keep their input order.

Options:

`)
}

func sortMain(argv []string) {
	flags := flag.NewFlagSet("", flag.ExitOnError)
	flags.Usage = func() { sortUsage(os.Stderr); flags.PrintDefaults() }
	reverse := flags.Bool("r", false, "sort in reverse order")
	unique := flags.Bool("u", false, "omit repeated lines")
	flags.Parse(argv[1:])

	if len(flags.Args()) != 0 {
		flags.Usage()
		prog.Exit(2)
	}

	l := list.New()
	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		l.Add(in.Text())
	}
	err := in.Err()
	if err != nil {
		prog.Fatal(err)
	}

	cmp := func(a, b interface{}) int {
		return strings.Compare(a.(string), b.(string))
	}
	if *reverse {
		fwd := cmp
		cmp = func(a, b interface{}) int { return fwd(b, a) }
	}

	t0 := time.Now()
	l.Sort(cmp)
	glog.V(1).Infof("sorted %d lines in %s", l.Len(), time.Since(t0))

	if *unique {
		// drop repeats in place through the iterator
		it := l.Iterator()
		have := false
		prev := ""
		for it.HasNext() {
			line := it.Next().(string)
			if have && line == prev {
				_, err := it.Remove()
				if err != nil {
					prog.Fatal(err)
				}
				continue
			}
			prev = line
			have = true
		}
	}

	out := bufio.NewWriter(os.Stdout)
	l.ForEach(func(v interface{}) {
		out.WriteString(v.(string))
		out.WriteByte('\n')
	})
	err = out.Flush()
	if err != nil {
		prog.Fatal(err)
	}
}
