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

// Xlist is a driver program to exercise xcontainer lists from the command line.
package main

import "lab.nexedi.com/kirr/go123/prog"

var commands = prog.CommandRegistry{
	{Name: "sort",  Summary: sortSummary,  Usage: sortUsage,  Main: sortMain},
	{Name: "bench", Summary: benchSummary, Usage: benchUsage, Main: benchMain},
}

func main() {
	prog := prog.MainProg{
		Name:     "xlist",
		Summary:  "Xlist is a tool to exercise xcontainer lists",
		Commands: commands,
	}

	prog.Main()
}
