/*
Package machine describes button machines and parses their textual form.

A machine is a set of buttons, each incrementing (or toggling) a fixed
subset of named counters, together with the targets those counters must
reach. One machine is described per input line:

	[#..#] (0,3) (1,2) (0) {3,0,0,5}

The bracket group is the indicator diagram, one '#' or '.' per light.
Each parenthesized group is a button, listing the zero-based counter
indices it affects. The optional brace group gives the exact additive
target for each counter.

Machines are immutable once parsed. The solver package consumes them.
*/
package machine
