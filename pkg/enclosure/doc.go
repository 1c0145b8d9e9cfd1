// Package enclosure builds the calculator case parts as CSG trees.
// Every builder is a pure function of one parameter table; parts that
// must mate share derived values and the canonical mounting-hole list
// instead of re-measuring anything.
package enclosure
