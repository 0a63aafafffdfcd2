// Package geom defines the coordinate type shared by every routing
// component and the bit-packed wire encoding described by the Acorn
// specification's external interfaces.
//
// Coordinate is a tuple (X, Y, Z) of small nonnegative integers plus a
// one-bit user flag. The grid is bounded (<= 8192 x 8192 laterally,
// <= ~30 routing layers), which lets Coordinate pack into a single
// uint32 using 13 bits for X, 13 bits for Y, 5 bits for Z, and 1 flag
// bit — the bit-exact layout Acorn's callers rely on when serializing
// paths.
//
// geom also carries the geometric shape alphabet (RECT/TRI/CIR, up to six
// floats) used to describe keep-out regions, design-rule zones,
// pin-swap regions, and cost-multiplier zones in InputValues, plus the
// point-in-shape tests the setup package rasterizes onto the cell grid.
package geom
