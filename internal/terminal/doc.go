// Package terminal provides the presentation and keyboard layer for running
// CHIP-8 programs inside a terminal.
//
// The Screen renders the 64x32 framebuffer with Unicode half block characters,
// two framebuffer rows per terminal line. The Keyboard reads raw key presses
// from stdin and maps them to the hexadecimal keypad using this layout:
//
//	1 2 3 4        0 1 2 3
//	q w e r   ->   4 5 6 7
//	a s d f        8 9 A B
//	z x c v        C D E F
//
// Escape or Ctrl-C request the emulation to stop.
package terminal
