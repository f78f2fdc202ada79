// Package tui runs the remainder animation in a terminal.
//
// [Surface] implements remainder.Surface on a Braille grid: every terminal
// cell holds 2x4 dots, one column spans 5 canvas units and one row 10, so a
// dot covers 2.5x2.5 units. Filled shapes set dots, text overwrites whole
// cells, and each cell keeps the color of the last thing drawn on it.
//
// [Model] is a Bubble Tea model that ticks the animator at 60 Hz and turns
// terminal resizes into Animator.Resize calls.
package tui
