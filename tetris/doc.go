// Package tetris implements the game state of a falling-block puzzle: a
// fixed grid of settled cells, a falling tetromino and the rules that move,
// rotate, freeze and clear them.
//
// A Game is driven from outside. The driver calls MoveLeft, MoveRight,
// Rotate and SoftDrop on player input and GravityTick on a timer, then reads
// a Snapshot to draw. Nothing in this package touches a clock, a screen or a
// keyboard, so several games can run side by side in one process.
package tetris
