// Package engine is a small frame loop: a World of typed resources, Systems
// that read and change them, and a Scheduler that runs the systems in order
// and applies their buffered Commands between frames.
package engine
