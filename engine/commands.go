package engine

// Commands buffers changes that must not happen while systems are running.
// The Scheduler flushes them once every system has executed for the frame.
type Commands struct {
	inserts []any
	defers  []func()
	halt    bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Insert queues a resource to be added to the World, replacing any resource
// of the same type.
func (c *Commands) Insert(resource any) {
	c.inserts = append(c.inserts, resource)
}

// Defer queues fn to run after the frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Halt asks the Scheduler to stop running frames once this one finishes.
func (c *Commands) Halt() {
	c.halt = true
}

// Flush applies inserts, then deferred functions in queue order, and resets
// the buffer. It reports whether a halt was requested.
func (c *Commands) Flush(world *World) bool {
	for _, r := range c.inserts {
		world.Insert(r)
	}
	for _, fn := range c.defers {
		fn()
	}

	halt := c.halt
	clear(c.inserts)
	c.inserts = c.inserts[:0]
	clear(c.defers)
	c.defers = c.defers[:0]
	c.halt = false
	return halt
}
