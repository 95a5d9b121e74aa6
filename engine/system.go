package engine

// System is one step of a frame. Systems may keep their own state between
// frames and may declare Resource fields; the Scheduler binds those to its
// World when the system is registered.
type System interface {
	Execute(frame *UpdateFrame)
}
