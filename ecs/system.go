package ecs

// System is a behavior that runs once per frame.
// Systems may declare Query and Singleton fields; the Scheduler binds them at
// registration. Any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
