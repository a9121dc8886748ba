package server

// Server is the lifecycle contract of a transport server managed by this
// package. RunServer blocks until a stop signal arrives; Shutdown drains
// in-flight requests and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
