package interfaces

// IChangeListener is notified after every successful store mutation so
// outer layers (UI refresh, cache invalidation) can react. The refresh
// policy itself is not the core's concern.
type IChangeListener interface {
	DataChanged(collection string)
}

// NoopChangeListener satisfies IChangeListener for callers that do not
// care about notifications (tests, batch jobs).
type NoopChangeListener struct{}

func (NoopChangeListener) DataChanged(string) {}
