package highlight

// Observer is the port through which the registry publishes state changes.
// UI layers consume it; the registry never holds a reference to a UI.
type Observer interface {
	// StatsUpdated fires after any operation that changes the global
	// statistics.
	StatsUpdated(Stats)

	// CursorMoved fires when the cursor position or total changes.
	CursorMoved(index, total int)
}

// NopObserver ignores every notification. It is the default observer.
type NopObserver struct{}

// StatsUpdated implements Observer.
func (NopObserver) StatsUpdated(Stats) {}

// CursorMoved implements Observer.
func (NopObserver) CursorMoved(int, int) {}
