package session

// Event types emitted after each successful transition.
const (
	EventJobSelected          = "job_selected"
	EventApplicationSubmitted = "application_submitted"
	EventSessionClosed        = "session_closed"
)

// Notifier receives transition events. Implementations must not call back
// into the Store.
type Notifier interface {
	Notify(typ string, data map[string]any)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(typ string, data map[string]any)

func (f NotifierFunc) Notify(typ string, data map[string]any) { f(typ, data) }

// Notifiers fans an event out to several notifiers in order.
type Notifiers []Notifier

func (ns Notifiers) Notify(typ string, data map[string]any) {
	for _, n := range ns {
		if n != nil {
			n.Notify(typ, data)
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, map[string]any) {}
