package events

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	id       string
	priority int
	handle   func(Event) error
}

// NewListenerFunc creates a listener with the given id and priority (lower runs first)
func NewListenerFunc(id string, priority int, handle func(Event) error) *ListenerFunc {
	return &ListenerFunc{id: id, priority: priority, handle: handle}
}

func (l *ListenerFunc) HandleEvent(event Event) error { return l.handle(event) }
func (l *ListenerFunc) Priority() int                { return l.priority }
func (l *ListenerFunc) ID() string                   { return l.id }

// Publisher is the part of the bus services depend on
type Publisher interface {
	Emit(event Event) error
}
