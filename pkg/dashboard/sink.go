package dashboard

// Sink receives published view models. Publishing a slot replaces its
// previous value entirely.
type Sink interface {
	Publish(slot Slot, value interface{}) error
}

// MemorySink keeps the latest value of every slot.
type MemorySink struct {
	values    map[Slot]interface{}
	publishes int
}

func NewMemorySink() *MemorySink {
	return &MemorySink{values: make(map[Slot]interface{})}
}

func (m *MemorySink) Publish(slot Slot, value interface{}) error {
	m.values[slot] = value
	m.publishes++
	return nil
}

func (m *MemorySink) Get(slot Slot) (interface{}, bool) {
	v, ok := m.values[slot]
	return v, ok
}

// Snapshot copies the current slot values.
func (m *MemorySink) Snapshot() map[Slot]interface{} {
	out := make(map[Slot]interface{}, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Publishes counts Publish calls since creation.
func (m *MemorySink) Publishes() int {
	return m.publishes
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(slot Slot, value interface{}) error

func (f SinkFunc) Publish(slot Slot, value interface{}) error {
	return f(slot, value)
}
