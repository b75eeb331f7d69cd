package memorize

// observers is an ordered list of change callbacks.
// Callbacks run synchronously on the caller's goroutine.
type observers struct {
	next    int
	entries []observer
}

type observer struct {
	id int
	fn func()
}

// add registers fn and returns an idempotent cancel function.
func (o *observers) add(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	o.next++
	id := o.next
	o.entries = append(o.entries, observer{id: id, fn: fn})
	return func() { o.remove(id) }
}

func (o *observers) remove(id int) {
	for i, e := range o.entries {
		if e.id == id {
			o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
			return
		}
	}
}

func (o *observers) len() int {
	return len(o.entries)
}

// notify calls every observer registered at the time of the call.
func (o *observers) notify() {
	entries := make([]observer, len(o.entries))
	copy(entries, o.entries)
	for _, e := range entries {
		e.fn()
	}
}
