package slotgo

// Close releases the registry's storage: fixed slots are dropped and the
// dynamic section, if any, is cleared. Close is idempotent; every other
// operation on a closed registry panics with ErrClosed.
func (r *Registry) Close() error {
	if r == nil || r.closed {
		return nil
	}
	r.closed = true

	cleared := 0
	if r.dynamic != nil {
		cleared = r.dynamic.Len()
		r.dynamic.Clear()
	}
	for i := range r.slots {
		r.slots[i] = nil
	}

	r.logger.LogClose(cleared)
	return nil
}
