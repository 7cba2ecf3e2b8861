package apikeys

import (
	"reflect"
	"sync"
)

// listenerList is an ordered, mutex-guarded sequence of listeners.
// Duplicates are kept; notification works on a snapshot.
type listenerList struct {
	mu        sync.Mutex
	listeners []ChangeListener
}

func (l *listenerList) add(listener ChangeListener) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.listeners = append(l.listeners, listener)
	return len(l.listeners)
}

// remove drops the first registration equal to listener
func (l *listenerList) remove(listener ChangeListener) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, registered := range l.listeners {
		if sameListener(registered, listener) {
			l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
			return len(l.listeners), true
		}
	}
	return len(l.listeners), false
}

// sameListener reports identity without panicking on listeners whose
// dynamic type cannot be compared; such listeners never match.
func sameListener(a, b ChangeListener) (same bool) {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	// Comparable struct types may still hold non-comparable values in
	// interface fields.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// removable reports whether listener can later be matched by remove
func removable(listener ChangeListener) bool {
	return reflect.TypeOf(listener).Comparable()
}

func (l *listenerList) snapshot() []ChangeListener {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.listeners) == 0 {
		return nil
	}
	out := make([]ChangeListener, len(l.listeners))
	copy(out, l.listeners)
	return out
}

func (l *listenerList) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.listeners)
}

// funcListener gives a plain callback a comparable identity
type funcListener struct {
	fn func(newKey string)
}

func (f *funcListener) OnAPIKeyChanged(newKey string) {
	f.fn(newKey)
}
