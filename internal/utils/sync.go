package utils

import (
	"sync"
)

// OptionalMutex is a mutex that does nothing when UseMutex is false, for objects whose owner
// has promised to serialize access itself
type OptionalMutex struct {
	Mutex    sync.Mutex
	UseMutex bool
}

func (m *OptionalMutex) Lock() {
	if m.UseMutex {
		m.Mutex.Lock()
	}
}

func (m *OptionalMutex) Unlock() {
	if m.UseMutex {
		m.Mutex.Unlock()
	}
}

func (m *OptionalMutex) TryLock() bool {
	if m.UseMutex {
		return m.Mutex.TryLock()
	}

	return true
}

// With runs fn while holding the mutex. The mutex is released on every return path, including
// a panic in fn.
func (m *OptionalMutex) With(fn func() error) error {
	m.Lock()
	defer m.Unlock()

	return fn()
}

// OptionalRWMutex is a reader/writer mutex that does nothing when UseMutex is false
type OptionalRWMutex struct {
	Mutex    sync.RWMutex
	UseMutex bool
}

func (m *OptionalRWMutex) Lock() {
	if m.UseMutex {
		m.Mutex.Lock()
	}
}

func (m *OptionalRWMutex) Unlock() {
	if m.UseMutex {
		m.Mutex.Unlock()
	}
}

func (m *OptionalRWMutex) RLock() {
	if m.UseMutex {
		m.Mutex.RLock()
	}
}

func (m *OptionalRWMutex) RUnlock() {
	if m.UseMutex {
		m.Mutex.RUnlock()
	}
}
