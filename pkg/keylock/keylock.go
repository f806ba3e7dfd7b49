// Package keylock serializes work per string key.
package keylock

import "sync"

type entry struct {
	mtx  sync.Mutex
	refs int
}

// KeyLock - мьютекс на каждый ключ. Записи удаляются, когда их никто не держит
type KeyLock struct {
	mtx   sync.Mutex
	locks map[string]*entry
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*entry)}
}

// Lock блокирует ключ и возвращает функцию разблокировки
func (k *KeyLock) Lock(key string) (unlock func()) {
	k.mtx.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mtx.Unlock()

	e.mtx.Lock()

	return func() {
		e.mtx.Unlock()

		k.mtx.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mtx.Unlock()
	}
}

// Len - число ключей, которые сейчас заняты или ожидаются
func (k *KeyLock) Len() int {
	k.mtx.Lock()
	defer k.mtx.Unlock()
	return len(k.locks)
}
