package service

import "sync"

type syncMap[K comparable, V any] struct {
	sm sync.Map
}

func (sw *syncMap[K, V]) Store(key K, value V) {
	sw.sm.Store(key, value)
}

func (sw *syncMap[K, V]) Delete(key K) {
	sw.sm.Delete(key)
}

func (sw *syncMap[K, V]) Range(f func(key K, value V) bool) {
	sw.sm.Range(func(key, value interface{}) bool {
		return f(key.(K), value.(V))
	})
}
