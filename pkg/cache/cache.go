// Package cache é um cache em memória com TTL, seguro para uso concorrente.
// Usado para memorizar resultados de leitura caros dentro de uma janela curta
// (ex.: resolução de grupos de cobrança).
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// TTL é um cache chave/valor com expiração por entrada
type TTL[T any] struct {
	mu    sync.RWMutex
	items map[string]entry[T]
	ttl   time.Duration
	now   func() time.Time
}

// New cria um cache com o TTL informado
func New[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{
		items: make(map[string]entry[T]),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get devolve o valor e true se a entrada existe e não expirou
func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[key]
	if !ok || c.now().After(e.expiresAt) {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set grava o valor com o TTL configurado.
// Entradas expiradas são removidas de forma preguiçosa a cada escrita,
// o que dispensa goroutine de limpeza em segundo plano.
func (c *TTL[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
		}
	}

	c.items[key] = entry[T]{value: value, expiresAt: now.Add(c.ttl)}
}

// Delete remove uma entrada
func (c *TTL[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}
