package cache

import (
	"sync"
	"time"

	"github.com/AIMastersDoJo/citclocationsdashboard/internal/domain"
)

const DefaultTTL = 25 * time.Second

// DashboardCache guarda os resultados agregados do dashboard em memória.
// Entradas saem apenas por expiração, verificada na leitura.
type DashboardCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*domain.CacheEntry
}

func NewDashboardCache(ttl time.Duration, now func() time.Time) *DashboardCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}

	return &DashboardCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]*domain.CacheEntry),
	}
}

// Get retorna a entrada enquanto now <= ExpiresAt; depois disso remove a chave
func (c *DashboardCache) Get(key string) (*domain.CacheEntry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// outra goroutine pode ter gravado uma entrada nova nesse meio tempo
		if current, exists := c.entries[key]; exists && current == entry {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry, true
}

// Put substitui a entrada da chave por uma nova com expiração now+TTL
func (c *DashboardCache) Put(key string, data domain.LocationCards) domain.CacheEntry {
	now := c.now()
	entry := &domain.CacheEntry{
		Data:      data,
		Updated:   now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	return *entry
}

// Len retorna quantas chaves estão guardadas, incluindo as já expiradas
// que ainda não foram lidas
func (c *DashboardCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TTL retorna o tempo de vida configurado
func (c *DashboardCache) TTL() time.Duration {
	return c.ttl
}
