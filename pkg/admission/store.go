package admission

import (
	"sync"
	"time"
)

// Entry bir anahtarın mevcut penceredeki sayacıdır.
type Entry struct {
	Count   int
	ResetAt time.Time
}

// Store hız sınırı sayaçlarını tutar. Süresi dolan kayıtlar temizlenmez;
// anahtar tekrar geldiğinde Reset ile yenilenir.
type Store interface {
	Get(key string) (Entry, bool)
	Increment(key string) Entry
	Reset(key string, resetAt time.Time) Entry
}

// MemoryStore süreç içi Store uygulamasıdır; yeniden başlatmada sıfırlanır.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryStore boş bir MemoryStore oluşturur.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok
}

func (s *MemoryStore) Increment(key string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[key]
	e.Count++
	s.entries[key] = e
	return e
}

func (s *MemoryStore) Reset(key string, resetAt time.Time) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := Entry{Count: 1, ResetAt: resetAt}
	s.entries[key] = e
	return e
}

var _ Store = (*MemoryStore)(nil)
