package repositories

import (
	"sync"
	"time"

	"github.com/hoshichaam/ojol_app_go/internal/home"
)

// ScreenSession adalah satu layar home milik satu klien.
// Lock harus dipegang selama memakai Screen, Recorder dan Device.
type ScreenSession struct {
	sync.Mutex

	ID       string
	Screen   *home.Screen
	Recorder *home.Recorder
	Device   *home.Device

	lastSeen time.Time
}

// NewScreenSession wires a fresh screen to its own recorder and device.
func NewScreenSession(id string, auth home.AuthService, now time.Time) *ScreenSession {
	rec := &home.Recorder{}
	dev := &home.Device{}
	return &ScreenSession{
		ID: id,
		Screen: home.New(home.Deps{
			Auth:      auth,
			Navigator: rec,
			Alerter:   rec,
			Platform:  dev,
			Push:      dev,
		}),
		Recorder: rec,
		Device:   dev,
		lastSeen: now,
	}
}

type ScreenRepo interface {
	// GetOrCreate returns the session for id, creating it with create when missing.
	GetOrCreate(id string, now time.Time, create func(id string) *ScreenSession) *ScreenSession
	Get(id string) (*ScreenSession, bool)
	Delete(id string)
	// Purge removes sessions idle longer than the TTL and reports how many went.
	Purge(now time.Time) int
	Len() int
}

type memoryScreenRepo struct {
	mu    sync.RWMutex
	items map[string]*ScreenSession
	ttl   time.Duration
}

func NewScreenRepo(ttl time.Duration) ScreenRepo {
	return &memoryScreenRepo{
		items: make(map[string]*ScreenSession),
		ttl:   ttl,
	}
}

func (r *memoryScreenRepo) GetOrCreate(id string, now time.Time, create func(id string) *ScreenSession) *ScreenSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		s = create(id)
		r.items[id] = s
	}
	s.lastSeen = now
	return s
}

func (r *memoryScreenRepo) Get(id string) (*ScreenSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	return s, ok
}

func (r *memoryScreenRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
}

func (r *memoryScreenRepo) Purge(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.items {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.items, id)
			n++
		}
	}
	return n
}

func (r *memoryScreenRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
