package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/folio-site/folio-backend/internal/projects/domain"
	"github.com/folio-site/folio-backend/internal/storage/cache"
)

const projectionKey = "projection:years"

// Projector is anything that can produce the year-grouped timeline.
type Projector interface {
	ProjectsByYear(ctx context.Context) ([]domain.ProjectsYear, error)
}

// CachedProjection serves the timeline from a cache and rebuilds it on a
// miss. Cache failures degrade to a direct rebuild. A rebuild that overlaps
// an Invalidate is returned to its caller but never stored.
type CachedProjection struct {
	next  Projector
	cache cache.Cache
	ttl   time.Duration

	mu         sync.Mutex
	generation uint64
}

func NewCachedProjection(next Projector, c cache.Cache, ttl time.Duration) *CachedProjection {
	return &CachedProjection{next: next, cache: c, ttl: ttl}
}

func (p *CachedProjection) ProjectsByYear(ctx context.Context) ([]domain.ProjectsYear, error) {
	data, found, err := p.cache.Get(ctx, projectionKey)
	if err != nil {
		log.Printf("[projection] cache get failed: %v", err)
	}
	if found {
		var years []domain.ProjectsYear
		if err := json.Unmarshal(data, &years); err == nil {
			return years, nil
		}
		log.Printf("[projection] discarding unreadable cache entry")
	}

	gen := p.currentGeneration()
	years, err := p.next.ProjectsByYear(ctx)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(years)
	if err != nil {
		return years, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.generation != gen {
		log.Printf("[projection] skipping cache set: invalidated during rebuild")
		return years, nil
	}
	if err := p.cache.Set(ctx, projectionKey, data, p.ttl); err != nil {
		log.Printf("[projection] cache set failed: %v", err)
	}
	return years, nil
}

// Invalidate drops the cached timeline so the next read rebuilds it.
func (p *CachedProjection) Invalidate(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	return p.cache.Delete(ctx, projectionKey)
}

func (p *CachedProjection) currentGeneration() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}
