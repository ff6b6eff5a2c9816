package deck_cache

import (
	"sync"
	"time"

	"github.com/alexchen-dev/portfolio-backend/models"
)

const TTL = 1 * time.Hour

// ── Rendered services deck cache ─────────────────────────────────────────────
// PDF rendering is the most expensive request on the site. The catalog
// and content are static per deploy, so one rendered deck per platform
// can be served until the TTL lapses.

type deckEntry struct {
	pdf        []byte
	renderedAt time.Time
}

var (
	mu    sync.RWMutex
	decks = map[models.Platform]*deckEntry{}
)

func Get(platform models.Platform) ([]byte, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if entry, ok := decks[platform]; ok && time.Since(entry.renderedAt) < TTL {
		return entry.pdf, true
	}
	return nil, false
}

func Set(platform models.Platform, pdf []byte) {
	mu.Lock()
	defer mu.Unlock()
	decks[platform] = &deckEntry{pdf: pdf, renderedAt: time.Now()}
}

func Invalidate() {
	mu.Lock()
	defer mu.Unlock()
	decks = map[models.Platform]*deckEntry{}
}
