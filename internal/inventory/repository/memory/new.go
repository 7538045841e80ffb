package memory

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"preference-service/internal/inventory"
	"preference-service/internal/inventory/repository"
	"preference-service/pkg/log"
)

const DefaultCacheSize = 1024

// implRepository is the only inventory store. mu serialises every write so
// name checks and appends see the latest state.
type implRepository struct {
	mu    sync.RWMutex
	cache *lru.Cache[string, inventory.Inventory]
	size  int
	l     log.Logger
	now   func() time.Time
}

// New creates an in-memory Repository holding at most size inventories.
// Once full, creating an inventory evicts the least recently used one.
func New(size int, l log.Logger) repository.Repository {
	if l == nil {
		panic("inventory/repository/memory: logger is required")
	}
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, inventory.Inventory](size)
	if err != nil {
		panic(fmt.Sprintf("inventory/repository/memory: %v", err))
	}
	return &implRepository{cache: cache, size: size, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inventory/repository/memory.%s", method)
}
