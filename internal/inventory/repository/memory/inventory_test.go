package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"preference-service/internal/inventory"
	repo "preference-service/internal/inventory/repository"
	"preference-service/internal/model"
	"preference-service/pkg/log"
)

func newTestRepo(t *testing.T, size int) *implRepository {
	t.Helper()
	r := New(size, log.NewNop()).(*implRepository)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return r
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t, 10)

	created, err := r.CreateInventory(ctx, repo.CreateInventoryOptions{
		Name:     "launch",
		Shirts:   []model.ShirtColor{model.ShirtRed, model.ShirtBlue},
		Strategy: inventory.StrategyMostRecent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}

	byID, err := r.GetOneInventory(ctx, repo.GetOneInventoryOptions{ID: created.ID})
	if err != nil || byID.ID != created.ID {
		t.Fatalf("GetOne by ID = %+v, %v", byID, err)
	}
	if byID.Strategy != inventory.StrategyMostRecent || len(byID.Shirts) != 2 {
		t.Errorf("unexpected inventory: %+v", byID)
	}

	byName, _ := r.GetOneInventory(ctx, repo.GetOneInventoryOptions{Name: "launch"})
	if byName.ID != created.ID {
		t.Errorf("GetOne by name returned %q", byName.ID)
	}

	mismatch, _ := r.GetOneInventory(ctx, repo.GetOneInventoryOptions{ID: created.ID, Name: "other"})
	if mismatch.ID != "" {
		t.Error("expected no match when name filter differs")
	}

	missing, err := r.GetOneInventory(ctx, repo.GetOneInventoryOptions{ID: "nope"})
	if err != nil || missing.ID != "" {
		t.Errorf("expected zero value for missing id, got %+v, %v", missing, err)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t, 10)

	input := []model.ShirtColor{model.ShirtRed}
	created, _ := r.CreateInventory(ctx, repo.CreateInventoryOptions{Name: "a", Shirts: input})

	input[0] = model.ShirtBlue
	created.Shirts[0] = model.ShirtBlue

	got, _ := r.GetOneInventory(ctx, repo.GetOneInventoryOptions{ID: created.ID})
	if got.Shirts[0] != model.ShirtRed {
		t.Errorf("stored shirts changed through a caller's slice: %v", got.Shirts)
	}
}

func TestListInventories(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t, 10)

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		inv, _ := r.CreateInventory(ctx, repo.CreateInventoryOptions{Name: name})
		ids = append(ids, inv.ID)
	}

	all, total, err := r.ListInventories(ctx, repo.ListInventoriesOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("expected 3 inventories, got %d (total %d)", len(all), total)
	}
	if all[0].ID != ids[2] || all[2].ID != ids[0] {
		t.Errorf("expected newest first, got %s..%s", all[0].Name, all[2].Name)
	}

	page, total, _ := r.ListInventories(ctx, repo.ListInventoriesOptions{Limit: 1, Offset: 1})
	if total != 3 || len(page) != 1 || page[0].ID != ids[1] {
		t.Errorf("unexpected page: %+v (total %d)", page, total)
	}

	beyond, _, _ := r.ListInventories(ctx, repo.ListInventoriesOptions{Limit: 5, Offset: 10})
	if len(beyond) != 0 {
		t.Errorf("expected empty page past the end, got %d", len(beyond))
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t, 10)

	inv, _ := r.CreateInventory(ctx, repo.CreateInventoryOptions{Name: "a", Shirts: []model.ShirtColor{model.ShirtRed}})

	updated, err := r.UpdateInventory(ctx, repo.UpdateInventoryOptions{
		ID:           inv.ID,
		AppendShirts: []model.ShirtColor{model.ShirtBlue, model.ShirtBlue},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(updated.Shirts, []model.ShirtColor{model.ShirtRed, model.ShirtBlue, model.ShirtBlue}) {
		t.Errorf("expected shirts appended in order, got %v", updated.Shirts)
	}
	if !updated.UpdatedAt.After(inv.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}

	none, _ := r.UpdateInventory(ctx, repo.UpdateInventoryOptions{ID: "missing"})
	if none.ID != "" {
		t.Error("expected zero value when updating a missing inventory")
	}

	if err := r.DeleteInventory(ctx, inv.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gone, _ := r.GetOneInventory(ctx, repo.GetOneInventoryOptions{ID: inv.ID})
	if gone.ID != "" {
		t.Error("expected inventory to be deleted")
	}
}

func TestCreateInventory_NameTaken(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t, 10)

	if _, err := r.CreateInventory(ctx, repo.CreateInventoryOptions{Name: "launch"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.CreateInventory(ctx, repo.CreateInventoryOptions{Name: "launch"}); !errors.Is(err, repo.ErrNameTaken) {
		t.Errorf("expected ErrNameTaken, got %v", err)
	}
	if _, total, _ := r.ListInventories(ctx, repo.ListInventoriesOptions{}); total != 1 {
		t.Errorf("expected 1 inventory, got %d", total)
	}
}

func TestUpdateInventory_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t, 10)
	inv, _ := r.CreateInventory(ctx, repo.CreateInventoryOptions{Name: "a"})

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.UpdateInventory(ctx, repo.UpdateInventoryOptions{ID: inv.ID, AppendShirts: []model.ShirtColor{model.ShirtBlue}})
		}()
	}
	wg.Wait()

	got, _ := r.GetOneInventory(ctx, repo.GetOneInventoryOptions{ID: inv.ID})
	if len(got.Shirts) != n {
		t.Errorf("expected %d shirts, got %d", n, len(got.Shirts))
	}
}

// warnLog records Warnf calls and discards everything else.
type warnLog struct {
	log.Logger
	mu    sync.Mutex
	warns []string
}

func (w *warnLog) Warnf(ctx context.Context, template string, arg ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.warns = append(w.warns, fmt.Sprintf(template, arg...))
}

func TestEviction(t *testing.T) {
	ctx := context.Background()
	l := &warnLog{Logger: log.NewNop()}
	r := newTestRepo(t, 2)
	r.l = l

	oldest, _ := r.CreateInventory(ctx, repo.CreateInventoryOptions{Name: "oldest"})
	r.CreateInventory(ctx, repo.CreateInventoryOptions{Name: "middle"})
	r.CreateInventory(ctx, repo.CreateInventoryOptions{Name: "newest"})

	got, _ := r.GetOneInventory(ctx, repo.GetOneInventoryOptions{ID: oldest.ID})
	if got.ID != "" {
		t.Error("expected least recently used inventory to be evicted")
	}
	_, total, _ := r.ListInventories(ctx, repo.ListInventoriesOptions{})
	if total != 2 {
		t.Errorf("expected 2 inventories after eviction, got %d", total)
	}
	if len(l.warns) != 1 || !strings.Contains(l.warns[0], oldest.ID) {
		t.Errorf("expected one eviction warning naming %s, got %v", oldest.ID, l.warns)
	}

	if err := r.DeleteInventory(ctx, oldest.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.warns) != 1 {
		t.Errorf("explicit deletes must not warn, got %v", l.warns)
	}
}
