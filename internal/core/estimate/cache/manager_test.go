package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"calorie-estimator/internal/core/estimate"
	"calorie-estimator/internal/infrastructure/config"
	"calorie-estimator/internal/pkg/common"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	m.Run()
}

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         3,
			TTL:             time.Hour,
			CleanupInterval: time.Hour,
		},
	}
}

func testResult(total int) *estimate.Result {
	return &estimate.Result{
		TotalCalories: total,
		Items:         []estimate.Item{},
		Tips:          []string{},
		Confidence:    estimate.ConfidenceLow,
	}
}

func TestNormalizeKey(t *testing.T) {
	base := NormalizeKey("2 tbsp peanut butter")

	if !strings.HasPrefix(base, "estimate:") {
		t.Fatalf("NormalizeKey missing prefix: %q", base)
	}

	equivalent := []string{
		"2 tbsp peanut butter",
		"  2 tbsp peanut butter  ",
		"2 TBSP Peanut Butter",
		"2  tbsp\tpeanut   butter",
	}
	for _, text := range equivalent {
		if got := NormalizeKey(text); got != base {
			t.Errorf("NormalizeKey(%q) = %q, want %q", text, got, base)
		}
	}

	if got := NormalizeKey("3 tbsp peanut butter"); got == base {
		t.Errorf("NormalizeKey gave same key for different meal text")
	}
}

func TestManagerGetSet(t *testing.T) {
	m := NewManager(testConfig())
	defer m.Close()
	ctx := context.Background()

	if _, err := m.Get(ctx, "2 eggs"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("Get on empty cache: err = %v, want ErrCacheMiss", err)
	}

	want := testResult(156)
	if err := m.Set(ctx, "2 eggs", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := m.Get(ctx, "2 Eggs ")
	if err != nil {
		t.Fatalf("Get after Set: %v", err)
	}
	if got.TotalCalories != want.TotalCalories {
		t.Errorf("cached total = %d, want %d", got.TotalCalories, want.TotalCalories)
	}
}

func TestManagerTTLExpiry(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.TTL = 10 * time.Millisecond
	m := NewManager(cfg)
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "an apple", testResult(95)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := m.Get(ctx, "an apple"); !errors.Is(err, common.ErrCacheMiss) {
		t.Errorf("Get after TTL: err = %v, want ErrCacheMiss", err)
	}
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(testConfig())
	defer m.Close()
	ctx := context.Background()

	meals := []string{"meal one", "meal two", "meal three"}
	for i, meal := range meals {
		if err := m.Set(ctx, meal, testResult(i*100)); err != nil {
			t.Fatalf("Set(%q): %v", meal, err)
		}
	}

	// touch everything except meal one so it becomes the LRU victim
	for _, meal := range meals[1:] {
		if _, err := m.Get(ctx, meal); err != nil {
			t.Fatalf("Get(%q): %v", meal, err)
		}
	}

	if err := m.Set(ctx, "meal four", testResult(400)); err != nil {
		t.Fatalf("Set over capacity: %v", err)
	}

	if _, err := m.Get(ctx, "meal one"); !errors.Is(err, common.ErrCacheMiss) {
		t.Errorf("LRU victim still cached: err = %v, want ErrCacheMiss", err)
	}
	if _, err := m.Get(ctx, "meal four"); err != nil {
		t.Errorf("new entry missing after eviction: %v", err)
	}
}

func TestManagerNilSafe(t *testing.T) {
	var m *Manager
	ctx := context.Background()

	if _, err := m.Get(ctx, "anything"); !errors.Is(err, common.ErrCacheDisabled) {
		t.Errorf("nil Get: err = %v, want ErrCacheDisabled", err)
	}
	if err := m.Set(ctx, "anything", testResult(1)); err != nil {
		t.Errorf("nil Set: err = %v, want nil", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("nil Close: err = %v, want nil", err)
	}
	stats := m.GetStats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Errorf("nil GetStats reports enabled")
	}
}

func TestManagerStats(t *testing.T) {
	m := NewManager(testConfig())
	defer m.Close()
	ctx := context.Background()

	m.Get(ctx, "miss")
	m.Set(ctx, "hit", testResult(10))
	m.Get(ctx, "hit")

	stats := m.GetStats()
	if stats["hits"].(int64) != 1 {
		t.Errorf("hits = %v, want 1", stats["hits"])
	}
	if stats["misses"].(int64) != 1 {
		t.Errorf("misses = %v, want 1", stats["misses"])
	}
	if stats["size"].(int) != 1 {
		t.Errorf("size = %v, want 1", stats["size"])
	}
}
