package di

import (
	"context"
	"testing"

	"github.com/goliatone/go-memoize/internal/cacheinfra"
	"github.com/goliatone/go-memoize/memoize"
)

func TestNewContainer_ValidatesConfig(t *testing.T) {
	cfg := cacheinfra.DefaultConfig()
	cfg.Capacity = 0

	if _, err := NewContainer(cfg); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestNewContainerWithDefaults(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() error = %v", err)
	}

	if container.KeySerializer() == nil {
		t.Error("expected a key serializer singleton")
	}

	if container.Config().Capacity != cacheinfra.DefaultConfig().Capacity {
		t.Errorf("Config().Capacity = %d, want %d", container.Config().Capacity, cacheinfra.DefaultConfig().Capacity)
	}
}

func TestContainer_NewStoreBuildsIndependentStores(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() error = %v", err)
	}

	first, err := container.NewStore()
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	second, err := container.NewStore()
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	first.Set("k", 1)
	if _, ok := second.Get("k"); ok {
		t.Error("stores handed out by the container must not share entries")
	}
}

func TestNewInstanceCache(t *testing.T) {
	ctx := context.Background()

	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() error = %v", err)
	}

	instanceCache, err := NewInstanceCache(container)
	if err != nil {
		t.Fatalf("NewInstanceCache() error = %v", err)
	}

	calls := 0
	value := memoize.NewProperty(instanceCache, "value", func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})

	for i := 0; i < 3; i++ {
		got, err := value.Get(ctx)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != 42 {
			t.Errorf("Get() = %d, want 42", got)
		}
	}

	if calls != 1 {
		t.Errorf("computation ran %d times, want 1", calls)
	}
}
