package di

import (
	"github.com/goliatone/go-memoize/cache"
	"github.com/goliatone/go-memoize/internal/cacheinfra"
	"github.com/goliatone/go-memoize/memoize"
)

// Container provides dependency injection for memoization components.
// It manages the singleton key serializer and the bounded-store
// configuration, and provides factory methods for building per-instance
// caches.
type Container struct {
	serializer cache.KeySerializer
	config     cacheinfra.Config
}

// NewContainer creates a new DI container with the provided bounded-store
// configuration. The configuration is validated once here so every store
// the container hands out is built from known-good settings.
func NewContainer(config cacheinfra.Config) (*Container, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Container{
		serializer: cache.NewDefaultKeySerializer(),
		config:     config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using default
// configuration. This is a convenience constructor for typical use cases
// where custom configuration is not required.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(cacheinfra.DefaultConfig())
}

// KeySerializer returns the singleton key serializer instance.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.serializer
}

// Config returns a copy of the bounded-store configuration used by this
// container. This is useful for debugging and monitoring purposes.
func (c *Container) Config() cacheinfra.Config {
	return c.config
}

// NewStore builds a fresh bounded store from the container configuration.
// Each call returns an independent store; per-instance slots must never be
// shared between instances.
func (c *Container) NewStore() (cache.Store, error) {
	return cacheinfra.NewSturdycStore(c.config)
}

// NewInstanceCache builds a per-instance memoize.Cache wired with a fresh
// bounded store and the container's key serializer.
func NewInstanceCache(container *Container) (*memoize.Cache, error) {
	store, err := container.NewStore()
	if err != nil {
		return nil, err
	}
	return memoize.New(
		memoize.WithStore(store),
		memoize.WithSerializer(container.serializer),
	), nil
}
