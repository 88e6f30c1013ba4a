// Package keygen assembles the sampler and wrapper into single- and
// multi-key generation sessions.
package keygen

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/keyforge/keyforge/internal/request"
	"github.com/keyforge/keyforge/internal/sampler"
	"github.com/keyforge/keyforge/internal/wrapper"
)

// maxWorkers bounds the pool used for multi-key generation. Draws are
// independent, so this is throughput tuning, not correctness.
const maxWorkers = 8

// Engine owns one generation session. Key and Keys are computed once
// and memoized for the life of the engine.
type Engine struct {
	cfg *request.Config

	keyOnce sync.Once
	key     *Key
	keyErr  error

	keysOnce sync.Once
	keys     *Collection
	keysErr  error
}

// New creates an engine for a validated configuration.
func New(cfg *request.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Key returns the session's single generated key.
func (e *Engine) Key() (*Key, error) {
	e.keyOnce.Do(func() {
		e.key, e.keyErr = generate(e.cfg)
	})

	return e.key, e.keyErr
}

// Keys returns the session's key collection. The size defaults to two
// when no key count was requested. Keys are generated on a bounded
// worker pool; results are placed by request index so collection order
// never depends on completion order.
func (e *Engine) Keys() (*Collection, error) {
	e.keysOnce.Do(func() {
		n := e.cfg.KeyCount
		if n == 0 {
			n = request.DefaultKeyCount
		}

		keys := make([]*Key, n)

		var g errgroup.Group

		g.SetLimit(maxWorkers)

		for i := range keys {
			i := i
			g.Go(func() error {
				k, err := generate(e.cfg)
				if err != nil {
					return err
				}

				keys[i] = k

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			e.keysErr = err
			return
		}

		labels := make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("key%d", i+1)
		}

		e.keys = &Collection{labels: labels, keys: keys}
	})

	return e.keys, e.keysErr
}

// generate runs one independent sampler+wrapper pass.
func generate(cfg *request.Config) (*Key, error) {
	raw, err := sampler.Draw(cfg)
	if err != nil {
		return nil, err
	}

	text, err := wrapper.Wrap(raw, cfg)
	if err != nil {
		return nil, err
	}

	return &Key{raw: raw, text: text}, nil
}
