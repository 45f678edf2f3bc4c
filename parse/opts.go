package parse

import (
	"runtime"

	"github.com/obolibrary/obo-format/go-obo/intern"
)

type config struct {
	workers int
	ordered bool
	cache   *intern.Cache
}

// Option configures parsing and streaming reads.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.cache == nil {
		cfg.cache = intern.NewCache()
	}
	return cfg
}

// Workers sets the parse worker pool size. Zero or one disables the
// pool and parses frames sequentially with identical observable
// output. The default is the available parallelism.
func Workers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// Ordered makes a FrameReader deliver frames in input order instead
// of completion order, buffering out-of-order completions.
func Ordered(v bool) Option {
	return func(c *config) {
		c.ordered = v
	}
}

// WithCache supplies the interning cache for the parse session. By
// default each call builds its own cache; passing one explicitly lets
// several documents share identifier storage.
func WithCache(cache *intern.Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}
