package kdtree

import "runtime"

type buildOptions struct {
	maxThreads int
}

// BuildOption configures SortThreaded.
type BuildOption func(*buildOptions)

// WithMaxThreads bounds the fan-out of SortThreaded's fork-join
// recursion: concurrent recursion stops once 2^depth exceeds n. n <= 0
// falls back to runtime.GOMAXPROCS(0) (hardware concurrency).
func WithMaxThreads(n int) BuildOption {
	return func(o *buildOptions) {
		o.maxThreads = n
	}
}

func resolveBuildOptions(opts []BuildOption) buildOptions {
	o := buildOptions{maxThreads: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxThreads <= 0 {
		o.maxThreads = runtime.GOMAXPROCS(0)
	}
	return o
}
