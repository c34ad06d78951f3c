package gorx

// Config tunes compilation and matching behavior. The zero value is not
// meant to be used directly — call DefaultConfig and adjust fields from
// there.
type Config struct {
	// MaxRecursionDepth bounds how deeply the NFA builder will recurse
	// while compiling a pattern's AST. 0 means unlimited. Guards against
	// stack exhaustion on pathologically nested patterns (e.g. thousands
	// of nested groups) rather than a realistic pattern depth.
	MaxRecursionDepth int

	// EnablePrefilter builds a literal-alternation prefilter
	// (github.com/coregx/ahocorasick) at compile time when the pattern's
	// shape allows it, and uses it instead of running the NFA.
	EnablePrefilter bool

	// EnableASCIIFastPath lets the matcher skip UTF-8 decoding when an
	// input is verified ASCII-only (simd.IsASCII), indexing the haystack
	// as bytes directly.
	EnableASCIIFastPath bool
}

// DefaultConfig returns the configuration New and Compile use: prefilter
// and ASCII fast path both enabled, recursion depth capped at a generous
// but finite bound.
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth:   1000,
		EnablePrefilter:     true,
		EnableASCIIFastPath: true,
	}
}
