package validino

import (
	"regexp"
	"sync"
)

var (
	patterns   = make(map[string]*regexp.Regexp)
	patternsMu sync.RWMutex
)

// compilePattern returns a cached compiled pattern or compiles a new one.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	// Fast path: read-lock cache check
	patternsMu.RLock()
	if re, ok := patterns[pattern]; ok {
		patternsMu.RUnlock()
		return re, nil
	}
	patternsMu.RUnlock()

	patternsMu.Lock()
	defer patternsMu.Unlock()

	if re, ok := patterns[pattern]; ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, newConfigError(ErrInvalidPattern, "", pattern)
	}
	patterns[pattern] = re
	return re, nil
}

// ResetPatterns clears the compiled pattern cache.
// This is primarily useful for test isolation.
func ResetPatterns() {
	patternsMu.Lock()
	defer patternsMu.Unlock()
	patterns = make(map[string]*regexp.Regexp)
}
