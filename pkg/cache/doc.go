// Package cache provides a generic, thread-safe LRU cache.
//
// The validator package uses it to share compiled pattern tables between
// engines with the same decimal separator and to avoid recompiling custom
// patterns that several fields use.
//
//	c := cache.NewLRUCache[string, *regexp.Regexp](64)
//	re, err := c.GetOrCreate(pattern, func() (*regexp.Regexp, error) {
//		return regexp.Compile(pattern)
//	})
package cache
