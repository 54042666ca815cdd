package cache

// Cache is a bounded key/value cache safe for concurrent use.
type Cache interface {
	Get(key interface{}) (interface{}, bool)
	Add(key, value interface{})
	Len() int
}
