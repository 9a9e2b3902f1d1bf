package vfs

// contentCache remembers file content by resolved absolute path for the lifetime of
// one FileSystem. The tree never changes after construction, so entries are never
// invalidated, only dropped wholesale on Reset.
type contentCache struct {
	store map[string]string
	hits  int
}

func newContentCache() *contentCache {
	return &contentCache{store: make(map[string]string)}
}

func (c *contentCache) get(path string) (string, bool) {
	content, ok := c.store[path]
	if ok {
		c.hits++
	}
	return content, ok
}

func (c *contentCache) put(path, content string) {
	c.store[path] = content
}

func (c *contentCache) clear() {
	c.store = make(map[string]string)
	c.hits = 0
}

func (c *contentCache) len() int {
	return len(c.store)
}
