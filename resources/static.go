package resources

import "sync"

// Ensure Static implements Resources
var _ Resources = (*Static)(nil)

// Static is an in-memory resource bundle keyed by package, type and name.
type Static struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStatic creates an empty in-memory bundle
func NewStatic() *Static {
	return &Static{values: make(map[string]string)}
}

// Set stores a value for the given package, type and name
func (s *Static) Set(pkg, resType, name, value string) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[bundleKey(pkg, resType, name)] = value
	return s
}

// Delete removes a value; missing entries are ignored
func (s *Static) Delete(pkg, resType, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, bundleKey(pkg, resType, name))
}

// Lookup returns the stored value if present
func (s *Static) Lookup(name, resType, pkg string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[bundleKey(pkg, resType, name)]
	return v, ok
}

func bundleKey(pkg, resType, name string) string {
	return pkg + "|" + resType + "|" + name
}

// Ensure Context implements AppContext
var _ AppContext = (*Context)(nil)

// Context is a plain AppContext pairing a package name with a bundle.
type Context struct {
	pkg       string
	resources Resources
}

// NewContext creates a context for pkg backed by res. res may be nil.
func NewContext(pkg string, res Resources) *Context {
	return &Context{pkg: pkg, resources: res}
}

func (c *Context) Resources() Resources {
	return c.resources
}

func (c *Context) PackageName() string {
	return c.pkg
}
