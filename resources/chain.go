package resources

// Ensure Chain implements Resources
var _ Resources = Chain(nil)

// Chain resolves against each bundle in order; the first hit wins.
type Chain []Resources

func (c Chain) Lookup(name, resType, pkg string) (string, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if v, ok := r.Lookup(name, resType, pkg); ok {
			return v, true
		}
	}
	return "", false
}
