package octree

// SplitPolicy decides whether a filled leaf subdivides when another entry arrives. Leaves whose
// entries all share one position never subdivide, whatever the policy says.
type SplitPolicy interface {
	// NeedsSplit reports whether a leaf currently holding entries entries should split rather
	// than take one more.
	NeedsSplit(entries int) bool
}

// MaxElements lets a leaf hold up to that many entries before it subdivides.
type MaxElements int

// NeedsSplit implements SplitPolicy.
func (m MaxElements) NeedsSplit(entries int) bool {
	return entries >= int(m)
}

// SplitPolicyFunc adapts a function to a SplitPolicy.
type SplitPolicyFunc func(entries int) bool

// NeedsSplit implements SplitPolicy.
func (f SplitPolicyFunc) NeedsSplit(entries int) bool {
	return f(entries)
}

// DefaultSplitPolicy subdivides a leaf as soon as a second point arrives.
var DefaultSplitPolicy SplitPolicy = MaxElements(1)
