package cache

// RenderKeyOpts are the render options that change the artifact bytes.
type RenderKeyOpts struct {
	Format    string `json:"format"`
	ShowZone  bool   `json:"show_zone"`
	HideLoose bool   `json:"hide_loose"`
	Grid      bool   `json:"grid"`
}

// Keyer builds cache keys.
type Keyer interface {
	// RenderKey is the key of a rendered artifact for a snapshot digest.
	RenderKey(digest string, opts RenderKeyOpts) string
}

// DefaultKeyer hashes the digest together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) RenderKey(digest string, opts RenderKeyOpts) string {
	return hashKey("render", digest, opts)
}

// ScopedKeyer prefixes every key of an inner keyer. The server scopes keys
// per deployment so several instances can share one cache directory.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) RenderKey(digest string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(digest, opts)
}
