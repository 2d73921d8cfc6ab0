package container

import "sync"

// Registry maps a short name (as passed to cmd/quatc --outer-codec) to an
// OuterCodec implementation, so new outer passes can be added without
// threading a new CLI flag through Options by hand.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]OuterCodec
}

var defaultRegistry = &Registry{
	codecs: map[string]OuterCodec{
		"none": nil,
		"zstd": ZstdCodec{},
	},
}

// RegisterOuterCodec adds (or replaces) a named outer codec in the default
// registry.
func RegisterOuterCodec(name string, c OuterCodec) {
	defaultRegistry.Register(name, c)
}

// OuterCodecByName looks up a codec in the default registry.
func OuterCodecByName(name string) (OuterCodec, error) {
	return defaultRegistry.Get(name)
}

// OuterCodecNames lists the names registered in the default registry.
func OuterCodecNames() []string {
	return defaultRegistry.Names()
}

func (r *Registry) Register(name string, c OuterCodec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[name] = c
}

func (r *Registry) Get(name string) (OuterCodec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[name]
	if !ok {
		return nil, ErrUnknownOuterCodec
	}
	return c, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	return names
}
