package modkit

// Options is the base builder that generated options types embed. Extension
// methods mutate it through Set and return the embedding type for chaining.
type Options struct {
	settings map[string]any
}

// Set stores a single builder setting, overwriting any previous value for
// the same key.
func (o *Options) Set(key string, value any) *Options {
	if o.settings == nil {
		o.settings = make(map[string]any)
	}
	o.settings[key] = value
	return o
}

// Get returns the value previously stored under key, if any.
func (o *Options) Get(key string) (any, bool) {
	v, ok := o.settings[key]
	return v, ok
}

// Request is one pending typed request produced by a generated manager.
type Request struct {
	Target  string
	Options *Options
}

// Manager is the base type generated managers embed.
type Manager struct{}

// NewRequest starts a request for the named target type with empty options.
func (m *Manager) NewRequest(target string) *Request {
	return &Request{Target: target, Options: &Options{}}
}

// ManagerFactory produces manager instances for the host application. The
// generated factory artifact implements it with the generated manager type.
type ManagerFactory interface {
	Build() any
}
