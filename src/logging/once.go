package logging

// OncePerPass suppresses repeated warnings within one processing pass.
// A pass calls Reset at its start; after that each distinct key warns once.
// Not safe for concurrent use; owned by a single component instance.
type OncePerPass struct {
	seen map[string]struct{}
}

// Reset starts a new pass, forgetting which keys already warned.
func (o *OncePerPass) Reset() {
	o.seen = nil
}

// Warnf emits the warning if key has not been seen during this pass.
func (o *OncePerPass) Warnf(key, format string, a ...interface{}) {
	if o.seen == nil {
		o.seen = make(map[string]struct{})
	}
	if _, dup := o.seen[key]; dup {
		return
	}
	o.seen[key] = struct{}{}
	Warnf(format, a...)
}
