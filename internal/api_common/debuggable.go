package api_common

// Debuggable reports whether responses may include internal error detail. config.C satisfies it.
type Debuggable interface {
	IsDebugMode() bool
}

type staticDebuggable bool

func (d staticDebuggable) IsDebugMode() bool { return bool(d) }

// NewMockDebuggable returns a fixed Debuggable for handler tests.
func NewMockDebuggable(debug bool) Debuggable {
	return staticDebuggable(debug)
}
