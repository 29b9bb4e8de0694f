package logger

import "sync"

// Component names shared by streamkit binaries.
const (
	ComponentRunner = "runner"
	ComponentCLI    = "cli"
)

// named maps component names to *Logger.
var named sync.Map

// Register makes l the logger Get returns for a component. A nil l removes
// the entry.
func Register(component string, l *Logger) {
	if l == nil {
		named.Delete(component)
		return
	}
	named.Store(component, l)
}

// Get returns the logger registered for component. Unregistered components
// get the global logger tagged with the component name, so it follows later
// calls to Init.
func Get(component string) *Logger {
	if l, ok := named.Load(component); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(component)
}

// RegisterDefaults pins component loggers derived from the current global
// logger. Call it after Init.
func RegisterDefaults(components ...string) {
	global := GetGlobalLogger()
	for _, c := range components {
		Register(c, global.WithComponent(c))
	}
}
