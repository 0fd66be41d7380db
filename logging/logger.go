package logging

import "go.uber.org/zap"

// Named returns a child of the global sugared logger tagged with component.
// config.New must have installed the global logger for output to appear.
func Named(component string) *zap.SugaredLogger {
	return zap.S().Named(component)
}
