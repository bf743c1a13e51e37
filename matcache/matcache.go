// Package matcache holds project-wide defaults shared by the config and CLI
// layers.
package matcache

const (
	DefaultAppName    = "matcache"
	DefaultConfigPath = "$HOME/.config/matcache"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	// DefaultConditionTolerance is the largest matrix condition number the
	// solver accepts before treating the input as effectively singular.
	DefaultConditionTolerance = 1e16
)
