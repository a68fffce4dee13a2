// Package config loads the zc configuration file.
//
// The configuration lives at <xdg-config>/zc/config.yaml and controls the
// default platform set for installs plus an optional override for the
// shared-resource directory. Environment variables prefixed with ZC_
// override file values.
package config
