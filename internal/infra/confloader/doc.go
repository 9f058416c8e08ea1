// Package confloader provides configuration loading for vecmap-go tools.
//
// This package implements a configuration loader on top of koanf that
// merges several sources into one typed struct.
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables (VECMAP_ prefix)
//  3. Configuration file (YAML)
//  4. Default values already present in the target struct
package confloader
