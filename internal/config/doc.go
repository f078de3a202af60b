// Package config holds runtime configuration for report generation.
//
// Business thresholds (user value limit, admin priority threshold) are
// named configuration with package-level defaults, not magic values
// scattered through the code. A Config is populated from defaults, an
// optional YAML file, and CLI flags, then passed down via dependency
// injection rather than global state.
package config
