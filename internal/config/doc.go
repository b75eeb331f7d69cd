// Package config loads the settings used to set up memory games.
//
// Settings come from defaults, an optional YAML file and MEMORIZE_*
// environment variables, in increasing order of precedence, and are
// validated before use.
package config
