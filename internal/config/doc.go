// Package config provides configuration structures and utilities for lnsources.
// It defines the command options, the YAML configuration file that supplies
// the rejection table and user-declared sources, and the XDG directories
// used for the snapshot database.
package config
