package main

import (
	"os"
	"path/filepath"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// defaultHome returns the state directory used when no -home flag is given.
func defaultHome() string {
	return env("REMIT_HOME", filepath.Join(env("HOME", "."), ".remit"))
}
