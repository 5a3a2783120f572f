// Package config loads the bundle metadata shipped alongside the
// template tree.
//
// The metadata file (bundle.yaml) is written at build time and
// describes the runtime being installed: product name, version, the
// build-time placeholder path baked into relocatable files, the
// default install directory, and feature flags.
//
// A Bundle is loaded once at startup and passed explicitly to the
// components that need it. Nothing in this package is mutable after
// Load returns.
package config
