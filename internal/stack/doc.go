// Package stack holds the registry of supported language stacks and the
// per-stack capability tables used by CI and dependency-scan fragments.
//
// Each stack renders a fixed set of base files from the embedded template
// tree. Rendering is pure: the only inputs are the configuration and the
// templates, and the same inputs always produce the same files.
package stack
