// Package registry provides lookup of IEEE-assigned OUI (Organizationally
// Unique Identifier) and IAB (Individual Address Block) records over the
// IEEE's flat-file oui.txt/iab.txt registries.
//
// The underlying index is built once, lazily, on first lookup and held
// process-wide for the remainder of the process's life; callers never see
// a partially built index and never need to synchronize access to it
// themselves. Use Init to configure the source data or logger before the
// first lookup triggers the default lazy build.
package registry
