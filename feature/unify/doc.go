// Package unify combines the persisted per-platform catalogs into one
// master catalog.
//
// The conflict policy here is deliberately the opposite of the per-platform
// merge: catalogs are visited in a fixed priority order and the first
// source to supply an id wins, so earlier-listed platforms take precedence
// over later ones instead of newer data overriding older.
package unify
