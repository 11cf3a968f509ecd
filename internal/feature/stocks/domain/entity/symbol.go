// Package entity defines the domain models for the stocks feature.
package entity

// Symbol is an exchange ticker (e.g. "PETR4") uniquely naming one company.
type Symbol string

// String returns the ticker text.
func (s Symbol) String() string { return string(s) }

// DirectoryEntry is one row returned by a remote symbol directory.
type DirectoryEntry struct {
	Symbol      Symbol
	Description string
}
