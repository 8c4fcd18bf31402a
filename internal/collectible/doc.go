// Package collectible provides types and functions for managing scraped
// Pokémon collectible records.
//
// The collectible package handles record representation, identification, and
// change detection through snapshot-based diffing. Each record carries a
// deterministic SHA1-based content ID derived from its name, image URL, and
// description, plus a rename-stable key derived from the normalized name,
// enabling reliable tracking across runs even as wiki pages are edited.
package collectible
