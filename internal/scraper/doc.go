// Package scraper provides HTTP fetching and HTML parsing for Pokémon
// collectible pages.
//
// Two extractors are implemented: ribbons from Serebii's games section and gym
// badges from the Fandom wiki's badge list. Each one is a single pass over one
// fetched document, driven by site-specific structure: the standard data table
// class on the ribbons page, and a heading-bounded sibling walk over league
// sections on the badges page. Both expose a fail-closed entry point that logs
// failures and returns an empty record list, plus an error-returning variant
// for callers that need the cause.
package scraper
