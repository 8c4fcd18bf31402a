// Package notifier provides announcement interfaces and implementations for
// newly tracked Pokémon collectibles.
//
// The notifier package supports posting record announcements to various
// platforms including Twitter. It handles OAuth authentication, rate limiting,
// and message formatting for different notification channels.
package notifier
