package redis

import (
	"fmt"
	"strings"
)

const (
	// KeyPrefixEntry is the prefix for entry keys
	KeyPrefixEntry = "readinglist:entry:"
	// KeyPrefixCache is the prefix for cached search results
	KeyPrefixCache = "readinglist:cache:"
	// KeyAllEntries is the key for the set of all entry IDs
	KeyAllEntries = "readinglist:entries:all"
	// KeyUsage is the hash of entry ID -> redirect counter
	KeyUsage = "readinglist:usage"
)

// EntryKey returns the Redis key for an entry by ID
func EntryKey(id string) string {
	return KeyPrefixEntry + id
}

// CacheKey returns the Redis key for the cached results of a query.
// Queries differing only in case or spacing share a key.
func CacheKey(query string, limit int) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return fmt.Sprintf("%s%d:%s", KeyPrefixCache, limit, normalized)
}

// AllEntriesKey returns the key for the set of all entry IDs
func AllEntriesKey() string {
	return KeyAllEntries
}

// UsageKey returns the key of the usage counter hash
func UsageKey() string {
	return KeyUsage
}
