package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryKey(t *testing.T) {
	assert.Equal(t, "readinglist:entry:6f1c", EntryKey("6f1c"))
}

func TestCacheKeyNormalizes(t *testing.T) {
	assert.Equal(t, "readinglist:cache:10:clean code", CacheKey("  Clean   CODE ", 10))
	assert.Equal(t, CacheKey("kind:book git", 5), CacheKey("KIND:Book  git", 5))
	assert.NotEqual(t, CacheKey("git", 5), CacheKey("git", 10))
}

func TestStaticKeys(t *testing.T) {
	assert.Equal(t, KeyAllEntries, AllEntriesKey())
	assert.Equal(t, KeyUsage, UsageKey())
}
