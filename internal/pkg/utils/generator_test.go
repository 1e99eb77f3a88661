package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		now := time.UnixMilli(1700000000123)
		id := generateIDAt(now)

		assert.Regexp(t, regexp.MustCompile(`^1700000000123-[0-9a-z]{9}$`), id)
	})

	t.Run("Unique Across Calls", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			id := GenerateID()
			_, dup := seen[id]
			assert.False(t, dup, "id %s generated twice", id)
			seen[id] = struct{}{}
		}
	})
}
