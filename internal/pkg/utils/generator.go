package utils

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixLength = 9

// GenerateID returns "<unix millis>-<9 base36 chars>". Collisions are
// negligible at this scale; ids are neither strictly ordered nor secret.
func GenerateID() string {
	return generateIDAt(time.Now())
}

func generateIDAt(now time.Time) string {
	random := uuid.New()
	suffix := new(big.Int).SetBytes(random[:]).Text(36)
	if len(suffix) < idSuffixLength {
		suffix = strings.Repeat("0", idSuffixLength-len(suffix)) + suffix
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix[len(suffix)-idSuffixLength:]
}

func GenerateRequestID() string {
	return uuid.NewString()
}
