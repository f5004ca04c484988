package scoring

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
)

// URLVariance derives a small deterministic variance from the URL so two
// otherwise-identical pages do not land on the exact same score. Same URL,
// same variance. Range: -2 to +2.
func URLVariance(url string) int {
	sum := md5.Sum([]byte(strings.ToLower(url)))
	hexDigest := hex.EncodeToString(sum[:])
	n, _ := strconv.ParseInt(hexDigest[:2], 16, 64)
	return int(n%5) - 2
}
