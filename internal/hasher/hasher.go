// Package hasher fingerprints encoded icon bytes so regeneration can skip
// outputs that are already on disk unchanged.
package hasher

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data.  64 bits is collision-safe for
// the handful of assets this tool manages.
func ContentHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FileHash computes the xxHash64 of a file's contents, streaming.
func FileHash(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// Hex formats a hash the way verbose output prints it.
func Hex(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
