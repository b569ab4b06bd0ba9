package checkers

import (
	"fmt"
	"os"

	"github.com/Figglewatts/sanity/internal/domain"
)

const defaultMaxFileCount = 10

// checkFileCount verifies that a directory's file count does not exceed a
// maximum. Subdirectories do not count.
//
// Parameters:
//
//	max_file_count (int): maximum number of files allowed.
func checkFileCount(path string, params domain.Params) (bool, string, error) {
	maxCount := intParam(params, "max_file_count", defaultMaxFileCount)

	entries, err := os.ReadDir(path)
	if err != nil {
		return false, "", err
	}

	var count int64
	for _, entry := range entries {
		if !entry.IsDir() {
			count++
		}
	}

	if count > maxCount {
		return false, fmt.Sprintf("file count exceeded max: '%d', found: %d", maxCount, count), nil
	}
	return true, "", nil
}
