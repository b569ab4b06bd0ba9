package checkers

import (
	"fmt"
	"os"

	"github.com/Figglewatts/sanity/internal/domain"
)

// checkFileSize verifies that a file's size is within a byte range.
//
// Parameters:
//
//	min_size (int): minimum acceptable size in bytes, -1 to disable.
//	max_size (int): maximum acceptable size in bytes, -1 to disable.
func checkFileSize(path string, params domain.Params) (bool, string, error) {
	minSize := intParam(params, "min_size", -1)
	maxSize := intParam(params, "max_size", -1)

	info, err := os.Stat(path)
	if err != nil {
		return false, "", err
	}
	size := info.Size()

	if minSize != -1 && size < minSize {
		return false, fmt.Sprintf("file size '%d' byte(s) was smaller than minimum '%d'", size, minSize), nil
	}
	if maxSize != -1 && size > maxSize {
		return false, fmt.Sprintf("file size '%d' byte(s) was bigger than maximum '%d'", size, maxSize), nil
	}
	return true, "", nil
}
