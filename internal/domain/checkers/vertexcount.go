package checkers

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Figglewatts/sanity/internal/domain"
)

const objExtension = ".obj"

// checkVertexCount loads a Wavefront OBJ file and verifies its vertex count.
//
// Parameters:
//
//	min_verts (int): minimum acceptable vertex count, -1 to disable.
//	max_verts (int): maximum acceptable vertex count, -1 to disable.
func checkVertexCount(path string, params domain.Params) (bool, string, error) {
	minVerts := intParam(params, "min_verts", -1)
	maxVerts := intParam(params, "max_verts", -1)

	if strings.ToLower(filepath.Ext(path)) != objExtension {
		return false, fmt.Sprintf("file '%s' was not an OBJ file", path), nil
	}

	count, err := countOBJVertices(path)
	if err != nil {
		return false, "", err
	}

	if minVerts != -1 && count < minVerts {
		return false, fmt.Sprintf("file '%s' vertex count '%d' less than min count '%d'", path, count, minVerts), nil
	}
	if maxVerts != -1 && count > maxVerts {
		return false, fmt.Sprintf("file '%s' vertex count '%d' exceeded max count '%d'", path, count, maxVerts), nil
	}
	return true, "", nil
}

// countOBJVertices counts geometric vertex statements ("v x y z"). Texture
// and normal statements (vt, vn) do not count.
func countOBJVertices(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var count int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "v ") || line == "v" {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading OBJ file: %w", err)
	}
	return count, nil
}
