package pos

import (
	"path/filepath"
	"strings"
)

// LayerForFile derives the board side from a Fusion PnP path. The layer is
// never read from file content, only from the "_front" naming convention.
func LayerForFile(path string) Layer {
	if strings.Contains(path, "_front") {
		return LayerTop
	}
	return LayerBottom
}

// FindPair expands a Fusion PnP path into its front/back pair. The trailing
// _front/_back suffix is stripped from the base name and both siblings are
// probed, front first. When neither exists the original path stands alone.
func FindPair(path string, prober FileProber) []string {
	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.TrimSuffix(base, "_front")
	base = strings.TrimSuffix(base, "_back")

	var files []string
	for _, side := range []string{"_front", "_back"} {
		candidate := filepath.Join(dir, base+side+".csv")
		if prober.Exists(candidate) {
			files = append(files, candidate)
		}
	}

	if len(files) == 0 {
		files = append(files, path)
	}
	return files
}
