package domain

import (
	"encoding/json"
	"math"
)

// DownloadStats is the nested reporting document: revision, bucket, [baseName,]
// os, arch, count. Leaves are int64.
type DownloadStats map[string]any

// StatsPath returns the metadata path, below the downloadStats key, of the
// counter an artifact download increments. Draft counters live on the draft
// release under the artifact's revision so they outlive the revision container.
func StatsPath(kind ArtifactKind, meta Metadata, draft bool) []string {
	var path []string
	if draft {
		path = append(path, meta.String(kind.ReleaseField))
	}
	path = append(path, kind.StatsBucket)
	if kind.SubContainer != "" {
		path = append(path, meta.String(MetaBaseName))
	}
	return append(path, meta.String(MetaOS), meta.String(MetaArch))
}

// MergeStats deep-unions src into dst. Maps are merged recursively and numeric
// leaves present on both sides are summed.
func MergeStats(dst map[string]any, src map[string]any) {
	for key, sv := range src {
		srcMap, srcIsMap := sv.(map[string]any)
		dv, exists := dst[key]
		if !exists {
			if srcIsMap {
				child := make(map[string]any, len(srcMap))
				MergeStats(child, srcMap)
				dst[key] = child
				continue
			}
			if n, ok := ToInt64(sv); ok {
				dst[key] = n
			}
			continue
		}

		dstMap, dstIsMap := dv.(map[string]any)
		switch {
		case srcIsMap && dstIsMap:
			MergeStats(dstMap, srcMap)
		case !srcIsMap && !dstIsMap:
			a, _ := ToInt64(dv)
			b, _ := ToInt64(sv)
			dst[key] = a + b
		}
	}
}

// ToInt64 converts the numeric representations produced by JSON decoding.
func ToInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(math.Round(n)), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, false
			}
			return int64(math.Round(f)), true
		}
		return i, true
	default:
		return 0, false
	}
}

// StatsCount reads the counter at path, returning zero when absent.
func StatsCount(stats map[string]any, path ...string) int64 {
	var cur any = stats
	for _, p := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return 0
		}
		cur = m[p]
	}
	n, _ := ToInt64(cur)
	return n
}
