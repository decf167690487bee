package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var _ Extractor = JSONExtractor{}

// maxJSONDepth limits recursion when flattening to keep deeply nested
// input from overflowing the stack.
const maxJSONDepth = 100

// JSONExtractor extracts plain text from JSON documents by flattening the
// structure into dotted key-value lines, object keys in sorted order so
// output is deterministic.
type JSONExtractor struct{}

func (JSONExtractor) Extract(content []byte) (string, error) {
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		return "", nil
	}
	var data any
	if err := json.Unmarshal(content, &data); err != nil {
		return "", fmt.Errorf("parse json: %w", err)
	}
	var lines []string
	flattenJSON("", data, &lines, 0)
	return strings.Join(lines, "\n"), nil
}

func flattenJSON(prefix string, v any, lines *[]string, depth int) {
	if depth >= maxJSONDepth {
		*lines = append(*lines, jsonLabel(prefix)+": <truncated>")
		return
	}
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flattenJSON(key, val[k], lines, depth+1)
		}
	case []any:
		if jsonAllScalar(val) {
			strs := make([]string, len(val))
			for i, item := range val {
				strs[i] = jsonScalar(item)
			}
			*lines = append(*lines, jsonLabel(prefix)+": "+strings.Join(strs, ", "))
		} else {
			for _, item := range val {
				flattenJSON(prefix, item, lines, depth+1)
			}
		}
	case nil:
		// null values carry no text
	default:
		*lines = append(*lines, jsonLabel(prefix)+": "+jsonScalar(val))
	}
}

func jsonLabel(prefix string) string {
	if prefix == "" {
		return "value"
	}
	return prefix
}

func jsonAllScalar(arr []any) bool {
	for _, v := range arr {
		switch v.(type) {
		case map[string]any, []any:
			return false
		}
	}
	return true
}

func jsonScalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
