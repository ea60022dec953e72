package pkg

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// ParseIntList parses a comma separated list of ints, e.g. "1,3, 4".
// An empty string gives an empty, non-nil slice.
func ParseIntList(s string) ([]int, error) {
	ids := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid id [%s]: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
