// File: pkg/bundle/sort.go
package bundle

import (
	"sort"
	"strings"
)

// Sort orders files in place according to the configured mode. Both modes
// compare case-insensitively; ties keep their enumeration order. By-type
// compares the raw extension string including its leading dot, so files
// without an extension sort first.
func Sort(files []File, mode string) {
	switch mode {
	case SortByName:
		sort.SliceStable(files, func(i, j int) bool {
			return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
		})
	case SortByType:
		sort.SliceStable(files, func(i, j int) bool {
			return strings.ToLower(files[i].Ext) < strings.ToLower(files[j].Ext)
		})
	}
}
