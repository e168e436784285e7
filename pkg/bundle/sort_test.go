package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_ByName(t *testing.T) {
	files := []File{
		{Name: "c.py", Ext: ".py"},
		{Name: "A.js", Ext: ".js"},
		{Name: "b.go", Ext: ".go"},
	}

	Sort(files, SortByName)

	assert.Equal(t, []string{"A.js", "b.go", "c.py"}, fileNames(files))
}

func TestSort_ByType(t *testing.T) {
	files := []File{
		{Name: "a.py", Ext: ".py"},
		{Name: "b.JS", Ext: ".JS"},
		{Name: "Makefile", Ext: ""},
		{Name: "c.go", Ext: ".go"},
	}

	Sort(files, SortByType)

	// Extensionless files carry "" and sort first.
	assert.Equal(t, []string{"Makefile", "c.go", "b.JS", "a.py"}, fileNames(files))
}

func TestSort_ByTypeTiesKeepEnumerationOrder(t *testing.T) {
	files := []File{
		{Name: "z.py", Ext: ".py"},
		{Name: "a.py", Ext: ".py"},
		{Name: "m.py", Ext: ".py"},
	}

	Sort(files, SortByType)

	assert.Equal(t, []string{"z.py", "a.py", "m.py"}, fileNames(files))
}
