package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokenize  bool
	Chunks    bool
	Parse     bool
	Intern    bool
	TreatXref bool
	Sort      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("OBO_DEBUG_TOKENIZE")
	d.Chunks = boolEnv("OBO_DEBUG_CHUNKS")
	d.Parse = boolEnv("OBO_DEBUG_PARSE")
	d.Intern = boolEnv("OBO_DEBUG_INTERN")
	d.TreatXref = boolEnv("OBO_DEBUG_TREAT_XREF")
	d.Sort = boolEnv("OBO_DEBUG_SORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Chunks() bool {
	return d.Chunks
}
func Parse() bool {
	return d.Parse
}
func Intern() bool {
	return d.Intern
}
func TreatXref() bool {
	return d.TreatXref
}
func Sort() bool {
	return d.Sort
}
