package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match    bool
	Filter   bool
	Contains bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("STRUCTMATCH_DEBUG_MATCH")
	d.Filter = boolEnv("STRUCTMATCH_DEBUG_FILTER")
	d.Contains = boolEnv("STRUCTMATCH_DEBUG_CONTAINS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Filter() bool {
	return d.Filter
}
func Contains() bool {
	return d.Contains
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
