package cleanup

import (
	"fmt"
	"strings"
)

// Report accumulates one human-readable line per phase considered, in
// execution order. It is owned by a single Run invocation; append-only.
//
// The two line formats are a contract with downstream log parsers: previews
// and real actions must stay distinguishable byte for byte.
type Report struct {
	lines []string
}

func (r *Report) wouldExecute(sql string) {
	r.lines = append(r.lines, fmt.Sprintf("[DRY RUN] Would execute: %s", sql))
}

func (r *Report) executed(sql string) {
	r.lines = append(r.lines, fmt.Sprintf("✓ Executed: %s", sql))
}

// Lines returns the accumulated report lines in order.
func (r *Report) Lines() []string {
	return r.lines
}

// NoTargetsAdvisory is the terminal outcome when the resolver matched
// nothing. It is not an error: it echoes the literal inputs so the caller can
// spot a typo in the filter or an empty dataset.
type NoTargetsAdvisory struct {
	Dataset  string
	Filtered bool
	Names    []string
}

func (a NoTargetsAdvisory) String() string {
	return fmt.Sprintf("No tables matched in dataset %q (filtered=%t, tables=[%s])",
		a.Dataset, a.Filtered, strings.Join(a.Names, ", "))
}
