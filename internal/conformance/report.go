package conformance

import (
	"fmt"
	"io"
	"strings"
)

// Result is the outcome of a single case.
type Result struct {
	Suite    string
	Case     string
	Skipped  bool
	Failures []string
}

// Name returns "suite/case".
func (r Result) Name() string {
	return r.Suite + "/" + r.Case
}

// Failed reports whether any expectation of the case was not met.
func (r Result) Failed() bool {
	return len(r.Failures) > 0
}

// Report holds the results of a run in the order the cases were run.
type Report struct {
	Results []Result
}

func (r Report) count(match func(Result) bool) int {
	n := 0
	for _, res := range r.Results {
		if match(res) {
			n++
		}
	}
	return n
}

func (r Report) Passed() int {
	return r.count(func(res Result) bool { return !res.Skipped && !res.Failed() })
}

func (r Report) Failed() int {
	return r.count(Result.Failed)
}

func (r Report) Skipped() int {
	return r.count(func(res Result) bool { return res.Skipped })
}

// WriteTo writes one line per case followed by a summary line.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, res := range r.Results {
		switch {
		case res.Skipped:
			fmt.Fprintf(&b, "SKIP %s\n", res.Name())
		case res.Failed():
			fmt.Fprintf(&b, "FAIL %s: %s\n", res.Name(), strings.Join(res.Failures, "; "))
		default:
			fmt.Fprintf(&b, "PASS %s\n", res.Name())
		}
	}
	fmt.Fprintf(&b, "%d passed, %d failed, %d skipped\n", r.Passed(), r.Failed(), r.Skipped())

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
