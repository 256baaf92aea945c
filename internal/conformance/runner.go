package conformance

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/spf13/afero"
	"github.com/tsatke/variant"
)

// Runner checks cases against the variant package.
type Runner struct {
	fs  afero.Fs
	log *log.Logger
	out io.Writer
}

// NewRunner creates a Runner, applying all given options. By default it
// reads from the OS file system, logs nothing and writes reports to
// io.Discard.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		fs:  afero.NewOsFs(),
		log: log.New(io.Discard, "", 0),
		out: io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunDir loads every case file below dir, runs it and writes the report to
// the configured output.
func (r *Runner) RunDir(dir string) (Report, error) {
	suites, err := Load(r.fs, dir)
	if err != nil {
		return Report{}, err
	}
	return r.report(suites)
}

// RunFiles loads the given case files, runs them and writes the report to
// the configured output.
func (r *Runner) RunFiles(paths ...string) (Report, error) {
	suites := make([]Suite, 0, len(paths))
	for _, path := range paths {
		suite, err := LoadFile(r.fs, path)
		if err != nil {
			return Report{}, err
		}
		suites = append(suites, suite)
	}
	return r.report(suites)
}

func (r *Runner) report(suites []Suite) (Report, error) {
	report := r.Run(suites...)
	if _, err := report.WriteTo(r.out); err != nil {
		return report, fmt.Errorf("write report: %w", err)
	}
	return report, nil
}

// Run checks all cases of the given suites.
func (r *Runner) Run(suites ...Suite) Report {
	var report Report
	for _, suite := range suites {
		r.log.Printf("running suite %s (%d cases)", suite.Name, len(suite.Cases))
		for _, c := range suite.Cases {
			result := Result{
				Suite: suite.Name,
				Case:  c.Name,
			}
			if c.Skip != "" {
				result.Skipped = true
				r.log.Printf("skip %s: %s", result.Name(), c.Skip)
			} else {
				result.Failures = check(c)
			}
			report.Results = append(report.Results, result)
		}
	}
	return report
}

type checker struct {
	failures []string
}

func (c *checker) failf(format string, args ...interface{}) {
	c.failures = append(c.failures, fmt.Sprintf(format, args...))
}

func (c *checker) expectBool(what string, want *bool, got bool) {
	if want != nil && *want != got {
		c.failf("%s: expected %t, but got %t", what, *want, got)
	}
}

func (c *checker) expectString(what string, want *string, got string) {
	if want != nil && *want != got {
		c.failf("%s: expected %q, but got %q", what, *want, got)
	}
}

func check(tc Case) []string {
	var c checker

	left, err := tc.Left.Variant()
	if err != nil {
		c.failf("left: %v", err)
		return c.failures
	}

	e := tc.Expect
	c.expectString("plain", e.Plain, left.String())
	c.expectString("verbose", e.Verbose, left.Verbose())
	c.expectBool("present", e.Present, left.Present())
	c.expectBool("numeric", e.Numeric, left.IsNumeric())
	if e.Number != nil {
		checkNumber(&c, left, *e.Number)
	}

	if e.Equal == nil && e.NotEqual == nil && e.LessEqual == nil && e.GreaterEqual == nil {
		return c.failures
	}
	if tc.Right == nil {
		c.failf("comparison expected, but case has no right operand")
		return c.failures
	}
	right, err := tc.Right.Variant()
	if err != nil {
		c.failf("right: %v", err)
		return c.failures
	}
	c.expectBool("==", e.Equal, left.Equal(right))
	c.expectBool("!=", e.NotEqual, left.NotEqual(right))
	c.expectBool("<=", e.LessEqual, left.LessEqual(right))
	c.expectBool(">=", e.GreaterEqual, left.GreaterEqual(right))
	return c.failures
}

func checkNumber(c *checker, v variant.Variant, want NumberExpectation) {
	n, err := v.AsNumber()
	if want.Error {
		if err == nil {
			c.failf("number: expected an error, but got %s", n)
		}
		return
	}
	if err != nil {
		c.failf("number: %v", err)
		return
	}
	if want.Float64 != nil {
		got := n.Float64()
		if !(got == *want.Float64 || math.IsNaN(got) && math.IsNaN(*want.Float64)) {
			c.failf("number: expected float64 %v, but got %v", *want.Float64, got)
		}
	}
	if want.Int64 != nil && n.Int64() != *want.Int64 {
		c.failf("number: expected int64 %d, but got %d", *want.Int64, n.Int64())
	}
}
