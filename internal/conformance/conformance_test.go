package conformance

import (
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func (suite *ConformanceSuite) TestTestdata() {
	runner := NewRunner(
		WithFs(afero.NewBasePathFs(afero.NewOsFs(), "testdata")),
		WithOutput(suite.out),
	)
	report, err := runner.RunDir("/")
	suite.Require().NoError(err)
	suite.NotZero(report.Passed())
	suite.Zero(report.Failed(), suite.out.String())
	suite.Zero(report.Skipped())
}

func (suite *ConformanceSuite) TestLoadOrderAndNaming() {
	suite.writeFile("cases/b.yaml", "name: second\ncases: []\n")
	suite.writeFile("cases/a.yaml", "cases: []\n")
	suite.writeFile("cases/notes.txt", "not a case file")
	suite.writeFile("cases/nested/c.yaml", "name: third\ncases: []\n")

	suites, err := Load(suite.fs, "cases")
	suite.Require().NoError(err)

	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name
	}
	suite.Equal([]string{"a", "second", "third"}, names)
}

func (suite *ConformanceSuite) TestUnknownFieldIsRejected() {
	suite.writeFile("bad.yaml", "name: bad\ncases:\n  - name: x\n    left: {kind: int, value: 1}\n    expect: {plian: \"1\"}\n")

	_, err := LoadFile(suite.fs, "bad.yaml")
	suite.Error(err)
	suite.Contains(err.Error(), "decode bad.yaml")
}

func (suite *ConformanceSuite) TestMissingFile() {
	_, err := suite.runner.RunFiles("missing.yaml")
	suite.Error(err)
	suite.Contains(err.Error(), "read missing.yaml")
}

func (suite *ConformanceSuite) TestFailuresAreReported() {
	suite.writeFile("fail.yaml", `name: fail
cases:
  - name: wrong verbose
    left: {kind: int, value: 3}
    expect: {verbose: "3 : real", present: true}
  - name: ordering across kinds
    left: {kind: int, value: 1}
    right: {kind: real, value: 2}
    expect: {less_equal: true}
  - name: no right operand
    left: {kind: int, value: 1}
    expect: {equal: true}
  - name: bad kind
    left: {kind: list, value: 1}
    expect: {}
  - name: not an int
    left: {kind: int, value: "x"}
    expect: {}
  - name: ignored
    skip: not yet decided
    left: {kind: void}
    expect: {present: true}
  - name: fine
    left: {kind: void}
    expect: {present: false}
`)

	report, err := suite.runner.RunFiles("fail.yaml")
	suite.Require().NoError(err)
	suite.Equal(1, report.Passed())
	suite.Equal(5, report.Failed())
	suite.Equal(1, report.Skipped())

	failures := make(map[string][]string)
	for _, res := range report.Results {
		if res.Failed() {
			failures[res.Case] = res.Failures
		}
	}
	want := map[string][]string{
		"wrong verbose":         {`verbose: expected "3 : real", but got "3 : int"`},
		"ordering across kinds": {"<=: expected true, but got false"},
		"no right operand":      {"comparison expected, but case has no right operand"},
		"bad kind":              {`left: unknown kind "list"`},
	}
	notAnInt := failures["not an int"]
	delete(failures, "not an int")
	if diff := cmp.Diff(want, failures); diff != "" {
		suite.Failf("unexpected failures", "(-want +got):\n%s", diff)
	}
	suite.Require().Len(notAnInt, 1)
	suite.Contains(notAnInt[0], "left: decode int operand")

	suite.Contains(suite.out.String(), "PASS fail/fine\n")
	suite.Contains(suite.out.String(), "SKIP fail/ignored\n")
	suite.Contains(suite.out.String(), "FAIL fail/bad kind: left: unknown kind \"list\"\n")
	suite.Contains(suite.out.String(), "1 passed, 5 failed, 1 skipped\n")
	suite.Contains(suite.logs.String(), "running suite fail (7 cases)")
	suite.Contains(suite.logs.String(), "skip fail/ignored: not yet decided")
}

func (suite *ConformanceSuite) TestNumberExpectations() {
	suite.writeFile("number.yaml", `cases:
  - name: error expected but none
    left: {kind: int, value: 4}
    expect: {number: {error: true}}
  - name: unexpected error
    left: {kind: bool, value: true}
    expect: {number: {int64: 1}}
  - name: nan
    left: {kind: real, value: .nan}
    expect: {number: {float64: .nan}}
  - name: wrong value
    left: {kind: real, value: 9.5}
    expect: {number: {int64: 10, float64: 9.5}}
`)

	report, err := suite.runner.RunFiles("number.yaml")
	suite.Require().NoError(err)

	got := make([][]string, len(report.Results))
	for i, res := range report.Results {
		got[i] = res.Failures
	}
	want := [][]string{
		{"number: expected an error, but got 4"},
		{"number: expected real or int, but got bool"},
		nil,
		{"number: expected int64 10, but got 9"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		suite.Failf("unexpected failures", "(-want +got):\n%s", diff)
	}
}

func (suite *ConformanceSuite) TestVoidWithValue() {
	v, err := Operand{Kind: "void"}.Variant()
	suite.NoError(err)
	suite.False(v.Present())

	suite.writeFile("void.yaml", "cases:\n  - name: v\n    left: {kind: void, value: 1}\n    expect: {}\n")
	report, err := suite.runner.RunFiles("void.yaml")
	suite.Require().NoError(err)
	suite.Require().Len(report.Results, 1)
	suite.Equal([]string{"left: void operand must not have a value"}, report.Results[0].Failures)
}
