package cmd_test

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/tinylox/cmd"
)

var expectedOutputPattern = regexp.MustCompile(`// expect: ?(.*)`)
var expectedErrorPattern = regexp.MustCompile(`// (Error.*)`)
var errorLinePattern = regexp.MustCompile(`// \[line (\d+)\] (Error.*)`)
var expectedRuntimeErrorPattern = regexp.MustCompile(`// expect runtime error: (.+)`)
var syntaxErrorPattern = regexp.MustCompile(`\[line (\d+)\] (Error.+)`)
var stackTracePattern = regexp.MustCompile(`\[line (\d+)\] in script`)
var nonTestPattern = regexp.MustCompile(`// nontest`)

type ExpectedOutput struct {
	line   int
	output string
}

type Test struct {
	t                    *testing.T
	path                 string
	expectedOutput       []ExpectedOutput
	expectedErrors       map[string]string
	expectedRuntimeError string
	runtimeErrorLine     int
	expectedExitCode     int
	failures             []string
}

func runTest(t *testing.T, path string) {
	test := &Test{path: path, expectedErrors: make(map[string]string)}

	t.Run(path, func(t *testing.T) {
		test.t = t
		if !test.parse() {
			return
		}
		failures := test.run()
		if len(failures) > 0 {
			t.Fatalf("Test failed:\n%s", strings.Join(failures, "\n"))
		}
	})
}

func (t *Test) parse() bool {
	lines, err := os.ReadFile(t.path)
	require.NoError(t.t, err)

	for lineNum, line := range strings.Split(string(lines), "\n") {
		lineNum++

		if nonTestPattern.MatchString(line) {
			return false
		}

		match := expectedOutputPattern.FindStringSubmatch(line)
		if match != nil {
			t.expectedOutput = append(t.expectedOutput, ExpectedOutput{line: lineNum, output: match[1]})
			continue
		}

		match = expectedErrorPattern.FindStringSubmatch(line)
		if match != nil {
			msg := fmt.Sprintf("[%d] %s", lineNum, match[1])
			t.expectedErrors[msg] = msg
			t.expectedExitCode = cmd.ExitDataErr
			continue
		}

		match = errorLinePattern.FindStringSubmatch(line)
		if match != nil {
			msg := fmt.Sprintf("[%s] %s", match[1], match[2])
			t.expectedErrors[msg] = msg
			t.expectedExitCode = cmd.ExitDataErr
			continue
		}

		match = expectedRuntimeErrorPattern.FindStringSubmatch(line)
		if match != nil {
			t.runtimeErrorLine = lineNum
			t.expectedRuntimeError = match[1]
			t.expectedExitCode = cmd.ExitSoftware
		}
	}

	if len(t.expectedErrors) > 0 && t.expectedRuntimeError != "" {
		require.Fail(t.t, "parse", "TEST ERROR %s\nCannot expect both compile and runtime errors.", t.path)
		return false
	}

	return true
}

func (t *Test) run() []string {
	stdout := new(strings.Builder)
	stderr := new(strings.Builder)
	app := cmd.NewLoxApp(cmd.WithStdout(stdout), cmd.WithStderr(stderr))
	exitCode := app.Main([]string{t.path})

	outputLines := strings.Split(stdout.String(), "\n")
	errorLines := strings.Split(stderr.String(), "\n")

	if t.expectedRuntimeError != "" {
		t.validateRuntimeError(errorLines)
	} else {
		t.validateCompileErrors(errorLines)
	}
	t.validateExitCode(exitCode, errorLines)
	t.validateOutput(outputLines)

	return t.failures
}

func (t *Test) validateRuntimeError(errorLines []string) {
	if len(errorLines) < 2 {
		t.Errorf("Expected runtime error '%s' and got none.", t.expectedRuntimeError)
		return
	}

	if errorLines[0] != t.expectedRuntimeError {
		t.Errorf("Expected runtime error '%s' and got: %s", t.expectedRuntimeError, errorLines[0])
		return
	}

	var stackLine int
	for _, line := range errorLines[1:] {
		match := stackTracePattern.FindStringSubmatch(line)
		if match != nil {
			stackLine, _ = strconv.Atoi(match[1])
			break
		}
	}

	if stackLine == 0 {
		t.Errorf("Expected stack trace and got: %s", errorLines[1:])
	} else if stackLine != t.runtimeErrorLine {
		t.Errorf("Expected runtime error on line %d but was on line %d.", t.runtimeErrorLine, stackLine)
	}
}

func (t *Test) validateCompileErrors(errorLines []string) {
	foundErrors := map[string]bool{}
	unexpectedCount := 0

	for _, line := range errorLines {
		match := syntaxErrorPattern.FindStringSubmatch(line)
		if match != nil {
			errorMsg := fmt.Sprintf("[%s] %s", match[1], match[2])
			if _, ok := t.expectedErrors[errorMsg]; ok {
				foundErrors[errorMsg] = true
			} else {
				if unexpectedCount < 10 {
					t.Errorf("Unexpected error: %s", line)
				}
				unexpectedCount++
			}
		} else if line != "" {
			if unexpectedCount < 10 {
				t.Errorf("Unexpected output on stderr: %s", line)
			}
			unexpectedCount++
		}
	}

	if unexpectedCount > 10 {
		t.Errorf("(truncated %d more...)", unexpectedCount-10)
	}

	expected := maps.Keys(t.expectedErrors)
	slices.Sort(expected)
	for _, errorMsg := range expected {
		if _, ok := foundErrors[errorMsg]; !ok {
			t.Errorf("Missing expected error: %s", errorMsg)
		}
	}
}

func (t *Test) validateExitCode(exitCode int, errorLines []string) {
	if exitCode == t.expectedExitCode {
		return
	}

	if len(errorLines) > 10 {
		errorLines = errorLines[:10]
		errorLines = append(errorLines, "(truncated...)")
	}

	t.Errorf("Expected return code %d and got %d. Stderr: %v", t.expectedExitCode, exitCode, errorLines)
}

func (t *Test) validateOutput(outputLines []string) {
	if len(outputLines) > 0 && outputLines[len(outputLines)-1] == "" {
		outputLines = outputLines[:len(outputLines)-1]
	}

	if len(outputLines) > len(t.expectedOutput) {
		t.Errorf("Got output '%s' when none was expected.", outputLines[len(t.expectedOutput)])
		return
	}

	for i, line := range outputLines {
		expected := t.expectedOutput[i]
		if expected.output != line {
			t.Errorf("Expected output '%s' on line %d and got '%s'.", expected.output, expected.line, line)
		}
	}

	for i := len(outputLines); i < len(t.expectedOutput); i++ {
		expected := t.expectedOutput[i]
		t.Errorf("Missing expected output '%s' on line %d.", expected.output, expected.line)
	}
}

func (t *Test) Errorf(format string, args ...any) {
	t.t.Helper()
	t.failures = append(t.failures, fmt.Sprintf(format, args...))
	t.t.Errorf(format, args...)
}
