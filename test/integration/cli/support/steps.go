package support

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// RegisterSteps registers all step definitions for the CLI suite.
func (testCtx *TestContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I run "([^"]*)"$`, testCtx.iRunCommand)
	sc.Step(`^the command should succeed$`, testCtx.theCommandShouldSucceed)
	sc.Step(`^the command should fail$`, testCtx.theCommandShouldFail)
	sc.Step(`^the output should contain "([^"]*)"$`, testCtx.theOutputShouldContain)
	sc.Step(`^the output should not contain "([^"]*)"$`, testCtx.theOutputShouldNotContain)
	sc.Step(`^the output matrix should be the identity$`, testCtx.theOutputMatrixShouldBeIdentity)
	sc.Step(`^the JSON output should report fallback (true|false)$`, testCtx.theJSONOutputShouldReportFallback)
	sc.Step(`^the file "([^"]*)" should exist$`, testCtx.theFileShouldExist)
}

// iRunCommand executes a CLI command and captures its result.
func (testCtx *TestContext) iRunCommand(command string) error {
	command = testCtx.substituteVariables(command)
	testCtx.LastCommand = command

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return errors.New("empty command")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Dir = testCtx.WorkingDir
	cmd.Env = append(os.Environ(), testCtx.EnvVars...)

	output, err := cmd.CombinedOutput()
	testCtx.LastOutput = string(output)
	testCtx.LastError = err
	testCtx.LastDuration = time.Since(start)

	if err != nil {
		exitError := &exec.ExitError{}
		if errors.As(err, &exitError) {
			testCtx.LastExitCode = exitError.ExitCode()
		} else {
			testCtx.LastExitCode = -1
		}
	} else {
		testCtx.LastExitCode = 0
	}

	return nil
}

func (testCtx *TestContext) theCommandShouldSucceed() error {
	if testCtx.LastExitCode != 0 {
		return fmt.Errorf("command %q failed with exit code %d, output:\n%s",
			testCtx.LastCommand, testCtx.LastExitCode, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theCommandShouldFail() error {
	if testCtx.LastExitCode == 0 {
		return fmt.Errorf("command %q succeeded but was expected to fail, output:\n%s",
			testCtx.LastCommand, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theOutputShouldContain(expected string) error {
	expected = testCtx.substituteVariables(expected)
	if !strings.Contains(testCtx.LastOutput, expected) {
		return fmt.Errorf("output does not contain %q:\n%s", expected, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theOutputShouldNotContain(unexpected string) error {
	if strings.Contains(testCtx.LastOutput, unexpected) {
		return fmt.Errorf("output unexpectedly contains %q:\n%s", unexpected, testCtx.LastOutput)
	}
	return nil
}

// theOutputMatrixShouldBeIdentity parses the first three text output lines
// as a 3x3 matrix and checks it equals the identity.
func (testCtx *TestContext) theOutputMatrixShouldBeIdentity() error {
	lines := strings.Split(strings.TrimSpace(testCtx.LastOutput), "\n")
	if len(lines) < 3 {
		return fmt.Errorf("expected at least 3 output lines, got %d:\n%s", len(lines), testCtx.LastOutput)
	}

	identity := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i := 0; i < 3; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) != 3 {
			return fmt.Errorf("matrix row %d has %d fields: %q", i, len(fields), lines[i])
		}
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return fmt.Errorf("matrix entry (%d,%d) is not a number: %q", i, j, f)
			}
			if math.Abs(v-identity[i][j]) > 1e-9 {
				return fmt.Errorf("matrix entry (%d,%d) = %v, expected %v", i, j, v, identity[i][j])
			}
		}
	}
	return nil
}

func (testCtx *TestContext) theJSONOutputShouldReportFallback(expected string) error {
	var result struct {
		Fallback bool `json:"fallback"`
	}
	if err := json.Unmarshal([]byte(testCtx.LastOutput), &result); err != nil {
		return fmt.Errorf("output is not valid JSON: %w\n%s", err, testCtx.LastOutput)
	}

	want := expected == "true"
	if result.Fallback != want {
		return fmt.Errorf("fallback = %v, expected %v", result.Fallback, want)
	}
	return nil
}

func (testCtx *TestContext) theFileShouldExist(path string) error {
	path = testCtx.substituteVariables(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	return nil
}
