//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	appextract "music-extractor/application/extract"
	"music-extractor/cmd"
	"music-extractor/domain/extract"

	"github.com/cucumber/godog"
)

// mockExtractor implements extract.AudioExtractor and records calls
type mockExtractor struct {
	calls      []*extract.Request
	output     string
	shouldFail bool
	failOutput string
}

func (m *mockExtractor) Extract(ctx context.Context, req *extract.Request, progress io.Writer) (string, error) {
	m.calls = append(m.calls, req)
	if m.shouldFail {
		if progress != nil {
			io.WriteString(progress, m.failOutput)
		}
		return m.failOutput, &extract.ToolError{ExitCode: 1, Output: m.failOutput}
	}
	if progress != nil {
		io.WriteString(progress, m.output)
	}
	return m.output, nil
}

// mockFileChecker implements extract.FileChecker
type mockFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockFileChecker) Exists(path string) bool {
	return m.existingFiles[path]
}

// mockLogWriter records log writes
type mockLogWriter struct {
	written map[string][]byte
}

func (m *mockLogWriter) WriteFile(path string, data []byte) error {
	m.written[path] = data
	return nil
}

// extractContext holds test state for extract scenarios
type extractContext struct {
	extractor   *mockExtractor
	fileChecker *mockFileChecker
	logWriter   *mockLogWriter
	output      *bytes.Buffer
	errOutput   *bytes.Buffer
	err         error
}

// SharedExtractContext is reset before each scenario via Before hook
var SharedExtractContext *extractContext

func InitializeExtractScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedExtractContext = &extractContext{
			extractor:   &mockExtractor{output: "ffmpeg version 6.0\n"},
			fileChecker: &mockFileChecker{existingFiles: make(map[string]bool)},
			logWriter:   &mockLogWriter{written: make(map[string][]byte)},
			output:      &bytes.Buffer{},
			errOutput:   &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.Step(`^the input file "([^"]*)" exists$`, inputFileExists)
	ctx.Step(`^the input file "([^"]*)" does not exist$`, inputFileDoesNotExist)
	ctx.Step(`^ffmpeg fails with output "([^"]*)"$`, ffmpegFailsWithOutput)
	ctx.Step(`^I extract "([^"]*)" with codec "([^"]*)"$`, iExtractWithCodec)
	ctx.Step(`^the command succeeds$`, theCommandSucceeds)
	ctx.Step(`^the output path is "([^"]*)"$`, theOutputPathIs)
	ctx.Step(`^a log file is written to "([^"]*)"$`, aLogFileIsWrittenTo)
	ctx.Step(`^the command fails with an input-not-found error$`, commandFailsInputNotFound)
	ctx.Step(`^no external process was launched$`, noExternalProcessWasLaunched)
	ctx.Step(`^the command fails with a tool error carrying "([^"]*)"$`, commandFailsToolError)
}

func inputFileExists(path string) error {
	SharedExtractContext.fileChecker.existingFiles[path] = true
	return nil
}

func inputFileDoesNotExist(path string) error {
	delete(SharedExtractContext.fileChecker.existingFiles, path)
	return nil
}

func ffmpegFailsWithOutput(output string) error {
	SharedExtractContext.extractor.shouldFail = true
	SharedExtractContext.extractor.failOutput = output
	return nil
}

func iExtractWithCodec(inputPath, codec string) error {
	tc := SharedExtractContext
	tc.err = cmd.RunExtractWithDependencies(
		context.Background(),
		tc.extractor,
		tc.fileChecker,
		tc.logWriter,
		"", // derive outputs next to the input
		codec,
		appextract.Input{InputPath: inputPath, Codec: codec},
		tc.output,
		tc.errOutput,
	)
	return nil
}

func theCommandSucceeds() error {
	if SharedExtractContext.err != nil {
		return fmt.Errorf("expected success, got error: %v", SharedExtractContext.err)
	}
	return nil
}

func theOutputPathIs(want string) error {
	tc := SharedExtractContext
	if !strings.Contains(tc.output.String(), "Successfully created: "+want) {
		return fmt.Errorf("output %q does not report creation of %q", tc.output.String(), want)
	}
	return nil
}

func aLogFileIsWrittenTo(want string) error {
	tc := SharedExtractContext
	if _, ok := tc.logWriter.written[want]; !ok {
		return fmt.Errorf("no log written to %q (wrote: %v)", want, logPaths(tc.logWriter))
	}
	return nil
}

func commandFailsInputNotFound() error {
	var infErr *extract.InputNotFoundError
	if !errors.As(SharedExtractContext.err, &infErr) {
		return fmt.Errorf("expected InputNotFoundError, got: %v", SharedExtractContext.err)
	}
	return nil
}

func noExternalProcessWasLaunched() error {
	if n := len(SharedExtractContext.extractor.calls); n != 0 {
		return fmt.Errorf("expected 0 spawned processes, got %d", n)
	}
	return nil
}

func commandFailsToolError(wantText string) error {
	var toolErr *extract.ToolError
	if !errors.As(SharedExtractContext.err, &toolErr) {
		return fmt.Errorf("expected ToolError, got: %v", SharedExtractContext.err)
	}
	if !strings.Contains(toolErr.Output, wantText) {
		return fmt.Errorf("ToolError.Output %q does not contain %q", toolErr.Output, wantText)
	}
	return nil
}

func logPaths(w *mockLogWriter) []string {
	paths := make([]string, 0, len(w.written))
	for p := range w.written {
		paths = append(paths, p)
	}
	return paths
}
