//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	appextract "music-extractor/application/extract"
	"music-extractor/domain/extract"

	"github.com/cucumber/godog"
)

// batchExtractor fails only the configured input paths
type batchExtractor struct {
	calls     int
	failPaths map[string]bool
}

func (m *batchExtractor) Extract(ctx context.Context, req *extract.Request, progress io.Writer) (string, error) {
	m.calls++
	if m.failPaths[req.InputPath] {
		return "decode error\n", &extract.ToolError{ExitCode: 1, Output: "decode error\n"}
	}
	return "ok\n", nil
}

// batchContext holds test state for batch scenarios
type batchContext struct {
	extractor *batchExtractor
	checker   *mockFileChecker
	logWriter *mockLogWriter
	inputs    []appextract.Input
	progress  *bytes.Buffer
	result    *appextract.BatchResult
}

// SharedBatchContext is reset before each scenario via Before hook
var SharedBatchContext *batchContext

func InitializeBatchScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedBatchContext = &batchContext{
			extractor: &batchExtractor{failPaths: make(map[string]bool)},
			checker:   &mockFileChecker{existingFiles: make(map[string]bool)},
			logWriter: &mockLogWriter{written: make(map[string][]byte)},
			progress:  &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.Step(`^a batch of inputs:$`, aBatchOfInputs)
	ctx.Step(`^I run the batch$`, iRunTheBatch)
	ctx.Step(`^(\d+) items were attempted$`, itemsWereAttempted)
	ctx.Step(`^(\d+) items succeeded and (\d+) failed$`, itemsSucceededAndFailed)
	ctx.Step(`^the progress log contains "([^"]*)"$`, progressLogContains)
}

func aBatchOfInputs(table *godog.Table) error {
	tc := SharedBatchContext
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected 2 columns, got %d", len(row.Cells))
		}
		path := row.Cells[0].Value
		outcome := row.Cells[1].Value

		tc.checker.existingFiles[path] = true
		if outcome == "fail" {
			tc.extractor.failPaths[path] = true
		}
		tc.inputs = append(tc.inputs, appextract.Input{InputPath: path})
	}
	return nil
}

func iRunTheBatch() error {
	tc := SharedBatchContext
	service := appextract.NewService(tc.extractor, tc.checker, tc.logWriter, "", "mp3")
	batch := appextract.NewBatchService(service)
	tc.result = batch.Run(context.Background(), tc.inputs, tc.progress)
	return nil
}

func itemsWereAttempted(want int) error {
	tc := SharedBatchContext
	if got := len(tc.result.Items); got != want {
		return fmt.Errorf("attempted %d items, want %d", got, want)
	}
	return nil
}

func itemsSucceededAndFailed(wantOK, wantFailed int) error {
	tc := SharedBatchContext
	if tc.result.Succeeded() != wantOK || tc.result.Failed() != wantFailed {
		return fmt.Errorf("got %d succeeded / %d failed, want %d / %d",
			tc.result.Succeeded(), tc.result.Failed(), wantOK, wantFailed)
	}
	return nil
}

func progressLogContains(want string) error {
	tc := SharedBatchContext
	if !strings.Contains(tc.progress.String(), want) {
		return fmt.Errorf("progress log %q does not contain %q", tc.progress.String(), want)
	}
	return nil
}
