package extract

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
)

// ItemResult records the outcome of one batch item
type ItemResult struct {
	InputPath  string
	OutputPath string
	LogPath    string
	Err        error
}

// BatchResult enumerates the outcome of every item that was attempted
type BatchResult struct {
	Items []ItemResult
}

// Succeeded returns the number of items that completed without error
func (r *BatchResult) Succeeded() int {
	n := 0
	for _, item := range r.Items {
		if item.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of items that ended in error
func (r *BatchResult) Failed() int {
	return len(r.Items) - r.Succeeded()
}

// BatchService runs a list of extraction inputs strictly one at a time.
// A failed item is recorded and the batch moves on to the next input;
// nothing aborts the run short of context cancellation by the caller.
type BatchService struct {
	service *Service
}

// NewBatchService creates a new BatchService over an extraction Service
func NewBatchService(service *Service) *BatchService {
	return &BatchService{service: service}
}

// Run processes the inputs in order. Progress lines and the external tool's
// output are written to progress as the batch advances.
func (b *BatchService) Run(ctx context.Context, inputs []Input, progress io.Writer) *BatchResult {
	result := &BatchResult{Items: make([]ItemResult, 0, len(inputs))}

	for _, input := range inputs {
		fmt.Fprintf(progress, "Extracting %s...\n", filepath.Base(input.InputPath))

		item := ItemResult{InputPath: input.InputPath}
		res, err := b.service.Extract(ctx, input, progress)
		if err != nil {
			item.Err = err
			fmt.Fprintf(progress, "Extraction failed for %s: %v\n", input.InputPath, err)
		} else {
			item.OutputPath = res.OutputPath
			item.LogPath = res.LogPath
			fmt.Fprintf(progress, "Finished %s\n", input.InputPath)
		}
		result.Items = append(result.Items, item)
	}

	return result
}
