package gui

import (
	"context"
	"fmt"

	appextract "music-extractor/application/extract"
	"music-extractor/infrastructure/logging"

	"github.com/rs/zerolog"
)

// chanWriter forwards written text to a message channel
type chanWriter struct {
	ch chan<- string
}

func (w chanWriter) Write(p []byte) (int, error) {
	w.ch <- string(p)
	return len(p), nil
}

// Worker owns the blocking batch loop so the interactive event loop never
// blocks on an external process. One worker runs one batch.
type Worker struct {
	batch  *appextract.BatchService
	logger zerolog.Logger
}

// NewWorker creates a Worker over a batch service
func NewWorker(batch *appextract.BatchService) *Worker {
	return &Worker{
		batch:  batch,
		logger: logging.WithComponent("gui"),
	}
}

// Start launches the batch on its own goroutine. Progress text arrives on
// the returned channel, ending with a summary line; the channel is closed
// when the batch has finished. The single consumer must keep draining until
// the close, or the worker blocks.
func (w *Worker) Start(ctx context.Context, inputs []appextract.Input) <-chan string {
	messages := make(chan string, 64)

	go func() {
		defer close(messages)

		w.logger.Debug().Int("items", len(inputs)).Msg("batch started")
		result := w.batch.Run(ctx, inputs, chanWriter{ch: messages})
		w.logger.Debug().
			Int("succeeded", result.Succeeded()).
			Int("failed", result.Failed()).
			Msg("batch finished")

		messages <- fmt.Sprintf("Batch complete: %d succeeded, %d failed\n", result.Succeeded(), result.Failed())
	}()

	return messages
}
