package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	appextract "music-extractor/application/extract"
	"music-extractor/infrastructure/ffmpeg"
	"music-extractor/infrastructure/filesystem"
)

// Options carries configuration defaults into the desktop form
type Options struct {
	FFmpegPath string // explicit ffmpeg override, may be empty
	OutputDir  string // empty means next to each input file
	Codec      string
}

var videoExtensions = []string{".mp4", ".mkv", ".mov", ".avi", ".webm", ".flv"}

// Run opens the desktop extraction form and blocks until the window closes
func Run(opts Options) error {
	a := app.New()
	w := a.NewWindow("Music Extractor")
	w.Resize(fyne.NewSize(720, 480))

	var inputFiles []string
	outputDir := opts.OutputDir

	codec := opts.Codec
	if codec != "mp3" && codec != "wav" {
		codec = "mp3"
	}

	logLabel := widget.NewLabel("")
	logLabel.Wrapping = fyne.TextWrapWord
	logScroll := container.NewVScroll(logLabel)

	appendLog := func(text string) {
		logLabel.SetText(logLabel.Text + text)
		logScroll.ScrollToBottom()
	}

	codecRadio := widget.NewRadioGroup([]string{"mp3", "wav"}, func(selected string) {
		if selected != "" {
			codec = selected
		}
	})
	codecRadio.Horizontal = true
	codecRadio.SetSelected(codec)

	addButton := widget.NewButton("Add Input File", func() {
		fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil || r == nil {
				return
			}
			defer r.Close()
			inputFiles = append(inputFiles, r.URI().Path())
			appendLog(fmt.Sprintf("Selected %s (%d file(s) queued)\n", r.URI().Path(), len(inputFiles)))
		}, w)
		fd.SetFilter(storage.NewExtensionFileFilter(videoExtensions))
		fd.Show()
	})

	clearButton := widget.NewButton("Clear Selection", func() {
		inputFiles = nil
		appendLog("Selection cleared.\n")
	})

	outputButton := widget.NewButton("Select Output Folder", func() {
		fd := dialog.NewFolderOpen(func(lu fyne.ListableURI, err error) {
			if err != nil || lu == nil {
				return
			}
			outputDir = lu.Path()
			appendLog(fmt.Sprintf("Output directory set to: %s\n", outputDir))
		}, w)
		fd.Show()
	})

	var runButton *widget.Button

	setButtonsEnabled := func(enabled bool) {
		buttons := []*widget.Button{addButton, clearButton, outputButton, runButton}
		for _, b := range buttons {
			if enabled {
				b.Enable()
			} else {
				b.Disable()
			}
		}
	}

	runButton = widget.NewButton("Run Extraction", func() {
		if len(inputFiles) == 0 {
			dialog.ShowInformation("No Input", "Please select input files first.", w)
			return
		}

		// A missing tool blocks the whole batch, not individual items
		toolPath, err := ffmpeg.NewLocator().Locate(opts.FFmpegPath)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}

		extractor := ffmpeg.NewExtractor(ffmpeg.WithFFmpegPath(toolPath))
		service := appextract.NewService(extractor, filesystem.NewChecker(), filesystem.NewWriter(), outputDir, codec)
		batch := appextract.NewBatchService(service)

		inputs := make([]appextract.Input, 0, len(inputFiles))
		for _, f := range inputFiles {
			inputs = append(inputs, appextract.Input{InputPath: f, Codec: codec})
		}

		setButtonsEnabled(false)

		messages := NewWorker(batch).Start(context.Background(), inputs)
		go func() {
			for msg := range messages {
				text := msg
				fyne.Do(func() {
					appendLog(text)
				})
			}
			fyne.Do(func() {
				setButtonsEnabled(true)
				dialog.ShowInformation("Extraction Complete", "Processing finished. Check the log for details.", w)
			})
		}()
	})

	w.SetContent(container.NewBorder(
		container.NewVBox(
			container.NewHBox(addButton, clearButton, outputButton),
			codecRadio,
			runButton,
		),
		nil, nil, nil,
		logScroll,
	))

	w.ShowAndRun()
	return nil
}
