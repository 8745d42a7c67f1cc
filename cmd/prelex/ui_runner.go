package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"prelex/internal/driver"
	"prelex/internal/source"
	"prelex/internal/ui"
)

type scanOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

// runScanDirWithUI runs driver.ScanDir while a progress model consumes its events.
func runScanDirWithUI(ctx context.Context, dir string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	// список файлов нужен модели заранее; ScanDir пройдёт по нему повторно
	files, err := driver.ListFiles(dir, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ScanDir(ctx, dir, optsCopy)
		outcomeCh <- scanOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("scanning "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, uiErr := program.Run()
	if !ui.Finished(final) {
		// прервано пользователем
		cancel()
	}
	// модель больше не читает канал: дочитываем, чтобы ScanDir не встал
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
