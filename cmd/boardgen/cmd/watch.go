package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"boardgen/internal/gen"
)

var watchVerbose bool

var watchCmd = &cobra.Command{
	Use:   "watch <board.yaml> [<output.h>]",
	Short: "Regenerate the header on every change to the board file",
	Long: `Watch a board description and regenerate its header whenever the
file changes. The header is written once at startup and then after
every save. A board file that fails validation logs the error and
keeps the previous header in place; watching continues.

Stops on SIGINT or SIGTERM.

Examples:
  boardgen watch nucleo.yaml
  boardgen watch -v nucleo.yaml cfg/board.h`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false,
		"log every filesystem event")
}

func runWatch(cmd *cobra.Command, args []string) error {
	boardPath := args[0]
	output := "board.h"
	if len(args) == 2 {
		output = args[1]
	}

	level := slog.LevelInfo
	if watchVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	target, err := filepath.Abs(boardPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", boardPath, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory, not the file: editors replace files on
	// save, which silently drops a watch set on the file itself.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	regenerate := func() {
		content, err := compile(c, boardPath)
		if err != nil {
			logger.Error("generation failed", slog.String("err", err.Error()))
			return
		}

		err = gen.WriteFile(gen.GeneratedFile{Filename: output, Content: content})
		if err != nil {
			logger.Error("write failed", slog.String("err", err.Error()))
			return
		}

		logger.Info("header written",
			slog.String("board", boardPath), slog.String("output", output))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	regenerate()
	logger.Info("watching", slog.String("board", boardPath))

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			logger.Debug("event",
				slog.String("op", ev.Op.String()), slog.String("name", ev.Name))

			name, err := filepath.Abs(ev.Name)
			if err != nil || name != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			regenerate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", slog.String("err", err.Error()))
		}
	}
}
