package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/shhac/amfconf/internal/app"
	"github.com/shhac/amfconf/internal/cli"
	apperrors "github.com/shhac/amfconf/internal/errors"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.ClassifyError(err).String())
		os.Exit(1)
	}
}

// run builds the application and executes the command line with panic recovery.
func run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg := app.ConfigFromEnv(".env")

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	root := cli.NewRootCmd(a)
	root.SetArgs(args)
	err = root.Execute()

	if err != nil {
		a.Logger().Error("command failed", slog.Any("error", err))
	}
	return err
}
