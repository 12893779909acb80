// Package cli implements the amfconf command line.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shhac/amfconf/internal/app"
	"github.com/shhac/amfconf/internal/binder"
	"github.com/shhac/amfconf/internal/domain"
	apperrors "github.com/shhac/amfconf/internal/errors"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree operating on a's storage.
func NewRootCmd(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:   "amfconf",
		Short: "manage AMF request configurations",
		Long: `amfconf creates, edits and inspects stored AMF request configurations.

Each configuration is kept as a flat property list, the form the load test
engine persists and replays.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newNewCmd(a),
		newShowCmd(a),
		newSetTemplateCmd(a),
		newSetEncodingCmd(a),
		newValidateCmd(a),
		newDiffCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
	)

	return root
}

// loadElement loads a stored element and checks it holds an AMF request.
func loadElement(a *app.App, name string) (*domain.Element, error) {
	element, err := a.Storage().LoadElement(name)
	if err != nil {
		return nil, err
	}
	if !binder.IsAMFRequest(element.Properties) {
		a.Logger().Warn("stored element is not marked as an AMF request",
			slog.String("name", name),
			slog.String("test_class", element.Properties.Get(binder.KeyTestClass, "")))
	}
	return element, nil
}

func elementExists(a *app.App, name string) (bool, error) {
	_, err := a.Storage().LoadElement(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrElementNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("check existing element: %w", err)
	}
}
