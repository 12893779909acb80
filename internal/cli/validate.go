package cli

import (
	"errors"
	"fmt"

	"github.com/shhac/amfconf/internal/app"
	"github.com/shhac/amfconf/internal/binder"
	"github.com/spf13/cobra"
)

// ErrInvalidRequest is returned by validate when problems were reported.
var ErrInvalidRequest = errors.New("request is not valid")

func newValidateCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate NAME",
		Short: "check that a stored request can be sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			element, err := loadElement(a, args[0])
			if err != nil {
				return err
			}

			err = binder.Import(element.Properties).Validate()
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", element.Name)
				return nil
			}

			problems := []error{err}
			if joined, ok := err.(interface{ Unwrap() []error }); ok {
				problems = joined.Unwrap()
			}
			for _, p := range problems {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", element.Name, p)
			}
			return fmt.Errorf("%w: %d problem(s)", ErrInvalidRequest, len(problems))
		},
	}
}
