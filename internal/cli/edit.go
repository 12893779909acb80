package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/shhac/amfconf/internal/app"
	"github.com/spf13/cobra"
)

func newSetTemplateCmd(a *app.App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set-template NAME",
		Short: "replace the XML body template of a stored request",
		Long: `Replace the XML body template of a stored request.

The template is read from --file, or from standard input when --file is "-".
It is stored as given; it is not checked for well-formed XML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTemplate(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			element, err := loadElement(a, args[0])
			if err != nil {
				return err
			}

			editor := a.NewEditor()
			editor.Configure(element.Properties)
			if err := editTemplate(editor, text); err != nil {
				return err
			}
			editor.ModifyBag(element.Properties)

			if err := a.Storage().SaveElement(*element); err != nil {
				return fmt.Errorf("save request: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated %s %s\n", element.Name, editor.TemplateSize())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "[required] template file, or - for standard input")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readTemplate(stdin io.Reader, file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

func newSetEncodingCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-encoding NAME ENCODING",
		Short: "choose the object encoding version of a stored request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			element, err := loadElement(a, args[0])
			if err != nil {
				return err
			}

			editor := a.NewEditor()
			editor.Configure(element.Properties)
			if err := editor.Encoding().Select(args[1]); err != nil {
				return err
			}
			editor.ModifyBag(element.Properties)

			if err := a.Storage().SaveElement(*element); err != nil {
				return fmt.Errorf("save request: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated %s encoding %s\n", element.Name, editor.Encoding().Selected())
			return nil
		},
	}
}

func newListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.Storage().ListElements()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newDeleteCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "delete a stored request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Storage().DeleteElement(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
