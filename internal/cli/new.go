package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/shhac/amfconf/internal/app"
	"github.com/shhac/amfconf/internal/domain"
	"github.com/shhac/amfconf/internal/model"
	"github.com/spf13/cobra"
)

type newOptions struct {
	protocol     string
	host         string
	port         string
	path         string
	method       string
	encoding     string
	templateFile string
	template     string
	responseVar  string
	comment      string
	args         []string
	force        bool
}

func newNewCmd(a *app.App) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "create a stored AMF request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, a, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.protocol, "protocol", "", "protocol: http or https (default: chosen by the engine)")
	f.StringVar(&opts.host, "host", "", "server host name or IP")
	f.StringVar(&opts.port, "port", "", "server port")
	f.StringVar(&opts.path, "path", "", "gateway path, e.g. /messagebroker/amf")
	f.StringVar(&opts.method, "method", domain.DefaultMethod, "HTTP method")
	f.StringVar(&opts.encoding, "encoding", domain.DefaultEncoding.String(), "object encoding version")
	f.StringVar(&opts.templateFile, "template-file", "", "file holding the XML body template")
	f.StringVar(&opts.template, "template", "", "XML body template given inline")
	f.StringVar(&opts.responseVar, "response-var", "", "variable to store the response in")
	f.StringVar(&opts.comment, "comment", "", "free-form comment")
	f.StringArrayVar(&opts.args, "arg", nil, "request parameter as name=value (repeatable)")
	f.BoolVar(&opts.force, "force", false, "overwrite an existing request with the same name")
	cmd.MarkFlagsMutuallyExclusive("template", "template-file")

	return cmd
}

func runNew(cmd *cobra.Command, a *app.App, name string, opts *newOptions) error {
	if !opts.force {
		exists, err := elementExists(a, name)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("request %q already exists (use --force to overwrite)", name)
		}
	}

	arguments, err := parseArguments(opts.args)
	if err != nil {
		return err
	}

	editor := a.NewEditor()
	if err := editor.Encoding().Select(opts.encoding); err != nil {
		return err
	}

	req := editor.Snapshot()
	req.Name = name
	req.Comment = opts.comment
	req.Endpoint = domain.Endpoint{
		Protocol:  opts.protocol,
		Host:      opts.host,
		Port:      opts.port,
		Path:      opts.path,
		Method:    opts.method,
		Arguments: arguments,
	}
	req.ResponseVariable = opts.responseVar
	editor.Load(req)

	text := opts.template
	if opts.templateFile != "" {
		data, err := os.ReadFile(opts.templateFile)
		if err != nil {
			return fmt.Errorf("read template file: %w", err)
		}
		text = string(data)
	}
	if err := editTemplate(editor, text); err != nil {
		return err
	}

	element := domain.NewElement(name, editor.CreateBag())
	if err := a.Storage().SaveElement(element); err != nil {
		return fmt.Errorf("save request: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s %s\n", name, editor.TemplateSize())
	return nil
}

// editTemplate replaces the editor's template through an edit session and
// commits it, refreshing the size indicator.
func editTemplate(editor *model.Editor, text string) error {
	session, err := editor.OpenTemplateEditor()
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.SetText(text); err != nil {
		return err
	}
	return session.Save()
}

func parseArguments(raw []string) ([]domain.Argument, error) {
	var arguments []domain.Argument
	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --arg %q: expected name=value", r)
		}
		arguments = append(arguments, domain.Argument{Name: name, Value: value})
	}
	return arguments, nil
}
