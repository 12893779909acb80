package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shhac/amfconf/internal/app"
	"github.com/shhac/amfconf/internal/binder"
	"github.com/shhac/amfconf/internal/domain"
	"github.com/shhac/amfconf/internal/property"
	"github.com/shhac/amfconf/internal/template"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// requestView is the printable form of a stored AMF request.
type requestView struct {
	Name             string       `json:"name" yaml:"name"`
	ID               string       `json:"id" yaml:"id"`
	Comment          string       `json:"comment,omitempty" yaml:"comment,omitempty"`
	Endpoint         endpointView `json:"endpoint" yaml:"endpoint"`
	ObjectEncoding   string       `json:"objectEncodingVersion" yaml:"objectEncodingVersion"`
	ResponseVariable string       `json:"responseVariable" yaml:"responseVariable"`
	TemplateSize     string       `json:"templateSize" yaml:"templateSize"`
	BodyTemplate     string       `json:"bodyTemplate" yaml:"bodyTemplate"`
}

type endpointView struct {
	Protocol        string            `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Host            string            `json:"host" yaml:"host"`
	Port            string            `json:"port,omitempty" yaml:"port,omitempty"`
	Path            string            `json:"path" yaml:"path"`
	Method          string            `json:"method" yaml:"method"`
	ContentEncoding string            `json:"contentEncoding,omitempty" yaml:"contentEncoding,omitempty"`
	Arguments       []domain.Argument `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

func newRequestView(element *domain.Element, req domain.AMFRequest) requestView {
	return requestView{
		Name:    element.Name,
		ID:      element.ID,
		Comment: req.Comment,
		Endpoint: endpointView{
			Protocol:        req.Endpoint.Protocol,
			Host:            req.Endpoint.Host,
			Port:            req.Endpoint.Port,
			Path:            req.Endpoint.Path,
			Method:          req.Endpoint.Method,
			ContentEncoding: req.Endpoint.ContentEncoding,
			Arguments:       req.Endpoint.Arguments,
		},
		ObjectEncoding:   req.ObjectEncoding.String(),
		ResponseVariable: req.ResponseVariable,
		TemplateSize:     template.FormatSize(req.BodyTemplate),
		BodyTemplate:     req.BodyTemplate,
	}
}

func newShowCmd(a *app.App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "print a stored AMF request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			element, err := loadElement(a, args[0])
			if err != nil {
				return err
			}
			return writeElement(cmd.OutOrStdout(), element, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml, json or properties")
	return cmd
}

func writeElement(w io.Writer, element *domain.Element, format string) error {
	switch format {
	case "properties":
		return writeProperties(w, element.Properties)
	case "json":
		view := newRequestView(element, binder.Import(element.Properties))
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		return nil
	case "yaml":
		view := newRequestView(element, binder.Import(element.Properties))
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeProperties(w io.Writer, props *property.Map) error {
	var err error
	props.Each(func(name, value string) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%s=%q\n", name, value)
		}
	})
	return err
}
