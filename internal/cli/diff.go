package cli

import (
	"encoding/json"
	"fmt"

	jd "github.com/josephburnett/jd/lib"
	"github.com/shhac/amfconf/internal/app"
	"github.com/shhac/amfconf/internal/property"
	"github.com/spf13/cobra"
)

func newDiffCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "diff NAME OTHER",
		Short: "compare the stored properties of two requests",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := loadElement(a, args[0])
			if err != nil {
				return err
			}
			right, err := loadElement(a, args[1])
			if err != nil {
				return err
			}

			diff, err := diffProperties(left.Properties, right.Properties)
			if err != nil {
				return err
			}
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no differences")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), diff)
			return nil
		},
	}
}

// diffProperties renders the differences between two bags in jd's diff
// format. Property order is ignored.
func diffProperties(left, right *property.Map) (string, error) {
	leftNode, err := propertiesNode(left)
	if err != nil {
		return "", err
	}
	rightNode, err := propertiesNode(right)
	if err != nil {
		return "", err
	}
	return leftNode.Diff(rightNode).Render(), nil
}

func propertiesNode(props *property.Map) (jd.JsonNode, error) {
	data, err := json.Marshal(props.ToMap())
	if err != nil {
		return nil, fmt.Errorf("marshal properties: %w", err)
	}
	node, err := jd.ReadJsonString(string(data))
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}
	return node, nil
}
