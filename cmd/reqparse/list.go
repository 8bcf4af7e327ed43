package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/eucaby/reqparse"
	"github.com/eucaby/reqparse/args"
)

type argumentInfo struct {
	Name     string `json:"name"`
	Required bool   `json:"required,omitempty"`
	Action   string `json:"action"`
	Default  any    `json:"default,omitempty"`
	Choices  []any  `json:"choices,omitempty"`
	Help     string `json:"help,omitempty"`
}

type argumentSetInfo struct {
	Name      string         `json:"name"`
	Arguments []argumentInfo `json:"arguments"`
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the endpoint argument sets and their arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets := make([]argumentSetInfo, 0, len(args.Names()))
			for _, name := range args.Names() {
				parser, err := args.Lookup(name)
				if err != nil {
					return err
				}
				sets = append(sets, argumentSetInfo{
					Name:      name,
					Arguments: describe(parser),
				})
			}

			out, err := json.MarshalIndent(sets, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode argument sets: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

func describe(parser *reqparse.RequestParser) []argumentInfo {
	arguments := parser.Arguments()
	infos := make([]argumentInfo, len(arguments))
	for i, arg := range arguments {
		infos[i] = argumentInfo{
			Name:     arg.Name,
			Required: arg.Required,
			Action:   arg.Action.String(),
			Default:  arg.Default,
			Choices:  arg.Choices,
			Help:     arg.Help,
		}
	}
	return infos
}
