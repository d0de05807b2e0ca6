package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/algo"
)

// MethodInfo describes one available method.
type MethodInfo struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description"`
}

// NewMethodsCommand creates the methods command.
func NewMethodsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "methods",
		Short:         "List the available sorting methods",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			methods := algo.Methods()
			infos := make([]MethodInfo, len(methods))
			for i, m := range methods {
				infos[i] = MethodInfo{
					Name:        string(m),
					Key:         fmt.Sprintf("F%d", i+1),
					Description: m.Description(),
				}
			}

			if rootOpts.Format == "json" {
				return respond(cmd.OutOrStdout(), infos, nil)
			}
			w := cmd.OutOrStdout()
			for _, info := range infos {
				fmt.Fprintf(w, "%-4s %-10s %s\n", info.Key, info.Name, info.Description)
			}
			return nil
		},
	}
}
