package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/cheatrc/cmd/cheatrc/opts"
	"github.com/walteh/cheatrc/pkg/log"
)

// NewListCmd creates a new list command
func NewListCmd(load opts.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the changes the rule table would apply",
		Long: `List prints every configured macro tag with a description of its
effect, without touching any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro, err := load(ctx)
			if err != nil {
				return err
			}

			entries := ro.Table.Describe()
			listings := make([]log.RuleListing, 0, len(entries))
			for _, e := range entries {
				listings = append(listings, log.RuleListing{
					Tag:         e.Tag,
					Description: e.Description,
				})
			}
			log.FromContext(ctx).ListRules(listings)
			return nil
		},
	}

	return cmd
}
