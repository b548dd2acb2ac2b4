package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/cheatrc/cmd/cheatrc/opts"
	"github.com/walteh/cheatrc/pkg/log"
	"github.com/walteh/cheatrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewInjectCmd creates a new inject command
func NewInjectCmd(load opts.Loader) *cobra.Command {
	var templateDir string
	var destDir string

	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Process templates into the game directory",
		Long: `Inject reads every template under the template directory, resolves
its macro spans against the rule table, and writes the results into the
destination directory. It will:
1. Enumerate templates in a fixed order
2. Detect and preserve each file's encoding and line endings
3. Substitute every @tag|default@ span
4. Write each destination file atomically`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro, err := load(ctx)
			if err != nil {
				return err
			}

			runOpts := operation.Options{
				TemplateDir: templateDir,
				DestDir:     destDir,
				Table:       ro.Table,
			}
			if flags := ro.Config.Flags; flags != nil {
				runOpts.Ignore = flags.Ignore
				if !cmd.Flags().Changed("template-dir") && flags.TemplateDir != "" {
					runOpts.TemplateDir = flags.TemplateDir
				}
				if !cmd.Flags().Changed("dest-dir") && flags.DestDir != "" {
					runOpts.DestDir = flags.DestDir
				}
			}
			if runOpts.DestDir == "" {
				return errors.New("destination directory is required (--dest-dir or cheat file)")
			}

			log.FromContext(ctx).Header("injecting templates into " + runOpts.DestDir)

			if err := operation.Run(ctx, runOpts); err != nil {
				return errors.Errorf("injecting templates: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateDir, "template-dir", "t", "templates", "directory in which to find templates")
	cmd.Flags().StringVarP(&destDir, "dest-dir", "d", "", "directory in which to write modified files")

	return cmd
}
