package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohighlight/pkg/config"
	"github.com/yaklabco/gohighlight/pkg/fsutil"
)

const initConfigName = ".gohighlight.yaml"

func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + initConfigName + " to the current directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := os.Stat(initConfigName); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", initConfigName)
			}
			if err := fsutil.WriteAtomic(initConfigName, []byte(config.Template), 0); err != nil {
				return fmt.Errorf("write %s: %w", initConfigName, err)
			}
			fmt.Println("wrote", initConfigName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
