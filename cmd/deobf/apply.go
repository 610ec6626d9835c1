package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeutil/deobf/pkg/logging"
)

var applyCmd = &cobra.Command{
	Use:   "apply <manifest>",
	Short: "Run the remap pass for a manifest",
	Long: `Apply builds the remap plan for every project in the manifest and
executes it: remapped dependencies are added to their target configurations
and the obfuscated originals are collected in the bookkeeping configuration.
The resulting configuration contents are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.apply")
		ws, err := loadWorkspace(args[0])
		if err != nil {
			return err
		}

		for _, project := range ws.projects {
			plan, err := ws.manager.Plan(project)
			if err != nil {
				return err
			}
			ws.manager.Apply(plan)

			logger.Info().
				Str("project", project.Name()).
				Int("actions", len(plan.Actions())).
				Msg("Remap pass applied")

			fmt.Println(renderHeader(fmt.Sprintf("project %s", project.Name())))
			configs := project.Configurations()
			for _, name := range configs.Names() {
				cfg, err := configs.Get(name)
				if err != nil {
					return err
				}
				deps := cfg.Dependencies()
				if len(deps) == 0 {
					continue
				}
				fmt.Printf("  %s\n", name)
				for _, dep := range deps {
					fmt.Printf("    %s\n", renderCoordinate(dep.String()))
				}
			}
		}
		return nil
	},
}
