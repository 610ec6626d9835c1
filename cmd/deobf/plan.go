package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeutil/deobf/pkg/logging"
)

var planCmd = &cobra.Command{
	Use:   "plan <manifest>",
	Short: "Show the pending remap actions for a manifest",
	Long: `Plan loads the manifest, registers every project's deobfuscation
companion configurations, and prints the remap actions that apply would
perform. Nothing is mutated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.plan")
		ws, err := loadWorkspace(args[0])
		if err != nil {
			return err
		}

		for _, project := range ws.projects {
			plan, err := ws.manager.Plan(project)
			if err != nil {
				return err
			}

			actions := plan.Actions()
			logger.Info().
				Str("project", project.Name()).
				Int("actions", len(actions)).
				Msg("Plan built")

			fmt.Println(renderHeader(fmt.Sprintf("project %s (%d actions)", project.Name(), len(actions))))
			for _, action := range actions {
				fmt.Printf("  %s: %s %s %s (%s)\n",
					action.Source.Name(),
					renderCoordinate(action.Original.String()),
					renderArrow(),
					renderCoordinate(action.Remapped.String()),
					action.Target.Name())
			}
		}
		return nil
	},
}
