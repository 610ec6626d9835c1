package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/pom"
	"github.com/forgeutil/deobf/pkg/types"
)

var pomCmd = &cobra.Command{
	Use:   "pom <manifest> <group:name:version>",
	Short: "Attach a pom artifact to a dependency and print its POM",
	Long: `Pom looks up the dependency with the given coordinate in the manifest's
projects, attaches the synthesized pom artifact descriptor, and prints the
resulting POM document.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace(args[0])
		if err != nil {
			return err
		}

		dep, err := findDependency(ws, args[1])
		if err != nil {
			return err
		}
		if err := pom.AttachArtifact(dep); err != nil {
			return err
		}
		return pom.Render(dep, os.Stdout)
	},
}

// findDependency scans every configuration of every project for an external
// dependency with the given coordinate.
func findDependency(ws *workspace, coordinate string) (types.ExternalDependency, error) {
	for _, project := range ws.projects {
		configs := project.Configurations()
		for _, name := range configs.Names() {
			cfg, err := configs.Get(name)
			if err != nil {
				return nil, err
			}
			for _, dep := range cfg.Dependencies() {
				ext, ok := dep.(types.ExternalDependency)
				if !ok {
					continue
				}
				if ext.String() == coordinate {
					return ext, nil
				}
			}
		}
	}
	return nil, errors.Newf(errors.ErrNotFound, "dependency '%s' not found in manifest", coordinate)
}
