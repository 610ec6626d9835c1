package pom

import (
	"io"

	"github.com/beevik/etree"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/types"
)

const modelVersion = "4.0.0"

// Render writes a minimal POM document for the dependency. The packaging is
// taken from the first artifact's type, falling back to "jar" when the
// dependency has no artifacts.
func Render(dep types.ExternalDependency, w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	project := doc.CreateElement("project")
	project.CreateAttr("xmlns", "http://maven.apache.org/POM/4.0.0")
	project.CreateElement("modelVersion").SetText(modelVersion)
	project.CreateElement("groupId").SetText(dep.Group())
	project.CreateElement("artifactId").SetText(dep.Name())
	project.CreateElement("version").SetText(dep.Version())

	packaging := "jar"
	if artifacts := dep.Artifacts(); len(artifacts) > 0 && artifacts[0].Type != "" {
		packaging = artifacts[0].Type
	}
	project.CreateElement("packaging").SetText(packaging)

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrapf(err, errors.ErrPomRender,
			"failed to render POM for %s", dep.String())
	}
	return nil
}
