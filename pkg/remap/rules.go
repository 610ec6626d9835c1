package remap

import (
	"fmt"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/logging"
	"github.com/forgeutil/deobf/pkg/registry"
	"github.com/forgeutil/deobf/pkg/types"
)

const RulesRemapperName = "rules"

// Rule maps one obfuscated coordinate to its deobfuscated form. Match fields
// select by exact group and name; empty To fields keep the original value.
type Rule struct {
	Group     string `toml:"group" yaml:"group"`
	Name      string `toml:"name" yaml:"name"`
	ToGroup   string `toml:"to_group" yaml:"to_group"`
	ToName    string `toml:"to_name" yaml:"to_name"`
	ToVersion string `toml:"to_version" yaml:"to_version"`
}

// RulesRemapper remaps dependencies through an explicit mapping table.
// Dependencies without a matching rule pass through unchanged.
type RulesRemapper struct {
	rules []Rule
}

// NewRulesRemapper creates a remapper over the given mapping table.
func NewRulesRemapper(rules []Rule) *RulesRemapper {
	return &RulesRemapper{rules: rules}
}

// Remap applies the first matching rule, or returns the dependency unchanged
func (r *RulesRemapper) Remap(dep types.ExternalDependency) (types.ExternalDependency, error) {
	logger := logging.GetLogger("remap.rules")

	for _, rule := range r.rules {
		if rule.Group != dep.Group() || rule.Name != dep.Name() {
			continue
		}

		group, name, version := dep.Group(), dep.Name(), dep.Version()
		if rule.ToGroup != "" {
			group = rule.ToGroup
		}
		if rule.ToName != "" {
			name = rule.ToName
		}
		if rule.ToVersion != "" {
			version = rule.ToVersion
		}

		logger.Trace().
			Str("from", dep.String()).
			Str("to", types.Coordinate(group, name, version)).
			Msg("Rule matched")
		return dep.WithCoordinates(group, name, version), nil
	}

	return dep.WithCoordinates(dep.Group(), dep.Name(), dep.Version()), nil
}

func init() {
	err := registry.RegisterRemapperFactory(RulesRemapperName, func(config map[string]interface{}) (types.Remapper, error) {
		raw, ok := config["rules"]
		if !ok {
			return NewRulesRemapper(nil), nil
		}

		entries, ok := raw.([]map[string]interface{})
		if !ok {
			// koanf and manifest decoding hand the table over as []interface{}
			loose, isLoose := raw.([]interface{})
			if !isLoose {
				return nil, errors.New(errors.ErrRemapperInvalid, "rules remapper 'rules' option must be a list of tables")
			}
			entries = make([]map[string]interface{}, 0, len(loose))
			for _, e := range loose {
				table, isTable := e.(map[string]interface{})
				if !isTable {
					return nil, errors.New(errors.ErrRemapperInvalid, "rules remapper 'rules' option must be a list of tables")
				}
				entries = append(entries, table)
			}
		}

		rules := make([]Rule, 0, len(entries))
		for _, entry := range entries {
			rules = append(rules, Rule{
				Group:     stringOption(entry, "group"),
				Name:      stringOption(entry, "name"),
				ToGroup:   stringOption(entry, "to_group"),
				ToName:    stringOption(entry, "to_name"),
				ToVersion: stringOption(entry, "to_version"),
			})
		}
		return NewRulesRemapper(rules), nil
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register RulesRemapper factory: %v", err))
	}
}

func stringOption(options map[string]interface{}, key string) string {
	value, _ := options[key].(string)
	return value
}
