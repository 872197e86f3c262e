package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"pairingcheck/internal/domain/errors/domain"
	"pairingcheck/internal/domain/valueobject"

	"gopkg.in/yaml.v3"
)

// builtinPairs is the table compiled into the tool. Each entry lists the open
// aliases followed by the close aliases.
//
//nolint:gochecknoglobals // static configuration table
var builtinPairs = [][2][]string{
	{{"malloc"}, {"free"}},
	{{"material_load"}, {"material_release"}},
	{{"material_cache_load"}, {"material_cache_release"}},
	{{"render_scene_add", "render_scene_add_renderable"}, {"render_scene_remove"}},
	{{"renderable_init", "renderable_single_axis_init"}, {"renderable_destroy"}},
	{{"update_add"}, {"update_remove"}},
	{{"collision_scene_add"}, {"collision_scene_remove"}},
	{{"animator_init"}, {"animator_destroy"}},
	{{"animation_cache_load"}, {"animation_cache_release"}},
	{{"spell_exec_init"}, {"spell_exec_destroy"}},
	{{"effect_malloc"}, {"effect_free"}},
	{{"rspq_block_end"}, {"rspq_block_free"}},
	{{"health_init"}, {"health_destroy"}},
	{{"cutscene_load", "cutscene_new", "cutscene_builder_finish"}, {"cutscene_free", "cutscene_runner_free_on_finish"}},
}

// DefaultPairTable returns the built-in pair table.
func DefaultPairTable() valueobject.PairTable {
	specs := make([]valueobject.PairSpec, 0, len(builtinPairs))
	for _, pair := range builtinPairs {
		specs = append(specs, valueobject.MustPairSpec(pair[0], pair[1]))
	}
	return valueobject.NewPairTable(specs...)
}

// aliasList accepts either a single alias or a list of aliases.
type aliasList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *aliasList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var alias string
		if err := node.Decode(&alias); err != nil {
			return err
		}
		*a = aliasList{alias}
		return nil
	case yaml.SequenceNode:
		var aliases []string
		if err := node.Decode(&aliases); err != nil {
			return err
		}
		*a = aliases
		return nil
	default:
		return fmt.Errorf("line %d: aliases must be a string or a list of strings", node.Line)
	}
}

type pairEntry struct {
	Name  string    `yaml:"name"`
	Open  aliasList `yaml:"open"`
	Close aliasList `yaml:"close"`
}

type pairTableFile struct {
	Pairs []pairEntry `yaml:"pairs"`
}

// ParsePairTable decodes a YAML pair table:
//
//	pairs:
//	  - open: malloc
//	    close: free
//	  - name: renderable
//	    open: [renderable_init, renderable_single_axis_init]
//	    close: renderable_destroy
func ParsePairTable(r io.Reader) (valueobject.PairTable, error) {
	var raw pairTableFile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return valueobject.PairTable{}, fmt.Errorf("%w: empty pair table", domain.ErrInvalidPairConfig)
		}
		return valueobject.PairTable{}, fmt.Errorf("%w: %w", domain.ErrInvalidPairConfig, err)
	}

	if len(raw.Pairs) == 0 {
		return valueobject.PairTable{}, fmt.Errorf("%w: no pairs defined", domain.ErrInvalidPairConfig)
	}

	specs := make([]valueobject.PairSpec, 0, len(raw.Pairs))
	for i, entry := range raw.Pairs {
		spec, err := valueobject.NewNamedPairSpec(entry.Name, entry.Open, entry.Close)
		if err != nil {
			return valueobject.PairTable{}, fmt.Errorf("%w: pairs[%d]: %w", domain.ErrInvalidPairConfig, i, err)
		}
		specs = append(specs, spec)
	}

	return valueobject.NewPairTable(specs...), nil
}

// LoadPairTable reads a YAML pair table from path. An empty path yields the
// built-in table.
func LoadPairTable(path string) (valueobject.PairTable, error) {
	if path == "" {
		return DefaultPairTable(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return valueobject.PairTable{}, fmt.Errorf("%w: %s", domain.ErrPairTableNotFound, path)
		}
		return valueobject.PairTable{}, fmt.Errorf("open pair table %s: %w", path, err)
	}
	defer file.Close()

	table, err := ParsePairTable(file)
	if err != nil {
		return valueobject.PairTable{}, fmt.Errorf("pair table %s: %w", path, err)
	}
	return table, nil
}
