package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

// taxonomyFile is the on-disk YAML schema. Keeping the taxonomy in a
// versioned file means vocabulary changes ship as configuration, not as
// code edits.
type taxonomyFile struct {
	Aliases        map[string]string   `yaml:"aliases"`
	MixedIndicator map[string][]string `yaml:"mixed_indicators"`
	CatchAll       string              `yaml:"catch_all"`
	Opportunity    string              `yaml:"opportunity"`
	Categories     []categoryFile      `yaml:"categories"`
	Financial      []string            `yaml:"financial"`
	HighPrecision  []string            `yaml:"high_precision"`
}

type categoryFile struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description"`
	Examples    string   `yaml:"examples"`
	Lexicon     []string `yaml:"lexicon"`
	Restricted  bool     `yaml:"restricted"`
}

// LoadFile reads a taxonomy version from a YAML file and validates it the
// same way the built-in taxonomy is validated.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewConfigError(fmt.Sprintf("read taxonomy file %s", path), err)
	}

	var f taxonomyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, common.NewConfigError(fmt.Sprintf("parse taxonomy file %s", path), err)
	}

	spec := Spec{
		CatchAll:       model.CategoryID(f.CatchAll),
		Opportunity:    model.CategoryID(f.Opportunity),
		Financial:      f.Financial,
		Lexicons:       make(map[model.CategoryID][]string, len(f.Categories)),
		Aliases:        make(map[string]model.CategoryID, len(f.Aliases)),
		MixedIndicator: make(map[model.CategoryID][]string, len(f.MixedIndicator)),
	}

	for _, cat := range f.Categories {
		spec.Categories = append(spec.Categories, model.Category{
			ID:          model.CategoryID(cat.ID),
			Description: cat.Description,
			Examples:    cat.Examples,
			Restricted:  cat.Restricted,
		})
		if len(cat.Lexicon) > 0 {
			spec.Lexicons[model.CategoryID(cat.ID)] = cat.Lexicon
		}
	}

	for alias, id := range f.Aliases {
		spec.Aliases[alias] = model.CategoryID(id)
	}
	for id, indicators := range f.MixedIndicator {
		spec.MixedIndicator[model.CategoryID(id)] = indicators
	}
	for _, id := range f.HighPrecision {
		spec.HighPrecision = append(spec.HighPrecision, model.CategoryID(id))
	}

	return New(spec)
}

// Load returns the taxonomy to use: the file at path when path is non-empty,
// the built-in tables otherwise.
func Load(path string) (*Registry, error) {
	if path != "" {
		return LoadFile(path)
	}
	return Default()
}
