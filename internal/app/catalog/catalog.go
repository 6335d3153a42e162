package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kdanquah/regportal/internal/app/models"
)

// Catalog is the static lookup from (programme, level) to the ordered course
// list offered at that stage. Lookups are exact string matches; unknown keys
// yield an empty result, never an error. Content is configuration data, not
// logic: it can be replaced wholesale from a YAML file.
type Catalog struct {
	programmes []Programme
}

// Programme is one professional-certification track with its ordered levels.
type Programme struct {
	Name   string  `yaml:"name"`
	Levels []Level `yaml:"levels"`
}

// Level is a named pathway stage and the courses selectable at it.
type Level struct {
	Name    string          `yaml:"name"`
	Courses []models.Course `yaml:"courses"`
}

// New builds a catalogue from the given programme tables.
func New(programmes []Programme) *Catalog {
	return &Catalog{programmes: programmes}
}

// Default returns the compiled-in catalogue.
func Default() *Catalog {
	return New(defaultProgrammes())
}

// LoadFile reads a catalogue from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue file: %w", err)
	}

	var doc struct {
		Programmes []Programme `yaml:"programmes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue file: %w", err)
	}

	return New(doc.Programmes), nil
}

// Programmes returns the programme names in catalogue order.
func (c *Catalog) Programmes() []string {
	names := make([]string, 0, len(c.programmes))
	for _, p := range c.programmes {
		names = append(names, p.Name)
	}
	return names
}

// Levels returns the level names of a programme in catalogue order. An
// unknown programme yields an empty list.
func (c *Catalog) Levels(programme string) []string {
	for _, p := range c.programmes {
		if p.Name != programme {
			continue
		}
		names := make([]string, 0, len(p.Levels))
		for _, l := range p.Levels {
			names = append(names, l.Name)
		}
		return names
	}
	return []string{}
}

// CoursesFor returns a copy of the ordered course list for the given
// programme and level. Unknown programme or level yields an empty list.
func (c *Catalog) CoursesFor(programme, level string) []models.Course {
	for _, p := range c.programmes {
		if p.Name != programme {
			continue
		}
		for _, l := range p.Levels {
			if l.Name != level {
				continue
			}
			out := make([]models.Course, len(l.Courses))
			copy(out, l.Courses)
			return out
		}
	}
	return []models.Course{}
}
