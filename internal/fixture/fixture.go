// Package fixture loads named BSP test scenarios from YAML, letting
// the property tests share a single corpus of points, triangles, and
// segments with known expected hit sets instead of re-declaring them
// as Go literals in every test file.
package fixture

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one named test case: a point/triangle/segment scene
// plus the hit ids every segment is expected to produce, in order.
type Scenario struct {
	Name      string       `yaml:"name"`
	Points    [][3]float64 `yaml:"points"`
	Triangles [][3]int     `yaml:"triangles"`
	Segments  [][6]float64 `yaml:"segments"`
	Expected  [][]int      `yaml:"expected"`
}

// Load reads a single scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, err
	}
	return s, nil
}
