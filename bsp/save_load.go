package bsp

import (
	"encoding/json"
	"os"

	"github.com/coredelta/bsp3d/geom3"
)

// nodeData is the JSON-serializable shape of a Node, adapted from the
// mesh package's MeshData/Save/Load convention this tree structure is
// descended from.
type nodeData struct {
	Plane    geom3.Plane        `json:"plane"`
	Coplanar []geom3.IDTriangle `json:"coplanar"`
	Positive *nodeData          `json:"positive,omitempty"`
	Negative *nodeData          `json:"negative,omitempty"`
}

func toData(n *Node) *nodeData {
	if n == nil {
		return nil
	}
	return &nodeData{
		Plane:    n.Plane,
		Coplanar: n.Coplanar,
		Positive: toData(n.Positive),
		Negative: toData(n.Negative),
	}
}

func fromData(d *nodeData) *Node {
	if d == nil {
		return nil
	}
	return &Node{
		Plane:    d.Plane,
		Coplanar: d.Coplanar,
		Positive: fromData(d.Positive),
		Negative: fromData(d.Negative),
	}
}

// Save writes the tree rooted at node to a JSON file.
//
// This is useful for debugging: capture a problematic tree and share
// it for analysis without re-running the (possibly large) build that
// produced it.
func Save(node *Node, filename string) error {
	if node == nil {
		return ErrEmptyTree
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toData(node))
}

// Load reads a tree previously written by Save.
func Load(filename string) (*Node, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data nodeData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, ErrCorruptDump
	}
	return fromData(&data), nil
}
