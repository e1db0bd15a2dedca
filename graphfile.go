package skilltree

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// graphFile is the on-disk TOML layout of a Graph.
type graphFile struct {
	Definitions []struct {
		ID               string  `toml:"id"`
		Title            string  `toml:"title"`
		Description      string  `toml:"description"`
		ExtraDescription string  `toml:"extra_description"`
		Size             float64 `toml:"size"`
	} `toml:"definition"`
	Nodes []struct {
		ID         string `toml:"id"`
		Definition string `toml:"definition"`
		X          int    `toml:"x"`
		Y          int    `toml:"y"`
		Kind       string `toml:"kind"`
		State      string `toml:"state"`
	} `toml:"node"`
	Connections []struct {
		A             string `toml:"a"`
		B             string `toml:"b"`
		Bidirectional bool   `toml:"bidirectional"`
	} `toml:"connection"`
	Exclusive []struct {
		Owner         string `toml:"owner"`
		A             string `toml:"a"`
		B             string `toml:"b"`
		Bidirectional bool   `toml:"bidirectional"`
	} `toml:"exclusive"`
	Paths []struct {
		Name  string   `toml:"name"`
		Nodes []string `toml:"nodes"`
	} `toml:"path"`
	Rewards map[string]int `toml:"rewards"`
}

// DecodeGraph builds a Graph from TOML. Nodes keep file order, which is
// also their hit-test precedence.
func DecodeGraph(data []byte) (*Graph, error) {
	var f graphFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}

	g := NewGraph()
	for _, d := range f.Definitions {
		g.DefineNode(d.ID, Definition{
			Descriptor: Descriptor{
				Title:            d.Title,
				Description:      d.Description,
				ExtraDescription: d.ExtraDescription,
			},
			Size: d.Size,
		})
	}
	for _, n := range f.Nodes {
		kind, err := ParseNodeKind(n.Kind)
		if err != nil {
			return nil, fmt.Errorf("decode graph: node %q: %w", n.ID, err)
		}
		state := StateLocked
		if n.State != "" {
			if state, err = ParseNodeState(n.State); err != nil {
				return nil, fmt.Errorf("decode graph: node %q: %w", n.ID, err)
			}
		}
		g.AddNode(GraphEntry{ID: n.ID, Definition: n.Definition, X: n.X, Y: n.Y, Kind: kind, State: state})
	}
	for _, c := range f.Connections {
		if err := g.Connect(c.A, c.B, c.Bidirectional); err != nil {
			return nil, fmt.Errorf("decode graph: connection: %w", err)
		}
	}
	for _, c := range f.Exclusive {
		if err := g.ConnectExclusive(c.Owner, c.A, c.B, c.Bidirectional); err != nil {
			return nil, fmt.Errorf("decode graph: exclusive connection: %w", err)
		}
	}
	for _, p := range f.Paths {
		if err := g.SetPath(p.Name, p.Nodes); err != nil {
			return nil, fmt.Errorf("decode graph: path %q: %w", p.Name, err)
		}
	}
	if len(f.Rewards) > 0 {
		g.SetClassRewards(f.Rewards)
	}
	return g, nil
}

// LoadGraph reads and decodes a TOML graph file.
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	return DecodeGraph(data)
}
