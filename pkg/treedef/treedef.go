package treedef

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/widgeo/pkg/geometry"
	"github.com/grindlemire/widgeo/pkg/widget"
)

// Def is a parsed tree definition: an axis count plus the root node.
type Def struct {
	Axes int  `yaml:"axes"`
	Root Node `yaml:",inline"`
}

// Node describes one widget. A node with a sequence axis is a frame (even
// with no children listed); a node without one is a leaf.
type Node struct {
	Name     string    `yaml:"name"`
	Sequence *int      `yaml:"sequence"`
	Sizes    []SizeDef `yaml:"sizes"`
	Children []Node    `yaml:"children"`
}

// SizeDef describes one widget's preferences for one axis.
type SizeDef struct {
	Demand  string    `yaml:"demand"`
	Extent  *float64  `yaml:"extent"`
	Outer   BufferDef `yaml:"outer"`
	Inner   BufferDef `yaml:"inner"`
	Justify string    `yaml:"justify"`
}

// BufferDef is a buffer value with an optional unit. In YAML it may be a
// bare number (fractional units) or a {value, unit} mapping.
type BufferDef struct {
	Value float64
	Unit  string
}

// UnmarshalYAML accepts either scalar or mapping form.
func (b *BufferDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		b.Unit = ""
		return value.Decode(&b.Value)
	}
	var raw struct {
		Value float64 `yaml:"value"`
		Unit  string  `yaml:"unit"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	b.Value = raw.Value
	b.Unit = raw.Unit
	return nil
}

func (b BufferDef) buffer() (geometry.Buffer, error) {
	switch b.Unit {
	case "", "frac":
		return geometry.Frac(b.Value), nil
	case "world":
		return geometry.World(b.Value), nil
	default:
		return geometry.Buffer{}, fmt.Errorf("buffer unit %q is not recognized", b.Unit)
	}
}

// Load decodes a tree definition from r.
func Load(r io.Reader) (*Def, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Def
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode tree definition: %w", err)
	}
	if d.Axes < 1 {
		return nil, fmt.Errorf("tree definition needs at least one axis, got %d", d.Axes)
	}
	if d.Root.Name == "" {
		return nil, fmt.Errorf("tree definition needs a root widget name")
	}
	if d.Root.Sequence == nil {
		return nil, fmt.Errorf("root widget %q needs a sequence axis", d.Root.Name)
	}
	return &d, nil
}

// LoadFile decodes the tree definition in the named file.
func LoadFile(path string) (*Def, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tree definition: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Build constructs the widget tree the definition describes. Size
// validation errors from the geometry package surface unchanged, wrapped
// with the widget's name and axis.
func (d *Def) Build() (*widget.Arena, error) {
	arena := widget.NewArena(d.Axes)

	sizes, err := d.sizesOf(&d.Root)
	if err != nil {
		return nil, err
	}
	root, err := arena.Root(d.Root.Name, *d.Root.Sequence, sizes...)
	if err != nil {
		return nil, err
	}
	if err := d.buildChildren(arena, root, &d.Root); err != nil {
		return nil, err
	}
	return arena, nil
}

func (d *Def) buildChildren(arena *widget.Arena, parent widget.Handle, n *Node) error {
	for i := range n.Children {
		child := &n.Children[i]
		sizes, err := d.sizesOf(child)
		if err != nil {
			return err
		}

		var h widget.Handle
		if child.Sequence != nil {
			h, err = arena.Frame(parent, child.Name, *child.Sequence, sizes...)
		} else {
			if len(child.Children) > 0 {
				return fmt.Errorf("widget %q has children but no sequence axis", child.Name)
			}
			h, err = arena.Leaf(parent, child.Name, sizes...)
		}
		if err != nil {
			return err
		}

		if err := d.buildChildren(arena, h, child); err != nil {
			return err
		}
	}
	return nil
}

func (d *Def) sizesOf(n *Node) ([]*geometry.Size, error) {
	if len(n.Sizes) != d.Axes {
		return nil, fmt.Errorf("widget %q declares %d sizes, definition has %d axes", n.Name, len(n.Sizes), d.Axes)
	}

	sizes := make([]*geometry.Size, len(n.Sizes))
	for i, sd := range n.Sizes {
		demand, err := geometry.ParseDemand(sd.Demand)
		if err != nil {
			return nil, fmt.Errorf("widget %q axis %d: %w", n.Name, i, err)
		}

		justify := geometry.Spread // default when omitted
		if sd.Justify != "" {
			justify, err = geometry.ParseJustify(sd.Justify)
			if err != nil {
				return nil, fmt.Errorf("widget %q axis %d: %w", n.Name, i, err)
			}
		}

		outer, err := sd.Outer.buffer()
		if err != nil {
			return nil, fmt.Errorf("widget %q axis %d: %w", n.Name, i, err)
		}
		inner, err := sd.Inner.buffer()
		if err != nil {
			return nil, fmt.Errorf("widget %q axis %d: %w", n.Name, i, err)
		}

		extent := -1.0
		if sd.Extent != nil {
			extent = *sd.Extent
		}

		sizes[i], err = geometry.NewSize(demand, extent, outer, inner, justify)
		if err != nil {
			return nil, fmt.Errorf("widget %q axis %d: %w", n.Name, i, err)
		}
	}
	return sizes, nil
}
