package sapling

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Node kinds recorded in a snapshot.
const (
	KindNode     = "node"
	KindDrawable = "drawable"
	KindSprite   = "sprite"
)

// ErrInvalidSnapshot is returned by Build for records that do not describe a
// single well-formed tree.
var ErrInvalidSnapshot = errors.New("sapling: invalid snapshot")

// NodeRecord is the flat form of one node. Parent is the ID of the parent
// record, or 0 for the root. IDs only link records together; rebuilt nodes
// get fresh IDs.
type NodeRecord struct {
	ID     uint32            `yaml:"id" json:"id"`
	Name   string            `yaml:"name" json:"name"`
	Parent uint32            `yaml:"parent,omitempty" json:"parent,omitempty"`
	Kind   string            `yaml:"kind" json:"kind"`
	Props  map[string]string `yaml:"props,omitempty" json:"props,omitempty"`
}

// NodeFactory creates the node for a record. Behaviors (OnUpdate, OnInput,
// custom Drawables) cannot be serialized; a factory re-creates them.
type NodeFactory func(rec NodeRecord) (*Node, error)

type snapshotFile struct {
	Nodes []NodeRecord `yaml:"nodes"`
}

// Snapshot flattens the tree into records in pre-order, so every parent
// precedes its children. Sprite records keep the transform, alpha,
// visibility, tint (rounded to 8 bits per channel) and blend mode; images
// are not recorded.
func Snapshot(t *SceneTree) []NodeRecord {
	var out []NodeRecord
	walkTree(t.root, func(n, parent *Node, _, _ int) bool {
		rec := NodeRecord{ID: n.ID, Name: n.Name, Kind: KindNode}
		if parent != nil {
			rec.Parent = parent.ID
		}
		if s := n.Sprite(); s != nil {
			rec.Kind = KindSprite
			rec.Props = spriteProps(s)
		} else if n.Drawable != nil {
			rec.Kind = KindDrawable
		}
		out = append(out, rec)
		return true
	})
	return out
}

// Build creates a new tree from records. Each parent must appear before its
// children and exactly one record must be the root. A nil factory uses
// DefaultFactory. Nodes are attached in record order, so the draw order
// follows the records.
func Build(records []NodeRecord, factory NodeFactory, opts ...Option) (*SceneTree, error) {
	if factory == nil {
		factory = DefaultFactory
	}
	t := NewSceneTree(opts...)
	byID := make(map[uint32]*Node, len(records))
	for i, rec := range records {
		if rec.ID == 0 {
			return nil, fmt.Errorf("record %d (%q): zero id: %w", i, rec.Name, ErrInvalidSnapshot)
		}
		if _, dup := byID[rec.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %d: %w", i, rec.ID, ErrInvalidSnapshot)
		}
		var parent *Node
		if rec.Parent == 0 {
			if t.root != nil {
				return nil, fmt.Errorf("record %d: second root %q: %w", i, rec.Name, ErrInvalidSnapshot)
			}
		} else {
			p, ok := byID[rec.Parent]
			if !ok {
				return nil, fmt.Errorf("record %d: unknown parent %d: %w", i, rec.Parent, ErrInvalidSnapshot)
			}
			parent = p
		}
		n, err := factory(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, rec.Name, err)
		}
		if err := t.Attach(n, parent); err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, rec.Name, err)
		}
		byID[rec.ID] = n
	}
	return t, nil
}

// DefaultFactory builds structural nodes and sprites (without images).
// Drawable records become structural nodes, since their paint behavior is
// not recorded.
func DefaultFactory(rec NodeRecord) (*Node, error) {
	switch rec.Kind {
	case KindNode, KindDrawable, "":
		return NewNode(rec.Name), nil
	case KindSprite:
		n := NewSpriteNode(rec.Name, nil)
		if err := applySpriteProps(n.Sprite(), rec.Props); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unknown kind %q: %w", rec.Kind, ErrInvalidSnapshot)
	}
}

// MarshalRecords encodes records as YAML.
func MarshalRecords(records []NodeRecord) ([]byte, error) {
	return yaml.Marshal(snapshotFile{Nodes: records})
}

// UnmarshalRecords decodes records written by MarshalRecords.
func UnmarshalRecords(data []byte) ([]NodeRecord, error) {
	var f snapshotFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return f.Nodes, nil
}

// --- Sprite properties ---

func spriteFields(s *Sprite) map[string]*float64 {
	return map[string]*float64{
		"x":        &s.X,
		"y":        &s.Y,
		"scale_x":  &s.ScaleX,
		"scale_y":  &s.ScaleY,
		"rotation": &s.Rotation,
		"pivot_x":  &s.PivotX,
		"pivot_y":  &s.PivotY,
		"alpha":    &s.Alpha,
	}
}

func spriteProps(s *Sprite) map[string]string {
	props := make(map[string]string)
	for k, v := range spriteFields(s) {
		props[k] = strconv.FormatFloat(*v, 'g', -1, 64)
	}
	props["visible"] = strconv.FormatBool(s.Visible)
	props["color"] = FormatHexColor(s.Color)
	props["blend"] = s.BlendMode.String()
	return props
}

func applySpriteProps(s *Sprite, props map[string]string) error {
	fields := spriteFields(s)
	for k, v := range props {
		switch k {
		case "visible":
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("prop %s: %w", k, err)
			}
			s.Visible = b
			continue
		case "color":
			c, err := ParseHexColor(v)
			if err != nil {
				return fmt.Errorf("prop %s: %w", k, err)
			}
			s.Color = c
			continue
		case "blend":
			m, err := ParseBlendMode(v)
			if err != nil {
				return fmt.Errorf("prop %s: %w", k, err)
			}
			s.BlendMode = m
			continue
		}
		f, ok := fields[k]
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("prop %s: %w", k, err)
		}
		*f = x
	}
	s.MarkDirty()
	return nil
}
