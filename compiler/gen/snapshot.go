package gen

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/graphgen/graph"
)

// SnapshotVersion guards the snapshot wire format.
const SnapshotVersion = 1

// Snapshot is a compact record of the generated schema shape, written
// next to the generated source so consecutive runs can report what
// changed without parsing Go code.
type Snapshot struct {
	Version int             `msgpack:"version"`
	Types   []*TypeSnapshot `msgpack:"types"`
}

// TypeSnapshot is the shape of one generated type.
type TypeSnapshot struct {
	Name    string           `msgpack:"name"`
	Kind    string           `msgpack:"kind"`
	Fields  []*FieldSnapshot `msgpack:"fields,omitempty"`
	Members []string         `msgpack:"members,omitempty"`
	Values  []string         `msgpack:"values,omitempty"`
}

// FieldSnapshot is the shape of one field.
type FieldSnapshot struct {
	Name       string `msgpack:"name"`
	Type       string `msgpack:"type"`
	Deprecated bool   `msgpack:"deprecated,omitempty"`
}

// buildSnapshot records the planned schema shape in request order.
func (g *Generator) buildSnapshot(plans []plan) *Snapshot {
	s := &Snapshot{Version: SnapshotVersion}
	for _, p := range plans {
		switch p := p.(type) {
		case *objectPlan:
			t := &TypeSnapshot{Name: p.TypeName, Kind: "object"}
			if p.IsInterface {
				t.Kind = "interface"
			}
			for _, f := range p.Fields {
				t.Fields = append(t.Fields, &FieldSnapshot{
					Name:       f.WireName,
					Type:       snapshotTypeString(f.Type, p.TypeName),
					Deprecated: f.DeprecationReason != "",
				})
			}
			s.Types = append(s.Types, t)
		case *inputPlan:
			t := &TypeSnapshot{Name: p.TypeName, Kind: "input"}
			for _, f := range p.Fields {
				t.Fields = append(t.Fields, &FieldSnapshot{
					Name:       f.WireName,
					Type:       snapshotTypeString(f.Type, p.TypeName),
					Deprecated: f.DeprecationReason != "",
				})
			}
			s.Types = append(s.Types, t)
		case *unionPlan:
			s.Types = append(s.Types, &TypeSnapshot{
				Name:    p.TypeName,
				Kind:    "union",
				Members: p.Members,
			})
		case *enumPlan:
			t := &TypeSnapshot{Name: p.TypeName, Kind: "enum"}
			for _, v := range p.Values {
				t.Values = append(t.Values, v.Name)
			}
			s.Types = append(s.Types, t)
		}
	}
	return s
}

// snapshotTypeString renders a field's schema type, substituting the
// enclosing type's name for self placeholders that have no resolved
// target at plan time.
func snapshotTypeString(t *graph.SchemaType, self string) string {
	switch t.Kind() {
	case graph.List:
		return "[" + snapshotTypeString(t.Elem(), self) + "]"
	case graph.NonNull:
		return snapshotTypeString(t.Elem(), self) + "!"
	case graph.Self:
		if d := t.Target(); d != nil {
			return d.Name
		}
		return self
	default:
		return t.String()
	}
}

// writeSnapshot encodes and writes the schema snapshot.
func (g *Generator) writeSnapshot(path string, plans []plan) error {
	data, err := msgpack.Marshal(g.buildSnapshot(plans))
	if err != nil {
		return NewGenerationError("snapshot", path, "encode snapshot", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewGenerationError("snapshot", path, "write snapshot", err)
	}
	return nil
}

// ReadSnapshot reads and decodes a schema snapshot.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Snapshot{}
	if err := msgpack.Unmarshal(data, s); err != nil {
		return nil, NewGenerationError("snapshot", path, "decode snapshot", err)
	}
	return s, nil
}

// Diff reports the schema-shape changes from old to next, one line per
// change, in the order types appear in the snapshots.
func Diff(old, next *Snapshot) []string {
	var out []string
	prev := make(map[string]*TypeSnapshot, len(old.Types))
	for _, t := range old.Types {
		prev[t.Name] = t
	}
	curr := make(map[string]*TypeSnapshot, len(next.Types))
	for _, t := range next.Types {
		curr[t.Name] = t
	}
	for _, t := range old.Types {
		if _, ok := curr[t.Name]; !ok {
			out = append(out, fmt.Sprintf("removed %s %s", t.Kind, t.Name))
		}
	}
	for _, t := range next.Types {
		o, ok := prev[t.Name]
		if !ok {
			out = append(out, fmt.Sprintf("added %s %s", t.Kind, t.Name))
			continue
		}
		if o.Kind != t.Kind {
			out = append(out, fmt.Sprintf("%s changed kind from %s to %s", t.Name, o.Kind, t.Kind))
			continue
		}
		out = append(out, diffFields(t.Name, o.Fields, t.Fields)...)
		out = append(out, diffStrings(t.Name, "member", o.Members, t.Members)...)
		out = append(out, diffStrings(t.Name, "value", o.Values, t.Values)...)
	}
	return out
}

func diffFields(typeName string, old, next []*FieldSnapshot) []string {
	var out []string
	prev := make(map[string]*FieldSnapshot, len(old))
	for _, f := range old {
		prev[f.Name] = f
	}
	curr := make(map[string]*FieldSnapshot, len(next))
	for _, f := range next {
		curr[f.Name] = f
	}
	for _, f := range old {
		if _, ok := curr[f.Name]; !ok {
			out = append(out, fmt.Sprintf("removed field %s.%s", typeName, f.Name))
		}
	}
	for _, f := range next {
		o, ok := prev[f.Name]
		switch {
		case !ok:
			out = append(out, fmt.Sprintf("added field %s.%s: %s", typeName, f.Name, f.Type))
		case o.Type != f.Type:
			out = append(out, fmt.Sprintf("field %s.%s changed type from %s to %s", typeName, f.Name, o.Type, f.Type))
		case !o.Deprecated && f.Deprecated:
			out = append(out, fmt.Sprintf("deprecated field %s.%s", typeName, f.Name))
		}
	}
	return out
}

func diffStrings(typeName, what string, old, next []string) []string {
	var out []string
	prev := make(map[string]bool, len(old))
	for _, s := range old {
		prev[s] = true
	}
	curr := make(map[string]bool, len(next))
	for _, s := range next {
		curr[s] = true
	}
	for _, s := range old {
		if !curr[s] {
			out = append(out, fmt.Sprintf("removed %s %s from %s", what, s, typeName))
		}
	}
	for _, s := range next {
		if !prev[s] {
			out = append(out, fmt.Sprintf("added %s %s to %s", what, s, typeName))
		}
	}
	return out
}
