package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/pcbkit/pcb"
)

// fileOp is the YAML shape of one operation; exactly one field is set.
type fileOp struct {
	Create  *int `yaml:"create,omitempty"`
	Destroy *int `yaml:"destroy,omitempty"`
}

type file struct {
	Name string   `yaml:"name"`
	Ops  []fileOp `yaml:"ops"`
}

// Load reads and validates a YAML script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML script. Unknown fields are rejected.
func Parse(data []byte) (Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, ErrEmptyScript
		}
		return Script{}, fmt.Errorf("decode script: %w", err)
	}

	s := Script{Name: f.Name, Ops: make([]Op, 0, len(f.Ops))}
	for i, fo := range f.Ops {
		var (
			kind Kind
			v    int
		)
		switch {
		case fo.Create != nil && fo.Destroy != nil:
			return Script{}, fmt.Errorf("op %d: %w: both create and destroy set", i, ErrBadOp)
		case fo.Create != nil:
			kind, v = KindCreate, *fo.Create
		case fo.Destroy != nil:
			kind, v = KindDestroy, *fo.Destroy
		default:
			return Script{}, fmt.Errorf("op %d: %w: neither create nor destroy set", i, ErrBadOp)
		}
		if v < 0 || v > math.MaxInt32 {
			return Script{}, fmt.Errorf("op %d: %w: %s index %d out of range", i, ErrBadOp, kind, v)
		}
		s.Ops = append(s.Ops, Op{Kind: kind, Index: pcb.Index(v)})
	}

	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Marshal encodes s in the format Parse reads.
func Marshal(s Script) ([]byte, error) {
	f := file{Name: s.Name, Ops: make([]fileOp, len(s.Ops))}
	for i, op := range s.Ops {
		v := int(op.Index)
		switch op.Kind {
		case KindCreate:
			f.Ops[i].Create = &v
		case KindDestroy:
			f.Ops[i].Destroy = &v
		default:
			return nil, fmt.Errorf("op %d: %w: %s", i, ErrBadOp, op)
		}
	}
	return yaml.Marshal(f)
}
