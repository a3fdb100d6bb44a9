// Package printer renders the hierarchy held by a PCB slot table.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/pcbkit/pcb"
	"github.com/joshuapare/pcbkit/pcb/walker"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented tree.
	FormatText Format = "text"

	// FormatJSON outputs nested JSON objects.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels below the root are printed (0 = unlimited).
	// Default: 0
	MaxDepth int

	// ShowFree appends the list of free slots.
	// Default: false
	ShowFree bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
	}
}

// Printer writes a table's hierarchy to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
	table  pcb.Table
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(t, os.Stdout, printer.DefaultOptions())
//	if err := p.Print(); err != nil {
//	    return err
//	}
func New(t pcb.Table, w io.Writer, opts Options) *Printer {
	return &Printer{table: t, writer: w, opts: opts}
}

// Print renders the hierarchy starting at the root.
func (p *Printer) Print() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON()
	default:
		return p.printText()
	}
}

func (p *Printer) printText() error {
	err := walker.Walk(p.table, pcb.RootIndex, func(i pcb.Index, depth int) error {
		if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
			return nil
		}
		children, err := p.table.Children(i)
		if err != nil {
			return err
		}
		indent := strings.Repeat(" ", depth*p.opts.IndentSize)
		if i == pcb.RootIndex {
			_, err = fmt.Fprintf(p.writer, "%s[%d] root children=%d\n", indent, i, len(children))
			return err
		}
		parent, err := p.table.Parent(i)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.writer, "%s[%d] parent=%d children=%d\n", indent, i, parent, len(children))
		return err
	})
	if err != nil {
		return err
	}

	if p.opts.ShowFree {
		free := p.freeSlots()
		parts := make([]string, len(free))
		for j, f := range free {
			parts[j] = fmt.Sprintf("%d", f)
		}
		_, err = fmt.Fprintf(p.writer, "free: [%s]\n", strings.Join(parts, " "))
	}
	return err
}

// jsonNode is the JSON shape of one slot.
type jsonNode struct {
	Index    pcb.Index   `json:"index"`
	Parent   *pcb.Index  `json:"parent,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonDoc struct {
	Capacity int         `json:"capacity"`
	Occupied int         `json:"occupied"`
	Root     *jsonNode   `json:"root"`
	Free     []pcb.Index `json:"free,omitempty"`
}

func (p *Printer) printJSON() error {
	nodes := make(map[pcb.Index]*jsonNode)
	err := walker.Walk(p.table, pcb.RootIndex, func(i pcb.Index, depth int) error {
		n := &jsonNode{Index: i}
		nodes[i] = n
		if i == pcb.RootIndex {
			return nil
		}
		parent, err := p.table.Parent(i)
		if err != nil {
			return err
		}
		n.Parent = &parent
		// Pre-order guarantees the parent node already exists.
		if p.opts.MaxDepth == 0 || depth <= p.opts.MaxDepth {
			nodes[parent].Children = append(nodes[parent].Children, n)
		}
		return nil
	})
	if err != nil {
		return err
	}

	doc := jsonDoc{
		Capacity: p.table.Capacity(),
		Occupied: p.table.Len(),
		Root:     nodes[pcb.RootIndex],
	}
	if p.opts.ShowFree {
		doc.Free = p.freeSlots()
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (p *Printer) freeSlots() []pcb.Index {
	var out []pcb.Index
	for i := range p.table.Capacity() {
		if p.table.IsFree(pcb.Index(i)) {
			out = append(out, pcb.Index(i))
		}
	}
	return out
}
