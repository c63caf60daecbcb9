package catalog

import "github.com/nodeflow/bme/internal/value"

// node is one entry in a block's "nodes" array in the §6 descriptor JSON.
type node struct {
	ID   uint32 `json:"id"`
	IO   string `json:"io"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

// blockJSON is one entry in the descriptor JSON's "blocks" array.
type blockJSON struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Nodes []node `json:"nodes"`
}

// connectionJSON is one entry in the descriptor JSON's "connections" array.
type connectionJSON struct {
	Type         string `json:"type"`
	Color        string `json:"color"`
	ValueEdit    bool   `json:"valueEdit"`
	ValueDefault string `json:"valueDefault"`
	ValueCheck   string `json:"valueCheck"`
}

type rulesJSON struct {
	StrictInputOutput   bool `json:"strictInputOutput"`
	StrictDifferentBock bool `json:"strictDifferentBlock"`
	StrictConnections   bool `json:"strictConnections"`
}

// descriptorJSON is the top-level shape spec.md §6 "Catalog descriptor
// JSON" describes, emitted for editor consumption.
type descriptorJSON struct {
	Rules       rulesJSON        `json:"rules"`
	Connections []connectionJSON `json:"connections"`
	Blocks      []blockJSON      `json:"blocks"`
}

// nodesFor builds the port-id-convention node list for one descriptor,
// following spec.md §3's "Port-ID layout convention": Start emits one
// output at id 0; Normal emits exec input=0, exec output=1; data ports
// begin at id 2, alternating input(even)/output(odd) in declaration order.
func nodesFor(d *Descriptor) []node {
	var nodes []node

	switch d.Category {
	case CategoryStart:
		nodes = append(nodes, node{ID: 0, IO: "output", Type: "Execution", Name: "Next"})
	case CategoryNormal:
		nodes = append(nodes, node{ID: 0, IO: "input", Type: "Execution", Name: "Run"})
		nodes = append(nodes, node{ID: 1, IO: "output", Type: "Execution", Name: "Next"})
	case CategoryStatic:
		// no execution ports
	}

	index := uint32(2)
	maxLen := len(d.InputTypes)
	if len(d.OutputTypes) > maxLen {
		maxLen = len(d.OutputTypes)
	}
	for i := 0; i < maxLen; i++ {
		if i < len(d.InputTypes) {
			nodes = append(nodes, node{ID: index, IO: "input", Type: d.InputTypes[i]})
		}
		index++
		if i < len(d.OutputTypes) {
			nodes = append(nodes, node{ID: index, IO: "output", Type: d.OutputTypes[i]})
		}
		index++
	}

	return nodes
}

// JSON renders the catalog descriptor spec.md §6 describes, combining this
// registry's block kinds with the connection-type metadata from types.
func (r *Registry) JSON(types *value.TypeRegistry) any {
	doc := descriptorJSON{
		Rules: rulesJSON{
			StrictInputOutput:   true,
			StrictDifferentBock: true,
			StrictConnections:   true,
		},
	}

	for _, d := range types.All() {
		def := ""
		edit := d.EditDefault != nil
		if d.EditDefault != nil {
			def = *d.EditDefault
		}
		doc.Connections = append(doc.Connections, connectionJSON{
			Type:         d.Name,
			Color:        d.Color,
			ValueEdit:    edit,
			ValueDefault: def,
		})
	}

	for _, d := range r.SortedByID() {
		doc.Blocks = append(doc.Blocks, blockJSON{
			ID:    d.ID,
			Name:  d.Name,
			Nodes: nodesFor(d),
		})
	}

	return doc
}
