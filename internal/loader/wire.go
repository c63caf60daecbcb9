package loader

import "encoding/json"

// wireBlock mirrors one entry of spec.md §6's "top-level array of block
// objects" (the canonical encoding).
type wireBlock struct {
	BlockID     uint32          `json:"blockId"`
	BlockTypeID uint32          `json:"blockTypeId"`
	Nodes       []wireNode      `json:"nodes"`
	Position    json.RawMessage `json:"position"` // presentation only, ignored
}

// wireNode mirrors one port entry (spec.md §6 "Each port").
type wireNode struct {
	ID                   uint32          `json:"id"`
	NodeType             string          `json:"nodeType"`
	ConnectionType       string          `json:"connectionType"`
	Value                json.RawMessage `json:"value"`
	ConnectedBlockID     *uint32         `json:"connectedBlockId"`
	ConnectedBlockTypeID *uint32         `json:"connectedBlockTypeId"`
	ConnectedNodeID      *uint32         `json:"connectedNodeId"`
}

// hasEdge reports whether all three connected* fields are populated - spec.md
// §6: "An edge is present iff all three connected* fields are non-null."
func (n wireNode) hasEdge() bool {
	return n.ConnectedBlockID != nil && n.ConnectedBlockTypeID != nil && n.ConnectedNodeID != nil
}

// wireDocument is the historical alternate encoding (spec.md §6): blocks
// carry no connected* fields, and a top-level "connections" array lists
// edges explicitly.
type wireDocument struct {
	Blocks      []wireBlock      `json:"blocks"`
	Connections []wireConnection `json:"connections"`
}

// wireConnection is one record of the alternate "connections" array.
type wireConnection struct {
	StartBlock uint32 `json:"startBlock"`
	EndBlock   uint32 `json:"endBlock"`
	StartNode  uint32 `json:"startNode"`
	EndNode    uint32 `json:"endNode"`
	Type       string `json:"type"`
}
