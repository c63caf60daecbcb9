package program

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/sjson"
)

// DumpJSON renders the most recent run's register as a JSON document for a
// failed-run diagnostic report, keyed "block.<id>.<portID>". Entries are
// written in a deterministic (block id, then port id) order so the output
// is stable across runs for the same graph. Uses sjson to build the
// document incrementally rather than constructing an intermediate map and
// marshaling it, mirroring this module's preference for the tidwall
// JSON tools over encoding/json's map-based round trip wherever only a
// handful of paths need setting.
func (p *Program) DumpJSON() ([]byte, error) {
	snaps := p.Dump()
	sort.Slice(snaps, func(i, j int) bool {
		if snaps[i].BlockID != snaps[j].BlockID {
			return snaps[i].BlockID < snaps[j].BlockID
		}
		return snaps[i].PortID < snaps[j].PortID
	})

	doc := []byte("{}")
	var err error
	for _, s := range snaps {
		path := fmt.Sprintf("block.%d.%d", s.BlockID, s.PortID)
		doc, err = sjson.SetBytes(doc, path+".type", s.Value.TypeName())
		if err != nil {
			return nil, err
		}
		rendered, err := json.Marshal(s.Value)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.SetRawBytes(doc, path+".value", rendered)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}
