package plan

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// fingerprint hashes the plan contents.
//
// Determinism rules:
//   - Modules keep their resolved order; order is part of the plan.
//   - Dependency edges are written sorted by module name.
//   - All fields are length-prefixed to avoid ambiguity.
func fingerprint(p *BuildPlan) string {
	h := sha256.New()

	writeField(h, []byte(p.target))
	writeField(h, []byte(p.targetType))
	writeField(h, []byte(p.output))
	writeField(h, []byte(p.buildSettings.String()))
	writeField(h, []byte(p.includeOrder.String()))

	writeCount(h, len(p.modules))
	for _, m := range p.modules {
		writeField(h, []byte(m))
	}

	keys := sortedKeys(p.edges)
	writeCount(h, len(keys))
	for _, k := range keys {
		writeField(h, []byte(k))
		deps := p.edges[k]
		writeCount(h, len(deps))
		for _, d := range deps {
			writeField(h, []byte(d))
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h hash.Hash, data []byte) {
	writeCount(h, len(data))
	h.Write(data)
}

func writeCount(h hash.Hash, n int) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
}
