package checksum

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"hash/crc32"
	"hash/crc64"

	"github.com/iamNilotpal/csvgz/internal/core/domain"
)

// hashChecksum adapts any hash.Hash constructor to ChecksumPort.
// Sums wider than 8 bytes keep their leading 8 bytes, big-endian.
type hashChecksum struct {
	name    string
	newHash func() hash.Hash
}

func newCRC32IEEE() *hashChecksum {
	return &hashChecksum{
		name:    string(CRC32IEEE),
		newHash: func() hash.Hash { return crc32.NewIEEE() },
	}
}

func newCRC64(algorithm domain.ChecksumAlgorithm) *hashChecksum {
	poly := uint64(crc64.ISO)
	if algorithm == CRC64ECMA {
		poly = crc64.ECMA
	}

	table := crc64.MakeTable(poly)
	return &hashChecksum{
		name:    string(algorithm),
		newHash: func() hash.Hash { return crc64.New(table) },
	}
}

func newSHA1() *hashChecksum {
	return &hashChecksum{name: string(SHA1), newHash: sha1.New}
}

func newSHA256() *hashChecksum {
	return &hashChecksum{name: string(SHA256), newHash: sha256.New}
}

func (h *hashChecksum) Calculate(data []byte) uint64 {
	hh := h.newHash()
	hh.Write(data)
	sum := hh.Sum(nil)

	switch len(sum) {
	case crc32.Size:
		return uint64(binary.BigEndian.Uint32(sum))
	default:
		return binary.BigEndian.Uint64(sum[:8])
	}
}

func (h *hashChecksum) Verify(data []byte, expected uint64) bool {
	return h.Calculate(data) == expected
}

func (h *hashChecksum) Name() string {
	return h.name
}
