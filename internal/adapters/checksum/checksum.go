package checksum

import (
	"fmt"

	"github.com/iamNilotpal/csvgz/internal/core/domain"
	"github.com/iamNilotpal/csvgz/internal/core/ports"
)

const (
	// CRC32IEEE uses the IEEE polynomial for CRC32 checksums
	CRC32IEEE domain.ChecksumAlgorithm = "crc32-ieee"

	// CRC64ISO uses the ISO polynomial for CRC64 checksums
	CRC64ISO domain.ChecksumAlgorithm = "crc64-iso"

	// CRC64ECMA uses the ECMA polynomial for CRC64 checksums
	CRC64ECMA domain.ChecksumAlgorithm = "crc64-ecma"

	// SHA1 provides SHA-1 checksums truncated to 64 bits
	SHA1 domain.ChecksumAlgorithm = "sha1"

	// SHA256 provides SHA-256 checksums truncated to 64 bits
	SHA256 domain.ChecksumAlgorithm = "sha256"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Enable:    true,
		Algorithm: CRC32IEEE,
	}
}

func Validate(input *domain.ChecksumOptions) error {
	switch input.Algorithm {
	case CRC32IEEE, CRC64ISO, CRC64ECMA, SHA1, SHA256:
	default:
		return fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm)
	}
	return nil
}

// New returns the ChecksumPort for algorithm.
func New(algorithm domain.ChecksumAlgorithm) (ports.ChecksumPort, error) {
	switch algorithm {
	case CRC32IEEE:
		return newCRC32IEEE(), nil
	case CRC64ISO:
		return newCRC64(CRC64ISO), nil
	case CRC64ECMA:
		return newCRC64(CRC64ECMA), nil
	case SHA1:
		return newSHA1(), nil
	case SHA256:
		return newSHA256(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
	}
}
