package compression

import (
	"fmt"

	"github.com/iamNilotpal/csvgz/internal/core/domain"
)

// Identity passes payloads through untouched, for plain .csv inputs.
type Identity struct {
	maxDecodedSize uint64
}

func NewIdentity(maxDecodedSize uint64) *Identity {
	return &Identity{maxDecodedSize: maxDecodedSize}
}

func (i *Identity) Decompress(data []byte) ([]byte, error) {
	if exceeds(len(data), i.maxDecodedSize) {
		return nil, fmt.Errorf("%w of %d bytes", ErrSizeLimit, i.maxDecodedSize)
	}
	return data, nil
}

func (i *Identity) Algorithm() domain.CompressionAlgorithm {
	return domain.CompressionNone
}

func (i *Identity) Close() error {
	return nil
}
