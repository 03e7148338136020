// Package report renders load statistics as protobuf JSON.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/iamNilotpal/csvgz/internal/core/domain"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Build converts document metadata into a google.protobuf.Struct.
// The text itself is never included.
func Build(doc *domain.Document) (*structpb.Struct, error) {
	fields := map[string]any{
		"source":            doc.Source,
		"algorithm":         string(doc.Algorithm),
		"encoding":          doc.Encoding,
		"compressed_size":   doc.CompressedSize,
		"decompressed_size": doc.DecompressedSize,
		"replaced":          doc.Replaced,
		"elapsed":           doc.Elapsed.String(),
	}

	if doc.ChecksumAlgorithm != "" {
		// Hex string: a uint64 does not survive a JSON number.
		fields["checksum"] = strconv.FormatUint(doc.Checksum, 16)
		fields["checksum_algorithm"] = string(doc.ChecksumAlgorithm)
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}
	return s, nil
}

// Write emits the report of doc to w as one line of JSON.
func Write(w io.Writer, doc *domain.Document) error {
	s, err := Build(doc)
	if err != nil {
		return err
	}

	data, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
