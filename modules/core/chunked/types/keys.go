package types

import "fmt"

const (
	// SubModuleName defines the chunked transport name.
	SubModuleName = "chunked"

	// MaxChunkSize is the maximum number of bytes accepted per chunk. Objects
	// larger than this bound must be split by the uploader and reassembled on
	// consumption.
	MaxChunkSize = 900
)

// ChunkKey returns the store key under which a single chunk is stored. Keys
// are scoped by uploader so concurrent uploads from different submitters
// never collide.
func ChunkKey(uploader string, objectID uint64, index uint32) []byte {
	return []byte(fmt.Sprintf("chunks/%s/%d/%d", uploader, objectID, index))
}
