package types

import "github.com/cosmos/ibc-lite/modules/core/exported"

const (
	EventTypeStoreChunk    = "store_chunk"
	EventTypeConsumeUpload = "consume_upload"
	EventTypeAbortUpload   = "abort_upload"

	AttributeKeyUploader    = "uploader"
	AttributeKeyObjectID    = "object_id"
	AttributeKeyChunkIndex  = "chunk_index"
	AttributeKeyTotalChunks = "total_chunks"
)

// AttributeValueCategory is the module category emitted with every event.
var AttributeValueCategory = exported.ModuleName + "_" + SubModuleName
