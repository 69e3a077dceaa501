package job

import (
	"fmt"
	"hash/fnv"
)

// ShardLabel hashes a content ID to a stable small cardinality label (0-31),
// suitable for metric labels without exploding series count.
func ShardLabel(contentID string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(contentID))
	return fmt.Sprintf("%d", h.Sum32()%32)
}
