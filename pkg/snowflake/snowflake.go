package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init creates the process-wide ID node. Node IDs must be in [0, 1023].
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns a new unique, roughly time-ordered ID.
// Init must have been called first.
func NextID() int64 {
	mu.RLock()
	defer mu.RUnlock()
	return node.Generate().Int64()
}
