package id

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new time-ordered int64 ID.
func New() int64 {
	return node.Generate().Int64()
}

// Parse reads an ID from its decimal string form, as sent by clients.
// Zero and negative values are rejected.
func Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return v, nil
}

// ParseAll parses every element of ss, failing on the first invalid one.
func ParseAll(ss []string) ([]int64, error) {
	ids := make([]int64, 0, len(ss))
	for _, s := range ss {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, v)
	}
	return ids, nil
}

// Format renders an ID as a decimal string. JSON payloads carry IDs as
// strings so browsers don't lose precision above 2^53.
func Format(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatAll renders every element of vs.
func FormatAll(vs []int64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = Format(v)
	}
	return out
}
