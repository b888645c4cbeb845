package invoice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// ID strategies accepted by NewIDGenerator.
const (
	StrategySequence  = "sequence"
	StrategySnowflake = "snowflake"
	StrategyUUID      = "uuid"
)

// ErrUnknownStrategy is returned for an unrecognised id strategy name.
var ErrUnknownStrategy = errors.New("unknown id strategy")

// IDGenerator hands out record identifiers. Implementations never return
// an empty string.
type IDGenerator interface {
	Next() string
}

// NewIDGenerator builds the generator named by strategy. node is only used
// by the snowflake strategy.
func NewIDGenerator(strategy string, node int64) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategySequence:
		return NewSequence(0), nil
	case StrategySnowflake:
		sf, err := NewSnowflake(node)
		if err != nil {
			return nil, err
		}
		return sf, nil
	case StrategyUUID:
		return UUID{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// Sequence is a monotonically increasing counter.
type Sequence struct {
	mu   sync.Mutex
	last uint64
}

// NewSequence returns a counter whose first id is start+1.
func NewSequence(start uint64) *Sequence {
	return &Sequence{last: start}
}

func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return strconv.FormatUint(s.last, 10)
}

// Snowflake wraps a snowflake node; ids are time-ordered and unique per node.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a generator for the given node number (0-1023).
func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", node, err)
	}
	return &Snowflake{node: n}, nil
}

func (s *Snowflake) Next() string {
	return s.node.Generate().String()
}

// UUID issues random v4 identifiers.
type UUID struct{}

func (UUID) Next() string {
	return uuid.NewString()
}
