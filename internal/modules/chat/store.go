// README: Conversation history store backed by Redis lists.
package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// anonymousKey groups turns that arrive without a trip ID.
const anonymousKey = "anonymous"

// Store appends conversation turns to a Redis list per trip.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func historyKey(tripID string) string {
	if tripID == "" {
		tripID = anonymousKey
	}
	return "chat:" + tripID
}

// Append pushes turns onto the trip's conversation list in order.
func (s *Store) Append(ctx context.Context, tripID string, turns ...Turn) error {
	if len(turns) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(turns))
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("marshal turn: %w", err)
		}
		values = append(values, data)
	}
	return s.rdb.RPush(ctx, historyKey(tripID), values...).Err()
}

// Load returns every turn recorded for the trip, oldest first.
func (s *Store) Load(ctx context.Context, tripID string) ([]Turn, error) {
	raw, err := s.rdb.LRange(ctx, historyKey(tripID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var turn Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("unmarshal turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}
