package timer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore guarda o estado do timer como documento JSON, sem TTL: o estado
// só some com a limpeza explícita na finalização do agendamento.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

var _ Store = (*RedisStore)(nil)

func timerKey(appointmentID uint) string {
	return fmt.Sprintf("timer:appointment:%d", appointmentID)
}

func (s *RedisStore) Load(ctx context.Context, appointmentID uint) (*State, error) {
	raw, err := s.client.Get(ctx, timerKey(appointmentID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("timer: load state: %w", err)
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("timer: decode state: %w", err)
	}

	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("timer: encode state: %w", err)
	}

	if err := s.client.Set(ctx, timerKey(state.AppointmentID), raw, 0).Err(); err != nil {
		return fmt.Errorf("timer: save state: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, appointmentID uint) error {
	if err := s.client.Del(ctx, timerKey(appointmentID)).Err(); err != nil {
		return fmt.Errorf("timer: delete state: %w", err)
	}
	return nil
}
