package flash

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	idCookieName = "flash_id"
	keyPrefix    = "flash:"
)

// RedisStore keeps messages server side in a Redis list and gives the
// client only a random id cookie.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Add(c *gin.Context, m Message) error {
	id := s.clientID(c)
	if id == "" {
		id = uuid.NewString()
		c.Set(idCookieName, id)
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}

	ctx := c.Request.Context()
	key := keyPrefix + id
	if _, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, payload)
		p.Expire(ctx, key, s.ttl)
		return nil
	}); err != nil {
		return err
	}

	setCookie(c, idCookieName, id, int(s.ttl.Seconds()))
	return nil
}

func (s *RedisStore) Pop(c *gin.Context) ([]Message, error) {
	id := s.clientID(c)
	if id == "" {
		return nil, nil
	}

	ctx := c.Request.Context()
	key := keyPrefix + id

	var items *redis.StringSliceCmd
	if _, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		items = p.LRange(ctx, key, 0, -1)
		p.Del(ctx, key)
		return nil
	}); err != nil {
		return nil, err
	}

	var out []Message
	for _, raw := range items.Val() {
		var m Message
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// clientID returns the id set earlier in this request or sent by the
// client; anything that is not a uuid is ignored.
func (s *RedisStore) clientID(c *gin.Context) string {
	if id := c.GetString(idCookieName); id != "" {
		return id
	}
	raw, err := c.Cookie(idCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(raw); err != nil {
		return ""
	}
	return raw
}

var _ Store = (*RedisStore)(nil)
