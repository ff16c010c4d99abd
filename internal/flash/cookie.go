package flash

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const cookieName = "flash"

type flashClaims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// CookieStore keeps pending messages in an HS256-signed cookie, so a
// tampered or expired cookie is ignored.
type CookieStore struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCookieStore(secret string, ttl time.Duration) *CookieStore {
	return &CookieStore{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *CookieStore) Add(c *gin.Context, m Message) error {
	pending := s.read(c)
	pending = append(pending, m)

	now := s.now()
	claims := flashClaims{
		Messages: pending,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}

	// Keep the pending list visible to a later Add in this same request.
	c.Set(cookieName, token)
	setCookie(c, cookieName, token, int(s.ttl.Seconds()))
	return nil
}

func (s *CookieStore) Pop(c *gin.Context) ([]Message, error) {
	msgs := s.read(c)
	if _, err := c.Cookie(cookieName); err == nil {
		setCookie(c, cookieName, "", -1)
	}
	return msgs, nil
}

func (s *CookieStore) read(c *gin.Context) []Message {
	raw := c.GetString(cookieName)
	if raw == "" {
		var err error
		raw, err = c.Cookie(cookieName)
		if err != nil || raw == "" {
			return nil
		}
	}

	claims := &flashClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil
	}
	return claims.Messages
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", false, true)
}

var _ Store = (*CookieStore)(nil)
