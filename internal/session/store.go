package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"taskdesk/internal/models"

	"github.com/go-redis/redis/v8"
)

// MaxAge adalah umur maksimal session sejak dibuat.
const MaxAge = 24 * time.Hour

const keyPrefix = "session:"

// Store menyimpan session login di Redis. Session hanya dibuat oleh
// login yang berhasil dan dihapus oleh logout atau kadaluarsa.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// newSessionID menghasilkan session ID acak 128 bit dalam bentuk hex.
func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Create membuat session baru untuk user dan mengembalikan session ID.
func (s *Store) Create(ctx context.Context, user models.SessionUser) (string, error) {
	sid, err := newSessionID()
	if err != nil {
		return "", err
	}
	now := time.Now()
	sess := models.Session{
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(MaxAge),
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	if err := s.client.SetEX(ctx, keyPrefix+sid, payload, MaxAge).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

// Get mengembalikan session untuk sid, atau nil jika tidak ada atau
// sudah kadaluarsa. Expiry dicek di sini juga, tidak hanya lewat TTL Redis.
func (s *Store) Get(ctx context.Context, sid string) (*models.Session, error) {
	val, err := s.client.Get(ctx, keyPrefix+sid).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.client.Del(ctx, keyPrefix+sid).Err()
		return nil, nil
	}
	return &sess, nil
}

// Destroy menghapus session. Idempotent: menghapus session yang sudah
// tidak ada bukan error, tapi kegagalan Redis tetap dikembalikan.
func (s *Store) Destroy(ctx context.Context, sid string) error {
	return s.client.Del(ctx, keyPrefix+sid).Err()
}
