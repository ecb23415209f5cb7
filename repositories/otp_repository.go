package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrOTPUnavailable = errors.New("OTP store unavailable")

// OTPRepository keeps short-lived password-reset codes in redis. With
// a nil client every operation reports ErrOTPUnavailable.
type OTPRepository struct {
	client *redis.Client
}

func NewOTPRepository(client *redis.Client) *OTPRepository {
	return &OTPRepository{client: client}
}

func otpKey(email string) string {
	return "otp:" + email
}

func (r *OTPRepository) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	if r.client == nil {
		return ErrOTPUnavailable
	}
	return r.client.Set(ctx, otpKey(email), code, ttl).Err()
}

// Get returns "" when no code is stored for the email.
func (r *OTPRepository) Get(ctx context.Context, email string) (string, error) {
	if r.client == nil {
		return "", ErrOTPUnavailable
	}
	code, err := r.client.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return code, err
}

func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	if r.client == nil {
		return ErrOTPUnavailable
	}
	return r.client.Del(ctx, otpKey(email)).Err()
}
