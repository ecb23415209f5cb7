package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"simple-ecommerce/models"
	"simple-ecommerce/repositories"
	"simple-ecommerce/utils"
)

const otpTTL = 5 * time.Minute

type AuthService struct {
	users     *repositories.UserRepository
	otps      *repositories.OTPRepository
	mailer    Mailer
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users *repositories.UserRepository, otps *repositories.OTPRepository, mailer Mailer, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		otps:      otps,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, invalid("Email already in use")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ForgotPassword issues a 6-digit OTP, stores it with a short TTL,
// and mails it to the account's address.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return notFound("User")
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	if err := s.otps.Set(ctx, email, code, otpTTL); err != nil {
		return err
	}

	if s.mailer == nil {
		log.Printf("Mailer not configured, OTP for %s: %s", email, code)
		return nil
	}
	return s.mailer.SendOTP(email, code)
}

func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	code, err := s.otps.Get(ctx, req.Email)
	if err != nil {
		return err
	}
	if code == "" || code != req.OTP {
		return invalid("Invalid or expired OTP")
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return notFound("User")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	return s.otps.Delete(ctx, req.Email)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
