package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/config"
	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/middleware"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

type RegisterInput struct {
	Name     string
	Mobile   string
	Email    string
	Gotram   string
	Password string
}

type Service interface {
	RegisterDevotee(ctx context.Context, in RegisterInput, ip string) (string, *Devotee, error)
	LoginDevotee(ctx context.Context, mobile, password string, ip string) (string, *Devotee, error)
	LoginStaff(ctx context.Context, username, password string, ip string) (string, *StaffUser, error)
	GetDevoteeByID(ctx context.Context, id string) (*Devotee, error)
	ListDevotees(ctx context.Context) ([]Devotee, error)
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
	secret   string
	ttl      time.Duration
}

func NewService(repo Repository, cfg *config.Config, auditSvc auditlog.Service) Service {
	return &service{
		repo:     repo,
		auditSvc: auditSvc,
		secret:   cfg.JWTSecret,
		ttl:      time.Duration(cfg.JWTTTLHours) * time.Hour,
	}
}

func (s *service) signToken(sub, name, mobile, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":    sub,
		"name":   name,
		"mobile": mobile,
		"role":   role,
		"exp":    time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *service) RegisterDevotee(ctx context.Context, in RegisterInput, ip string) (string, *Devotee, error) {
	if in.Name == "" || in.Mobile == "" || in.Password == "" {
		return "", nil, utils.InvalidRequestf("name, mobile and password are required")
	}

	if _, err := s.repo.GetDevoteeByMobile(ctx, in.Mobile); err == nil {
		_ = s.auditSvc.LogAction(ctx, nil, "DEVOTEE_REGISTER_FAILED", map[string]interface{}{
			"mobile": in.Mobile,
			"reason": "mobile already registered",
		}, ip, "failure")
		return "", nil, utils.Conflictf("mobile already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	devotee := &Devotee{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Mobile:       in.Mobile,
		Email:        in.Email,
		Gotram:       in.Gotram,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastLoginAt:  now,
	}

	if err := s.repo.CreateDevotee(ctx, devotee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, utils.Conflictf("mobile already registered")
		}
		return "", nil, err
	}

	token, err := s.signToken(devotee.ID, devotee.Name, devotee.Mobile, middleware.RoleDevotee)
	if err != nil {
		return "", nil, err
	}

	_ = s.auditSvc.LogAction(ctx, &devotee.ID, "DEVOTEE_REGISTERED", map[string]interface{}{
		"mobile": devotee.Mobile,
	}, ip, "success")

	return token, devotee, nil
}

func (s *service) LoginDevotee(ctx context.Context, mobile, password string, ip string) (string, *Devotee, error) {
	devotee, err := s.repo.GetDevoteeByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, utils.Unauthenticatedf("invalid mobile or password")
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(devotee.PasswordHash), []byte(password)) != nil {
		_ = s.auditSvc.LogAction(ctx, &devotee.ID, "DEVOTEE_LOGIN_FAILED", map[string]interface{}{
			"mobile": mobile,
		}, ip, "failure")
		return "", nil, utils.Unauthenticatedf("invalid mobile or password")
	}

	_ = s.repo.TouchLastLogin(ctx, devotee.ID)

	token, err := s.signToken(devotee.ID, devotee.Name, devotee.Mobile, middleware.RoleDevotee)
	if err != nil {
		return "", nil, err
	}

	_ = s.auditSvc.LogAction(ctx, &devotee.ID, "DEVOTEE_LOGIN", nil, ip, "success")
	return token, devotee, nil
}

func (s *service) LoginStaff(ctx context.Context, username, password string, ip string) (string, *StaffUser, error) {
	user, err := s.repo.GetStaffByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, utils.Unauthenticatedf("invalid credentials")
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		_ = s.auditSvc.LogAction(ctx, &user.ID, "ADMIN_LOGIN_FAILED", map[string]interface{}{
			"username": username,
		}, ip, "failure")
		return "", nil, utils.Unauthenticatedf("invalid credentials")
	}

	if !user.ActiveFlag {
		return "", nil, utils.Forbiddenf("account disabled")
	}

	token, err := s.signToken(user.ID, user.Name, user.Mobile, user.Role)
	if err != nil {
		return "", nil, err
	}

	_ = s.auditSvc.LogAction(ctx, &user.ID, "ADMIN_LOGIN", map[string]interface{}{
		"username": username,
		"role":     user.Role,
	}, ip, "success")
	return token, user, nil
}

func (s *service) GetDevoteeByID(ctx context.Context, id string) (*Devotee, error) {
	devotee, err := s.repo.GetDevoteeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("devotee not found")
		}
		return nil, err
	}
	return devotee, nil
}

func (s *service) ListDevotees(ctx context.Context) ([]Devotee, error) {
	return s.repo.ListDevotees(ctx, 500)
}
