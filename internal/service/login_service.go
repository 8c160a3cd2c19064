package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/classroom-availability-api/internal/dto"
	"github.com/noah-isme/classroom-availability-api/internal/models"
	"github.com/noah-isme/classroom-availability-api/pkg/crypto"
	appErrors "github.com/noah-isme/classroom-availability-api/pkg/errors"
)

type userRepository interface {
	FindByUsernameAndRole(ctx context.Context, username, role string) ([]models.User, error)
}

// LoginConfig defines how stored passwords are verified.
type LoginConfig struct {
	// AllowPlaintext accepts rows whose password column is not a bcrypt hash.
	AllowPlaintext bool
	QueryTimeout   time.Duration
}

// LoginService checks a username, password and role against the Users table.
type LoginService struct {
	repo      userRepository
	throttle  *LoginThrottle
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	config    LoginConfig
}

// NewLoginService constructs a LoginService instance. throttle may be nil.
func NewLoginService(repo userRepository, throttle *LoginThrottle, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, config LoginConfig) *LoginService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &LoginService{repo: repo, throttle: throttle, validator: validate, logger: logger, metrics: metrics, config: config}
}

// Check reports whether an account matches all three fields exactly. A
// mismatch is a normal result, not an error.
func (s *LoginService) Check(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		s.metrics.RecordLogin(OutcomeFailure)
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "username, password and role are required")
	}

	if !s.throttle.Allow(ctx, req.Username, req.IP) {
		s.logger.Warn("login throttled", zap.String("username", req.Username), zap.String("ip", req.IP))
		s.metrics.RecordLogin(OutcomeThrottled)
		return nil, appErrors.Clone(appErrors.ErrTooManyRequests, "too many login attempts, try again later")
	}

	queryCtx, cancel := withQueryTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	start := time.Now()
	users, err := s.repo.FindByUsernameAndRole(queryCtx, req.Username, req.Role)
	s.metrics.ObserveDBQuery("find_user", time.Since(start))
	if err != nil {
		s.logger.Error("error executing login query", zap.String("username", req.Username), zap.Error(err))
		s.metrics.RecordLogin(OutcomeError)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check credentials")
	}

	result := &dto.LoginResult{Username: req.Username, Role: req.Role}
	for _, user := range users {
		// Collations may compare case-insensitively; the match must be exact.
		if user.Username != req.Username || string(user.Role) != req.Role {
			continue
		}
		if s.passwordMatches(user, req.Password) {
			result.Authenticated = true
			break
		}
	}

	if result.Authenticated {
		s.throttle.Reset(ctx, req.Username, req.IP)
		s.metrics.RecordLogin(OutcomeSuccess)
		s.logger.Info("login succeeded", zap.String("username", req.Username), zap.String("role", req.Role))
	} else {
		s.metrics.RecordLogin(OutcomeFailure)
		s.logger.Info("login failed", zap.String("username", req.Username), zap.String("role", req.Role), zap.String("ip", req.IP))
	}

	return result, nil
}

func (s *LoginService) passwordMatches(user models.User, password string) bool {
	if crypto.IsBcryptHash(user.Password) {
		return crypto.CheckPassword(user.Password, password) == nil
	}
	if !s.config.AllowPlaintext {
		s.logger.Warn("stored password is not hashed; rejecting", zap.String("username", user.Username))
		return false
	}
	if crypto.EqualPlaintext(user.Password, password) {
		s.logger.Warn("plaintext password match; rehash recommended", zap.String("username", user.Username))
		return true
	}
	return false
}
