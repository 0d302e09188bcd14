package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/internal/users"
	"github.com/lizbakes/cakeapp-backend/pkg/config"
	"github.com/lizbakes/cakeapp-backend/pkg/db"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
	"github.com/lizbakes/cakeapp-backend/pkg/logger"
	"github.com/lizbakes/cakeapp-backend/pkg/mailer"
	"github.com/lizbakes/cakeapp-backend/pkg/metrics"
	"github.com/lizbakes/cakeapp-backend/pkg/security"
)

const (
	// registeredMessage acknowledges a registration whose verification
	// email reached the provider.
	registeredMessage = "Registration successful. Check your email for the verification code."
	// registeredEmailFailedMessage still reports success: the account
	// exists, only the notification failed.
	registeredEmailFailedMessage = "Registration successful, but the verification email failed to send. Use resend-verification to request a new code."
)

// RegisterService handles account creation and the verification email.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             *db.Client
	Mailer         mailer.Sender
	Logger         *logger.Logger
	EmailMetrics   *metrics.EmailMetrics
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db           *db.Client
	mail         mailer.Sender
	logg         *logger.Logger
	emailMetrics *metrics.EmailMetrics
	passwordCfg  config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:           params.DB,
		mail:         params.Mailer,
		logg:         params.Logger,
		emailMetrics: params.EmailMetrics,
		passwordCfg:  params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	email := users.NormalizeEmail(req.Email)
	if strings.TrimSpace(req.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	code, err := security.GenerateVerificationCode()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate verification code")
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		// Pre-check is an optimization; the unique index is the arbiter
		// when two registrations race.
		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		if _, err := userRepo.Create(ctx, users.CreateUserDTO{
			Name:             strings.TrimSpace(req.Name),
			Email:            email,
			PasswordHash:     passwordHash,
			Phone:            strings.TrimSpace(req.Phone),
			Address:          req.Address,
			VerificationCode: &code,
		}); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !s.sendVerificationEmail(ctx, email, code) {
		return &MessageResponse{Message: registeredEmailFailedMessage}, nil
	}
	return &MessageResponse{Message: registeredMessage}, nil
}

// sendVerificationEmail is best-effort: a provider outage must never undo
// the registration, so failures are logged and reported via the message.
func (s *registerService) sendVerificationEmail(ctx context.Context, email string, code int) bool {
	if s.mail == nil {
		return false
	}
	if err := s.mail.Send(ctx, mailer.VerificationMessage(email, code)); err != nil {
		s.emailMetrics.IncFailed("verification")
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "verification email failed")
		}
		return false
	}
	s.emailMetrics.IncSent("verification")
	return true
}
