package auth

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lizbakes/cakeapp-backend/internal/users"
	"github.com/lizbakes/cakeapp-backend/pkg/db/models"
	pkgerrors "github.com/lizbakes/cakeapp-backend/pkg/errors"
	"github.com/lizbakes/cakeapp-backend/pkg/logger"
	"github.com/lizbakes/cakeapp-backend/pkg/mailer"
	"github.com/lizbakes/cakeapp-backend/pkg/metrics"
	"github.com/lizbakes/cakeapp-backend/pkg/security"
)

const (
	verifiedMessage = "Email verified. You can now log in."
	resentMessage   = "A new verification code has been sent to your email."
)

// VerificationService covers the verify and resend halves of the email
// verification cycle.
type VerificationService interface {
	Verify(ctx context.Context, req VerifyRequest) (*MessageResponse, error)
	Resend(ctx context.Context, req ResendRequest) (*MessageResponse, error)
}

type verificationRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	MarkVerified(ctx context.Context, id uint) error
	SetVerificationCode(ctx context.Context, id uint, code int) error
}

// VerificationServiceParams bundles the verification flow dependencies.
type VerificationServiceParams struct {
	Repo         verificationRepository
	Mailer       mailer.Sender
	Logger       *logger.Logger
	EmailMetrics *metrics.EmailMetrics
}

type verificationService struct {
	repo         verificationRepository
	mail         mailer.Sender
	logg         *logger.Logger
	emailMetrics *metrics.EmailMetrics
}

// NewVerificationService builds the verify/resend service.
func NewVerificationService(params VerificationServiceParams) (VerificationService, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	return &verificationService{
		repo:         params.Repo,
		mail:         params.Mailer,
		logg:         params.Logger,
		emailMetrics: params.EmailMetrics,
	}, nil
}

func (s *verificationService) Verify(ctx context.Context, req VerifyRequest) (*MessageResponse, error) {
	email := users.NormalizeEmail(req.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if req.Code == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "code is required")
	}

	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}

	// Codes never expire; the stored value is the only arbiter.
	if user.VerificationCode == nil || *user.VerificationCode != req.Code {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidCode, "invalid verification code")
	}

	if err := s.repo.MarkVerified(ctx, user.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark user verified")
	}

	s.sendBestEffort(ctx, mailer.ConfirmationMessage(user.Email), "confirmation")
	return &MessageResponse{Message: verifiedMessage}, nil
}

func (s *verificationService) Resend(ctx context.Context, req ResendRequest) (*MessageResponse, error) {
	email := users.NormalizeEmail(req.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}

	code, err := security.GenerateVerificationCode()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate verification code")
	}

	// Resend always overwrites the previous code, even for users who are
	// already verified.
	if err := s.repo.SetVerificationCode(ctx, user.ID, code); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store verification code")
	}

	s.sendBestEffort(ctx, mailer.VerificationMessage(user.Email, code), "verification")
	return &MessageResponse{Message: resentMessage}, nil
}

func (s *verificationService) findUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}
	return user, nil
}

func (s *verificationService) sendBestEffort(ctx context.Context, msg mailer.Message, kind string) {
	if s.mail == nil {
		return
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		s.emailMetrics.IncFailed(kind)
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), kind+" email failed")
		}
		return
	}
	s.emailMetrics.IncSent(kind)
}
