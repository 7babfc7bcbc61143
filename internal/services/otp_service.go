package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"harvesttracker/internal/utils"
)

var (
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidCode  = errors.New("invalid otp code")
)

// Verifier is the slice of the provider adapter the OTP service needs.
type Verifier interface {
	StartVerification(ctx context.Context, phone string) (string, error)
	CheckVerification(ctx context.Context, phone, code string) (bool, error)
}

// OTPService guards the provider adapter with input validation: a malformed
// phone or code is rejected here and the adapter is never called for it.
type OTPService struct {
	Verifier Verifier

	log *zap.SugaredLogger
}

func NewOTPService(verifier Verifier, log *zap.SugaredLogger) *OTPService {
	return &OTPService{Verifier: verifier, log: log}
}

// SendCode triggers an OTP text to the phone and returns the provider's
// verification SID.
func (s *OTPService) SendCode(ctx context.Context, phone string) (string, error) {
	if !utils.ValidPhone(phone) {
		return "", ErrInvalidPhone
	}

	sid, err := s.Verifier.StartVerification(ctx, phone)
	if err != nil {
		s.log.Warnf("[otp][send] provider error: %v", err)
		return "", err
	}

	s.log.Infof("[otp][send] ok: sid=%s", sid)
	return sid, nil
}

// CheckCode submits the user's code. The bool is the provider's approval
// verdict exactly; a denied code is (false, nil), not an error.
func (s *OTPService) CheckCode(ctx context.Context, phone, code string) (bool, error) {
	if !utils.ValidPhone(phone) {
		return false, ErrInvalidPhone
	}
	if !utils.ValidCode(code) {
		return false, ErrInvalidCode
	}

	approved, err := s.Verifier.CheckVerification(ctx, phone, code)
	if err != nil {
		s.log.Warnf("[otp][check] provider error: %v", err)
		return false, err
	}

	s.log.Infof("[otp][check] ok: approved=%v", approved)
	return approved, nil
}
