package authflow

import (
	"context"
	"errors"
	"sync"

	"harvesttracker/internal/models"
	"harvesttracker/internal/utils"
)

// Step is where a login attempt currently stands.
type Step string

const (
	StepPhoneEntry     Step = "phone"
	StepOTPPending     Step = "otp"
	StepProfilePending Step = "profile"
	StepAuthenticated  Step = "authenticated"
)

var (
	ErrWrongStep         = errors.New("action not allowed in current step")
	ErrPhoneIncomplete   = errors.New("phone number must be 10 digits")
	ErrCodeIncomplete    = errors.New("otp code must be 6 digits")
	ErrBadState          = errors.New("unknown state")
	ErrBadDistrict       = errors.New("district does not belong to the selected state")
	ErrProfileIncomplete = errors.New("name, state and district are required")
)

// Gateway is the slice of the OTP gateway the session needs.
type Gateway interface {
	SendOTP(ctx context.Context, phone string) (string, error)
	VerifyOTP(ctx context.Context, phone, code string) (bool, error)
}

// Session drives one login attempt: phone entry, code entry, profile entry,
// authenticated. All values are per-session and in-memory only; a process
// restart starts over at phone entry. The mutex serializes submissions so two
// racing submits cannot interleave their transitions.
type Session struct {
	// AdvanceOnSendError keeps the legacy behavior of moving on to code entry
	// even when the send call fails. Off, a send failure blocks the
	// transition and is returned to the caller.
	AdvanceOnSendError bool

	mu      sync.Mutex
	step    Step
	phone   string
	code    string
	profile models.Profile
	sid     string

	gw Gateway
}

func NewSession(gw Gateway) *Session {
	return &Session{step: StepPhoneEntry, gw: gw}
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) Phone() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phone
}

func (s *Session) Code() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}

func (s *Session) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// VerificationSID is the provider handle from the last successful send, empty
// before one.
func (s *Session) VerificationSID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sid
}

// InputPhone replaces the phone draft with raw stripped to digits and
// truncated to 10, mirroring what the input field does per keystroke. Returns
// the resulting draft.
func (s *Session) InputPhone(raw string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phone = utils.Digits(raw, utils.PhoneLength)
	return s.phone
}

// InputCode replaces the code draft, digits-only, max 6.
func (s *Session) InputCode(raw string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = utils.Digits(raw, utils.CodeLength)
	return s.code
}

// SubmitPhone sends the OTP and moves to code entry. A short phone is
// rejected without a network call. A send failure blocks the transition
// unless AdvanceOnSendError is set, in which case the session advances anyway
// and the error is still returned for display.
func (s *Session) SubmitPhone(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepPhoneEntry {
		return ErrWrongStep
	}
	if len(s.phone) != utils.PhoneLength {
		return ErrPhoneIncomplete
	}

	sid, err := s.gw.SendOTP(ctx, s.phone)
	if err != nil {
		if !s.AdvanceOnSendError {
			return err
		}
		s.step = StepOTPPending
		return err
	}

	s.sid = sid
	s.step = StepOTPPending
	return nil
}

// SubmitCode verifies the entered code. Approval moves to profile entry and
// returns true. A denial or gateway error leaves the session in code entry
// with the draft untouched, so the user can correct and resubmit.
func (s *Session) SubmitCode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepOTPPending {
		return false, ErrWrongStep
	}
	if len(s.code) != utils.CodeLength {
		return false, ErrCodeIncomplete
	}

	approved, err := s.gw.VerifyOTP(ctx, s.phone, s.code)
	if err != nil {
		return false, err
	}
	if !approved {
		return false, nil
	}

	s.step = StepProfilePending
	return true, nil
}

func (s *Session) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Name = name
}

// SetState selects the state and clears the district, since the district
// options are derived from the state.
func (s *Session) SetState(state models.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := models.ParseState(state.String()); !ok {
		return ErrBadState
	}
	s.profile.State = state
	s.profile.District = ""
	return nil
}

// SetDistrict picks a district; it must belong to the selected state.
func (s *Session) SetDistrict(district string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.profile.State.HasDistrict(district) {
		return ErrBadDistrict
	}
	s.profile.District = district
	return nil
}

// SubmitProfile finishes the flow. Purely local: no network call is involved
// past this point.
func (s *Session) SubmitProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepProfilePending {
		return ErrWrongStep
	}
	if !s.profile.Complete() {
		return ErrProfileIncomplete
	}

	s.step = StepAuthenticated
	return nil
}

// Reset abandons the attempt and returns to phone entry with every draft
// cleared.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepPhoneEntry
	s.phone = ""
	s.code = ""
	s.sid = ""
	s.profile = models.Profile{}
}
