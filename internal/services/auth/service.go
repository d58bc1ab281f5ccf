package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"sebengine/internal/config"
	"sebengine/internal/services/settings"
	"sebengine/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredential = errors.New("invalid credential")

// Session is what a successful login hands back to the admin.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Draft     settings.Draft
}

type Service interface {
	// Login checks the shared admin passcode. On success it stages a new
	// settings draft and returns a token bound to it. Failed attempts leave
	// the committed settings untouched.
	Login(passcode string) (*Session, error)
}

type service struct {
	passcodeHash []byte
	secret       string
	ttl          time.Duration
	settings     *settings.Service
}

// NewService builds the admin gate. The credential is ADMIN_PASSCODE_HASH when
// set, otherwise a hash of ADMIN_PASSCODE computed at startup.
func NewService(cfg *config.AppConfig, settingsSvc *settings.Service) (Service, error) {
	hash := []byte(cfg.AdminPasscodeHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPasscode), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin passcode: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("ADMIN_PASSCODE_HASH is not a bcrypt hash: %w", err)
	}

	return &service{
		passcodeHash: hash,
		secret:       cfg.JWTSecret,
		ttl:          cfg.AdminSessionTTL,
		settings:     settingsSvc,
	}, nil
}

func (s *service) Login(passcode string) (*Session, error) {
	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		log.Println("Admin login failed: incorrect passcode")
		return nil, ErrInvalidCredential
	}

	draft := s.settings.Stage()
	token, expiresAt, err := utils.GenerateAdminToken(s.secret, draft.ID, s.ttl)
	if err != nil {
		s.settings.Discard(draft.ID)
		log.Println("Error generating admin token:", err)
		return nil, errors.New("error generating token")
	}

	log.Printf("Admin login succeeded, draft %s staged", draft.ID)
	return &Session{Token: token, ExpiresAt: expiresAt, Draft: draft}, nil
}
