package admin

import (
	"crypto/subtle"
	"errors"

	"github.com/prologistix/backend/config"
	"github.com/prologistix/backend/sanitize"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single failure outcome of a signin
// attempt, it does not distinguish between a wrong username and a
// wrong password
var ErrInvalidCredentials = errors.New("invalid credentials")

// SigninService checks the single operator credential. There is exactly
// one privileged principal, configured out of band.
type SigninService struct {
	cfg *config.AdminConfiguration
	log *zap.Logger
}

func NewSigninService(cfg *config.AdminConfiguration, log *zap.Logger) *SigninService {
	return &SigninService{
		cfg: cfg,
		log: log,
	}
}

// SignIn validates the supplied credentials against the configured
// operator. The bcrypt comparison runs on the request goroutine.
func (s *SigninService) SignIn(username string, password string) error {
	nameOk := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password))
	if !nameOk || err != nil {
		s.log.Info(
			"failed admin signin attempt",
			sanitize.UserInputString("username", username),
		)
		return ErrInvalidCredentials
	}
	return nil
}
