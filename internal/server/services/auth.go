// Package services contains the server-side authentication workflows:
// registration, login, OTP verification and logout. Each workflow validates
// its input, walks its gates in order and answers with a structured Status;
// account mutations happen inside one transaction per request.
package services

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/freshdeal/account-service/internal/common"
	"github.com/freshdeal/account-service/internal/dbx"
	"github.com/freshdeal/account-service/internal/logging"
	"github.com/freshdeal/account-service/internal/server/lockout"
	"github.com/freshdeal/account-service/internal/server/models"
	"github.com/freshdeal/account-service/internal/server/repositories/accounts"
	"github.com/freshdeal/account-service/internal/server/repositories/repomanager"
	"github.com/freshdeal/account-service/internal/server/schema"
	"github.com/freshdeal/account-service/internal/verify"
)

// ActionLogin marks an OTP submission that continues a pending login and
// must therefore carry the session it belongs to.
const ActionLogin = "LOGIN"

// SessionStore is the session persistence contract the workflows need.
// Implemented by session.Store.
type SessionStore interface {
	Create(ctx context.Context, userUUID string, snapshot *models.PublicUser) (string, int64, error)
	Update(ctx context.Context, sessionUUID, userUUID string, snapshot *models.PublicUser) (int64, error)
	FindBySession(ctx context.Context, sessionUUID string) (*models.PublicUser, error)
	Delete(ctx context.Context, sessionUUID, userUUID string) error
}

// OTPService issues and verifies one-time codes. Implemented by otp.Service.
type OTPService interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) error
}

// AuthService orchestrates the four authentication workflows over the
// account repositories, the session store and the OTP service.
type AuthService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	schemas  *schema.Set
	verifier *verify.Engine
	sessions SessionStore
	codes    OTPService
	tracker  *lockout.Tracker
	mailer   Mailer
	log      logging.Logger
	now      func() time.Time
}

// NewAuthService wires the orchestrator. The verifier decides input
// validity, the tracker applies lockout policy, the mailer delivers codes
// issued by the OTP service.
func NewAuthService(db *sql.DB, repos repomanager.RepositoryManager, sessions SessionStore,
	codes OTPService, tracker *lockout.Tracker, mailer Mailer,
	verifier *verify.Engine, log logging.Logger) *AuthService {
	return &AuthService{
		db:       db,
		repos:    repos,
		schemas:  schema.NewSet(),
		verifier: verifier,
		sessions: sessions,
		codes:    codes,
		tracker:  tracker,
		mailer:   mailer,
		log:      log.With("module", "auth"),
		now:      time.Now,
	}
}

// validate runs a schema through the engine and converts a failure into a
// client status. Restriction bugs come back as a 500 so a broken template is
// never blamed on the caller.
func (s *AuthService) validate(ctx context.Context, sch verify.Schema) *Status {
	res := s.verifier.Verify(ctx, sch)
	if res.OK {
		return nil
	}

	status := failStatus(http.StatusBadRequest, "Invalid Data Received", res.Errors...)
	for _, msg := range res.Errors {
		if verify.IsDevError(msg) {
			status.HTTPStatus = http.StatusInternalServerError
			status.Message = "Verification Misconfigured"
			break
		}
	}
	return status
}

// dispatchOTP issues a fresh code and hands it to the mailer. On failure the
// status is degraded in place: replaceMessage swaps the message out
// entirely, otherwise the dispatch failure is appended to the error list so
// the original message survives. Reports whether dispatch succeeded.
func (s *AuthService) dispatchOTP(ctx context.Context, email string, status *Status, replaceMessage bool) bool {
	code, err := s.codes.Issue(ctx, email)
	if err == nil {
		err = s.mailer.SendOTP(ctx, email, code)
	}
	if err == nil {
		return true
	}

	s.log.Error(ctx, "otp dispatch failed", "email", email, "error", err.Error())

	status.Success = false
	status.HTTPStatus = http.StatusInternalServerError
	if replaceMessage {
		status.Message = "Unable To Send Verification Email"
	} else {
		status.Errors = append(status.Errors, "Unable To Send Verification Email")
	}
	return false
}

// freshUUID mints an account id, retrying on the (vanishingly rare) chance
// of a collision with an existing row.
func (s *AuthService) freshUUID(ctx context.Context, repo accounts.Repository) (string, error) {
	for {
		id := uuid.NewString()
		_, err := repo.FindByUUID(ctx, id)
		if errors.Is(err, common.ErrorNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Gender      string
	DateOfBirth string
}

// Register creates an Unverified account and dispatches the verification
// code. A dispatch failure still leaves the account registered; the caller
// gets a degraded status telling it verification must be retried.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) *AuthResult {
	if st := s.validate(ctx, s.schemas.Registration(in.Email, in.Password, in.FirstName, in.LastName, in.Gender, in.DateOfBirth)); st != nil {
		return &AuthResult{Status: st}
	}

	var created *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Accounts(tx)

		_, err := repo.FindByEmail(ctx, in.Email)
		if err == nil {
			return common.ErrorEmailInUse
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		id, err := s.freshUUID(ctx, repo)
		if err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := s.now().Unix()
		created, err = repo.Create(ctx, &models.User{
			UUID:                  id,
			Email:                 in.Email,
			PasswordHash:          string(hash),
			PasswordLastChangedAt: now,
			FirstName:             in.FirstName,
			LastName:              in.LastName,
			Gender:                in.Gender,
			DateOfBirth:           in.DateOfBirth,
			CreatedAt:             now,
			UpdatedAt:             now,
			Status:                models.StatusUnverified,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorEmailInUse) {
			return &AuthResult{Status: failStatus(http.StatusUnauthorized, "Email Already In Use")}
		}
		s.log.Error(ctx, "registration failed", "error", err.Error())
		return &AuthResult{Status: internalStatus("Unable To Register Account")}
	}

	status := okStatus(http.StatusOK)
	if !s.dispatchOTP(ctx, in.Email, status, true) {
		return &AuthResult{Status: status}
	}

	return &AuthResult{Status: status, User: created.Public()}
}

// Login authenticates credentials and opens a session. Failed password
// checks are recorded for lockout even though the request is denied, so the
// transaction commits on denial and the sentinel travels outside it.
func (s *AuthService) Login(ctx context.Context, email, password string) *AuthResult {
	if st := s.validate(ctx, s.schemas.Login(email, password)); st != nil {
		return &AuthResult{Status: st}
	}

	var (
		user   *models.User
		denial error
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		accountRepo := s.repos.Accounts(tx)
		attemptRepo := s.repos.Attempts(tx)

		u, err := accountRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}

		if !u.IsAccessible() {
			switch u.Status {
			case models.StatusClosed:
				denial = common.ErrorAccountClosed
				return nil
			case models.StatusTerminated:
				denial = common.ErrorAccountTerminated
				return nil
			case models.StatusLocked:
				unlocked, err := s.tracker.Unlock(ctx, accountRepo, attemptRepo, u)
				if err != nil {
					return err
				}
				if !unlocked {
					denial = common.ErrorAccountLocked
					return nil
				}
			}
		}

		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			if err := s.tracker.RecordFailure(ctx, accountRepo, attemptRepo, u); err != nil {
				return err
			}
			denial = common.ErrorWrongCredentials
			return nil
		}

		u.LastLogin = s.now().Unix()
		if err := accountRepo.Update(ctx, u); err != nil {
			return err
		}

		user = u
		return nil
	})
	if err == nil {
		err = denial
	}
	if err != nil {
		return &AuthResult{Status: s.loginDenialStatus(ctx, err)}
	}

	sessionUUID, expiry, err := s.sessions.Create(ctx, user.UUID, user.Public())
	if err != nil {
		s.log.Error(ctx, "session create failed", "user", user.UUID, "error", err.Error())
		return &AuthResult{Status: internalStatus("Unable To Create Session")}
	}

	result := &AuthResult{
		Status:  okStatus(http.StatusOK),
		User:    user.Public(),
		Session: &Session{UUID: sessionUUID, Expiry: expiry},
	}

	if !user.IsVerified() {
		result.Status = failStatus(http.StatusForbidden, "Account Not Verified")
		result.OTPRequired = true

		if !s.dispatchOTP(ctx, email, result.Status, true) {
			return &AuthResult{Status: result.Status}
		}
	}

	return result
}

func (s *AuthService) loginDenialStatus(ctx context.Context, err error) *Status {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return failStatus(http.StatusBadRequest, "No Account Associated With Given Email")
	case errors.Is(err, common.ErrorAccountClosed):
		return failStatus(http.StatusForbidden, "This Account Has Been Closed",
			"Account Data Will Be Wiped In The Near Future Following TOS")
	case errors.Is(err, common.ErrorAccountTerminated):
		return failStatus(http.StatusForbidden, "This Account Has Been Disabled")
	case errors.Is(err, common.ErrorAccountLocked):
		return failStatus(http.StatusForbidden, "This Account Is Temporarily Locked. Please Try Again Later")
	case errors.Is(err, common.ErrorWrongCredentials):
		return failStatus(http.StatusForbidden, "Email Or Password Incorrect")
	}
	s.log.Error(ctx, "login failed", "error", err.Error())
	return internalStatus("Unable To Process Login")
}

// VerifyOTPInput is the OTP submission payload. SessionUUID is only set when
// Action is ActionLogin.
type VerifyOTPInput struct {
	Email       string
	Code        string
	SessionUUID string
	Action      string
}

// VerifyOtp confirms the submitted code, marks the account verified and, for
// a login continuation, refreshes the pending session. An expired ticket
// triggers an automatic re-issue so the client can just ask the user for the
// new code.
func (s *AuthService) VerifyOtp(ctx context.Context, in VerifyOTPInput) *AuthResult {
	if st := s.validate(ctx, s.schemas.OTP(in.Email, in.Code, in.SessionUUID, in.Action)); st != nil {
		return &AuthResult{Status: st}
	}

	if in.Action == ActionLogin {
		if st := s.checkSessionEmail(ctx, in.SessionUUID, in.Email); st != nil {
			return &AuthResult{Status: st}
		}
	}

	var (
		user   *models.User
		denial error
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Accounts(tx)

		u, err := repo.FindByEmail(ctx, in.Email)
		if err != nil {
			return err
		}

		if u.IsVerified() {
			denial = common.ErrorAlreadyVerified
			return nil
		}

		if err := s.codes.Verify(ctx, in.Email, in.Code); err != nil {
			if errors.Is(err, common.ErrorOTPExpired) || errors.Is(err, common.ErrorOTPInvalid) {
				denial = err
				return nil
			}
			return err
		}

		u.EmailVerified = true
		u.Status = models.StatusInactive
		u.UpdatedAt = s.now().Unix()
		if err := repo.Update(ctx, u); err != nil {
			return err
		}

		user = u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &AuthResult{Status: failStatus(http.StatusBadRequest, "Email Is Not Linked To Any Account")}
		}
		s.log.Error(ctx, "otp verification failed", "error", err.Error())
		return &AuthResult{Status: internalStatus("Unable To Verify Code")}
	}

	switch {
	case errors.Is(denial, common.ErrorAlreadyVerified):
		return &AuthResult{Status: failStatus(http.StatusBadRequest, "Email Has Already Been Verified")}
	case errors.Is(denial, common.ErrorOTPExpired):
		status := failStatus(http.StatusBadRequest, "OTP Code Timed Out. Renewing Verification Email")
		s.dispatchOTP(ctx, in.Email, status, false)
		return &AuthResult{Status: status}
	case errors.Is(denial, common.ErrorOTPInvalid):
		return &AuthResult{Status: failStatus(http.StatusBadRequest, "Invalid OTP Code Provided")}
	}

	result := &AuthResult{Status: okStatus(http.StatusCreated), User: user.Public()}

	if in.Action == ActionLogin {
		expiry, err := s.sessions.Update(ctx, in.SessionUUID, user.UUID, user.Public())
		if err != nil {
			s.log.Error(ctx, "session update failed", "session", in.SessionUUID, "error", err.Error())
			return &AuthResult{Status: internalStatus("Unable To Update Session")}
		}
		result.Status = okStatus(http.StatusAccepted)
		result.Session = &Session{UUID: in.SessionUUID, Expiry: expiry}
	}

	return result
}

// checkSessionEmail guards a login continuation: the submitted email must
// match the one stored in the pending session, so a code can never verify
// somebody else's session.
func (s *AuthService) checkSessionEmail(ctx context.Context, sessionUUID, email string) *Status {
	snapshot, err := s.sessions.FindBySession(ctx, sessionUUID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorSessionExpired):
			return failStatus(http.StatusBadRequest, "Session Either Expired Or Never Existed")
		case errors.Is(err, common.ErrorSessionNoData):
			return failStatus(http.StatusBadRequest, "Session Has No User Data")
		}
		s.log.Error(ctx, "session lookup failed", "session", sessionUUID, "error", err.Error())
		return internalStatus("Unable To Read Session")
	}

	if snapshot.Email != email {
		return failStatus(http.StatusBadRequest, "Logged In Account Mismatch With Provided Email")
	}

	return nil
}

// Logout tears the session down. Deleting an already-gone session is a
// client error, not a success: the caller should know its session state was
// stale.
func (s *AuthService) Logout(ctx context.Context, sessionUUID, userUUID string) *Status {
	if st := s.validate(ctx, s.schemas.Logout(sessionUUID, userUUID)); st != nil {
		return st
	}

	if err := s.sessions.Delete(ctx, sessionUUID, userUUID); err != nil {
		if errors.Is(err, common.ErrorSessionExpired) {
			return failStatus(http.StatusBadRequest, "Session Either Expired Or Never Existed")
		}
		s.log.Error(ctx, "session delete failed", "session", sessionUUID, "error", err.Error())
		return internalStatus("Unable To Delete Session")
	}

	return okStatus(http.StatusOK)
}
