package services

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/freshdeal/account-service/internal/common"
	"github.com/freshdeal/account-service/internal/dbx"
	"github.com/freshdeal/account-service/internal/logging"
	"github.com/freshdeal/account-service/internal/server/lockout"
	"github.com/freshdeal/account-service/internal/server/models"
	"github.com/freshdeal/account-service/internal/server/repositories/accounts"
	"github.com/freshdeal/account-service/internal/server/repositories/attempts"
	"github.com/freshdeal/account-service/internal/verify"
)

const (
	testEmail    = "user@example.com"
	testPassword = "Str0ngPassw0rd!"
)

type staticResolver struct{}

func (staticResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	return []*net.MX{{Host: "mx." + name}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger { return l }

type memAccounts struct {
	users  []*models.User
	nextID int64
}

func (m *memAccounts) Create(_ context.Context, u *models.User) (*models.User, error) {
	m.nextID++
	u.ID = m.nextID
	m.users = append(m.users, u)
	return u, nil
}

func (m *memAccounts) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memAccounts) FindByUUID(_ context.Context, uuid string) (*models.User, error) {
	for _, u := range m.users {
		if u.UUID == uuid {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memAccounts) Update(_ context.Context, u *models.User) error {
	for i, existing := range m.users {
		if existing.ID == u.ID {
			m.users[i] = u
			return nil
		}
	}
	return common.ErrorNotFound
}

type memAttempts struct {
	records []*models.FailedAttempt
	nextID  int64
}

func (m *memAttempts) ListByUser(_ context.Context, userID int64) ([]*models.FailedAttempt, error) {
	var out []*models.FailedAttempt
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memAttempts) Create(_ context.Context, r *models.FailedAttempt) error {
	m.nextID++
	r.ID = m.nextID
	m.records = append(m.records, r)
	return nil
}

func (m *memAttempts) Delete(_ context.Context, id int64) error {
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type memRepoManager struct {
	accounts *memAccounts
	attempts *memAttempts
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Accounts(dbx.DBTX) accounts.Repository        { return m.accounts }
func (m *memRepoManager) Attempts(dbx.DBTX) attempts.Repository        { return m.attempts }

type memSessions struct {
	snapshots map[string]*models.PublicUser
	created   int
	updated   int
}

func newMemSessions() *memSessions {
	return &memSessions{snapshots: map[string]*models.PublicUser{}}
}

func (m *memSessions) key(sessionUUID, userUUID string) string {
	return sessionUUID + ":" + userUUID
}

func (m *memSessions) Create(_ context.Context, userUUID string, snapshot *models.PublicUser) (string, int64, error) {
	m.created++
	sessionUUID := uuid.NewString()
	m.snapshots[m.key(sessionUUID, userUUID)] = snapshot
	return sessionUUID, time.Now().Add(time.Hour).Unix(), nil
}

func (m *memSessions) Update(_ context.Context, sessionUUID, userUUID string, snapshot *models.PublicUser) (int64, error) {
	m.updated++
	m.snapshots[m.key(sessionUUID, userUUID)] = snapshot
	return time.Now().Add(time.Hour).Unix(), nil
}

func (m *memSessions) FindBySession(_ context.Context, sessionUUID string) (*models.PublicUser, error) {
	for key, snapshot := range m.snapshots {
		if len(key) > len(sessionUUID) && key[:len(sessionUUID)+1] == sessionUUID+":" {
			return snapshot, nil
		}
	}
	return nil, common.ErrorSessionExpired
}

func (m *memSessions) Delete(_ context.Context, sessionUUID, userUUID string) error {
	key := m.key(sessionUUID, userUUID)
	if _, ok := m.snapshots[key]; !ok {
		return common.ErrorSessionExpired
	}
	delete(m.snapshots, key)
	return nil
}

type fakeOTP struct {
	issued    []string
	verifyErr error
}

func (f *fakeOTP) Issue(_ context.Context, email string) (string, error) {
	f.issued = append(f.issued, email)
	return "123456", nil
}

func (f *fakeOTP) Verify(context.Context, string, string) error { return f.verifyErr }

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendOTP(_ context.Context, email, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

type testEnv struct {
	svc      *AuthService
	mock     sqlmock.Sqlmock
	accounts *memAccounts
	attempts *memAttempts
	sessions *memSessions
	otp      *fakeOTP
	mailer   *fakeMailer
}

func newTestEnv(t *testing.T, maxAttempts int) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	env := &testEnv{
		mock:     mock,
		accounts: &memAccounts{},
		attempts: &memAttempts{},
		sessions: newMemSessions(),
		otp:      &fakeOTP{},
		mailer:   &fakeMailer{},
	}

	repos := &memRepoManager{accounts: env.accounts, attempts: env.attempts}
	env.svc = NewAuthService(db, repos, env.sessions, env.otp,
		lockout.NewTracker(maxAttempts), env.mailer,
		verify.NewEngine(staticResolver{}), nopLogger{})

	return env
}

// expectTx queues n committed transactions on the mock. The repositories are
// in-memory fakes, so the database only ever sees begin/commit pairs.
func (e *testEnv) expectTx(n int) {
	for i := 0; i < n; i++ {
		e.mock.ExpectBegin()
		e.mock.ExpectCommit()
	}
}

func (e *testEnv) addUser(t *testing.T, status models.Status, verified bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := e.accounts.Create(context.Background(), &models.User{
		UUID:          "b6f7aa2c-52cd-4e5b-9a81-0a3579ff4f44",
		Email:         testEmail,
		PasswordHash:  string(hash),
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Status:        status,
		EmailVerified: verified,
	})
	require.NoError(t, err)
	return user
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Email:       testEmail,
		Password:    testPassword,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Gender:      "Female",
		DateOfBirth: "1990-06-15",
	}
}

func TestRegister_Success(t *testing.T) {
	env := newTestEnv(t, 3)
	env.expectTx(1)

	res := env.svc.Register(context.Background(), validRegistration())

	require.True(t, res.Status.Success)
	assert.Equal(t, http.StatusOK, res.Status.HTTPStatus)
	require.NotNil(t, res.User)
	assert.Equal(t, testEmail, res.User.Email)
	assert.Equal(t, string(models.StatusUnverified), res.User.Status)

	require.Len(t, env.accounts.users, 1)
	stored := env.accounts.users[0]
	assert.NotEqual(t, testPassword, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(testPassword)))

	assert.Equal(t, []string{testEmail}, env.otp.issued)
	assert.Equal(t, []string{testEmail}, env.mailer.sent)
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestRegister_WeakPasswordRejectedWithoutInsert(t *testing.T) {
	env := newTestEnv(t, 3)

	in := validRegistration()
	in.Password = "alllowercase1!aa" // no uppercase

	res := env.svc.Register(context.Background(), in)

	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status.HTTPStatus)
	assert.Contains(t, res.Status.Errors, "password must contain at least one upper_case")

	assert.Empty(t, env.accounts.users)
	assert.Empty(t, env.otp.issued)
	// validation failed before any transaction was opened
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t, 3)
	env.addUser(t, models.StatusActive, true)

	env.mock.ExpectBegin()
	env.mock.ExpectRollback()

	res := env.svc.Register(context.Background(), validRegistration())

	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusUnauthorized, res.Status.HTTPStatus)
	assert.Equal(t, "Email Already In Use", res.Status.Message)
	assert.Len(t, env.accounts.users, 1)
}

func TestRegister_MailerFailureIsDegraded(t *testing.T) {
	env := newTestEnv(t, 3)
	env.expectTx(1)
	env.mailer.err = errors.New("smtp down")

	res := env.svc.Register(context.Background(), validRegistration())

	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusInternalServerError, res.Status.HTTPStatus)
	assert.Equal(t, "Unable To Send Verification Email", res.Status.Message)
	// the account still exists, only the verification email is missing
	assert.Len(t, env.accounts.users, 1)
	assert.Nil(t, res.User)
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusInactive, true)
	env.expectTx(1)

	res := env.svc.Login(context.Background(), testEmail, testPassword)

	require.True(t, res.Status.Success)
	assert.Equal(t, http.StatusOK, res.Status.HTTPStatus)
	assert.False(t, res.OTPRequired)
	require.NotNil(t, res.Session)
	assert.NotEmpty(t, res.Session.UUID)
	assert.Greater(t, res.Session.Expiry, time.Now().Unix())
	assert.NotZero(t, user.LastLogin)
	assert.Equal(t, 1, env.sessions.created)
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t, 3)
	env.mock.ExpectBegin()
	env.mock.ExpectRollback()

	res := env.svc.Login(context.Background(), testEmail, testPassword)

	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status.HTTPStatus)
	assert.Equal(t, "No Account Associated With Given Email", res.Status.Message)
}

func TestLogin_WrongPasswordRecordsFailure(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusInactive, true)
	env.expectTx(1)

	res := env.svc.Login(context.Background(), testEmail, "WrongPassw0rd!!!")

	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusForbidden, res.Status.HTTPStatus)
	assert.Equal(t, "Email Or Password Incorrect", res.Status.Message)

	// the denial must not roll the recorded failure back
	assert.Len(t, env.attempts.records, 1)
	assert.Equal(t, 1, user.FailedLoginAttempts)
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestLogin_LockAfterThresholdAndDenyDuringWindow(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusInactive, true)
	env.expectTx(5)

	for i := 0; i < 4; i++ {
		res := env.svc.Login(context.Background(), testEmail, "WrongPassw0rd!!!")
		require.False(t, res.Status.Success)
	}

	assert.Equal(t, models.StatusLocked, user.Status)
	assert.Greater(t, user.AccountLockedUntil, time.Now().Unix())

	// correct password is still denied while the window holds
	res := env.svc.Login(context.Background(), testEmail, testPassword)
	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusForbidden, res.Status.HTTPStatus)
	assert.Equal(t, "This Account Is Temporarily Locked. Please Try Again Later", res.Status.Message)
	assert.Equal(t, 0, env.sessions.created)
}

func TestLogin_ExpiredLockUnlocks(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusLocked, true)
	user.AccountLockedUntil = time.Now().Add(-time.Minute).Unix()
	env.expectTx(1)

	res := env.svc.Login(context.Background(), testEmail, testPassword)

	require.True(t, res.Status.Success)
	assert.Equal(t, models.StatusInactive, user.Status)
	assert.Equal(t, 1, env.sessions.created)
}

func TestLogin_ClosedAccount(t *testing.T) {
	env := newTestEnv(t, 3)
	env.addUser(t, models.StatusClosed, true)
	env.expectTx(1)

	res := env.svc.Login(context.Background(), testEmail, testPassword)

	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusForbidden, res.Status.HTTPStatus)
	assert.Equal(t, "This Account Has Been Closed", res.Status.Message)
	assert.Contains(t, res.Status.Errors, "Account Data Will Be Wiped In The Near Future Following TOS")
}

func TestLogin_UnverifiedTriggersOTP(t *testing.T) {
	env := newTestEnv(t, 3)
	env.addUser(t, models.StatusUnverified, false)
	env.expectTx(1)

	res := env.svc.Login(context.Background(), testEmail, testPassword)

	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusForbidden, res.Status.HTTPStatus)
	assert.Equal(t, "Account Not Verified", res.Status.Message)
	assert.True(t, res.OTPRequired)
	// a degraded session still comes back so the client can verify
	require.NotNil(t, res.Session)
	assert.Equal(t, []string{testEmail}, env.otp.issued)
	assert.Equal(t, []string{testEmail}, env.mailer.sent)
}

func TestVerifyOtp_Success(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusUnverified, false)
	env.expectTx(1)

	res := env.svc.VerifyOtp(context.Background(), VerifyOTPInput{
		Email: testEmail, Code: "123456", Action: "REGISTER",
	})

	require.True(t, res.Status.Success)
	assert.Equal(t, http.StatusCreated, res.Status.HTTPStatus)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, models.StatusInactive, user.Status)
	assert.Nil(t, res.Session)
}

func TestVerifyOtp_LoginActionUpdatesSession(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusUnverified, false)

	sessionUUID, _, err := env.sessions.Create(context.Background(), user.UUID, user.Public())
	require.NoError(t, err)

	env.expectTx(1)

	res := env.svc.VerifyOtp(context.Background(), VerifyOTPInput{
		Email: testEmail, Code: "123456", SessionUUID: sessionUUID, Action: ActionLogin,
	})

	require.True(t, res.Status.Success)
	assert.Equal(t, http.StatusAccepted, res.Status.HTTPStatus)
	require.NotNil(t, res.Session)
	assert.Equal(t, sessionUUID, res.Session.UUID)
	assert.Equal(t, 1, env.sessions.updated)

	stored := env.sessions.snapshots[env.sessions.key(sessionUUID, user.UUID)]
	require.NotNil(t, stored)
	assert.True(t, stored.EmailVerified)
}

func TestVerifyOtp_LoginActionEmailMismatch(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusUnverified, false)

	other := user.Public()
	other.Email = "someone.else@example.com"
	sessionUUID, _, err := env.sessions.Create(context.Background(), user.UUID, other)
	require.NoError(t, err)

	res := env.svc.VerifyOtp(context.Background(), VerifyOTPInput{
		Email: testEmail, Code: "123456", SessionUUID: sessionUUID, Action: ActionLogin,
	})

	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status.HTTPStatus)
	assert.Equal(t, "Logged In Account Mismatch With Provided Email", res.Status.Message)
	assert.False(t, user.EmailVerified)
}

func TestVerifyOtp_AlreadyVerified(t *testing.T) {
	env := newTestEnv(t, 3)
	env.addUser(t, models.StatusInactive, true)
	env.expectTx(1)

	res := env.svc.VerifyOtp(context.Background(), VerifyOTPInput{
		Email: testEmail, Code: "123456", Action: "REGISTER",
	})

	require.False(t, res.Status.Success)
	assert.Equal(t, "Email Has Already Been Verified", res.Status.Message)
}

func TestVerifyOtp_ExpiredTicketReissues(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusUnverified, false)
	env.otp.verifyErr = common.ErrorOTPExpired
	env.expectTx(1)

	res := env.svc.VerifyOtp(context.Background(), VerifyOTPInput{
		Email: testEmail, Code: "123456", Action: "REGISTER",
	})

	require.False(t, res.Status.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status.HTTPStatus)
	assert.Equal(t, "OTP Code Timed Out. Renewing Verification Email", res.Status.Message)
	assert.Equal(t, []string{testEmail}, env.otp.issued)
	assert.Equal(t, []string{testEmail}, env.mailer.sent)
	assert.False(t, user.EmailVerified)
}

func TestVerifyOtp_InvalidCode(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusUnverified, false)
	env.otp.verifyErr = common.ErrorOTPInvalid
	env.expectTx(1)

	res := env.svc.VerifyOtp(context.Background(), VerifyOTPInput{
		Email: testEmail, Code: "654321", Action: "REGISTER",
	})

	require.False(t, res.Status.Success)
	assert.Equal(t, "Invalid OTP Code Provided", res.Status.Message)
	assert.Empty(t, env.otp.issued)
	assert.False(t, user.EmailVerified)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t, 3)
	user := env.addUser(t, models.StatusActive, true)

	sessionUUID, _, err := env.sessions.Create(context.Background(), user.UUID, user.Public())
	require.NoError(t, err)

	st := env.svc.Logout(context.Background(), sessionUUID, user.UUID)
	require.True(t, st.Success)
	assert.Equal(t, http.StatusOK, st.HTTPStatus)

	// second logout hits a session that no longer exists
	st = env.svc.Logout(context.Background(), sessionUUID, user.UUID)
	require.False(t, st.Success)
	assert.Equal(t, http.StatusBadRequest, st.HTTPStatus)
	assert.Equal(t, "Session Either Expired Or Never Existed", st.Message)
}
