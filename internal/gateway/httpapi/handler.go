// Package httpapi exposes the account operations over the gateway's public
// JSON endpoints. Handlers translate JSON bodies to RPC requests, forward
// them through the resilient account client, and render the service's
// verdict with the HTTP status the account service chose.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/freshdeal/account-service/internal/gateway/rpc"
	"github.com/freshdeal/account-service/internal/logging"
	pb "github.com/freshdeal/account-service/internal/proto"
)

// AccountClient is the slice of the rpc client the handlers need.
type AccountClient interface {
	Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, *rpc.CallError)
	Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, *rpc.CallError)
	VerifyOtp(ctx context.Context, req *pb.VerifyOtpRequest) (*pb.LoginResponse, *rpc.CallError)
	Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, *rpc.CallError)
}

// API holds the handlers for the /v1/account endpoints.
type API struct {
	accounts    AccountClient
	callTimeout time.Duration
	log         logging.Logger
}

func NewAPI(accounts AccountClient, callTimeout time.Duration, l logging.Logger) *API {
	return &API{accounts: accounts, callTimeout: callTimeout, log: l}
}

// Routes mounts the account endpoints on a ServeMux.
func (a *API) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /v1/account/register", a.register)
	mux.HandleFunc("POST /v1/account/login", a.login)
	mux.HandleFunc("POST /v1/account/verify-otp", a.verifyOtp)
	mux.HandleFunc("POST /v1/account/logout", a.logout)

	return loggingMiddleware(a.log)(mux)
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyOtpRequest struct {
	Email       string `json:"email"`
	OtpCode     string `json:"otp_code"`
	SessionUUID string `json:"session_uuid"`
	Action      string `json:"action"`
}

type logoutRequest struct {
	SessionUUID string `json:"session_uuid"`
	UserUUID    string `json:"user_uuid"`
}

type userPayload struct {
	UUID          string `json:"uuid"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"date_of_birth"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
	LastLogin     int64  `json:"last_login"`
	EmailVerified bool   `json:"email_verified"`
	UserStatus    string `json:"user_status"`
}

type sessionPayload struct {
	SessionUUID string `json:"session_uuid"`
	ExpiryTime  int64  `json:"expiry_time"`
}

// envelope is the JSON body of every account endpoint response.
type envelope struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	Errors      []string        `json:"errors,omitempty"`
	User        *userPayload    `json:"user,omitempty"`
	Session     *sessionPayload `json:"session,omitempty"`
	OTPRequired bool            `json:"otp_required,omitempty"`
}

func jsonUser(u *pb.UserData) *userPayload {
	if u == nil {
		return nil
	}
	return &userPayload{
		UUID:          u.Uuid,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Gender:        u.Gender,
		DateOfBirth:   u.DateOfBirth,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		LastLogin:     u.LastLogin,
		EmailVerified: u.EmailVerified,
		UserStatus:    u.UserStatus,
	}
}

func jsonSession(s *pb.UserSession) *sessionPayload {
	if s == nil {
		return nil
	}
	return &sessionPayload{SessionUUID: s.SessionUuid, ExpiryTime: s.ExpiryTime}
}

func writeJSON(w http.ResponseWriter, httpStatus int, body *envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(body)
}

func writeStatus(w http.ResponseWriter, st *pb.Status, body *envelope) {
	body.Success = st.Success
	body.Message = st.Message
	body.Errors = st.Errors
	writeJSON(w, int(st.HttpStatus), body)
}

func badBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, &envelope{Message: "Malformed Request Body"})
}

// writeCallError renders a failed account call. Exhausted transient
// failures read as a temporary outage; everything else is a gateway-side
// fault the user cannot fix by retrying.
func (a *API) writeCallError(w http.ResponseWriter, r *http.Request, cerr *rpc.CallError) {
	a.log.Error(r.Context(), "account call failed",
		"path", r.URL.Path, "code", cerr.Code.String(), "attempts", cerr.Attempts)
	if cerr.Retryable {
		writeJSON(w, http.StatusServiceUnavailable,
			&envelope{Message: "Service Temporarily Unavailable. Please Try Again Later"})
		return
	}
	writeJSON(w, http.StatusBadGateway, &envelope{Message: "Unable To Reach Account Service"})
}

func (a *API) callCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), a.callTimeout)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badBody(w)
		return
	}

	ctx, cancel := a.callCtx(r)
	defer cancel()

	resp, cerr := a.accounts.Register(ctx, &pb.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	})
	if cerr != nil {
		a.writeCallError(w, r, cerr)
		return
	}

	writeStatus(w, resp.Status, &envelope{User: jsonUser(resp.User)})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badBody(w)
		return
	}

	ctx, cancel := a.callCtx(r)
	defer cancel()

	resp, cerr := a.accounts.Login(ctx, &pb.LoginRequest{Email: req.Email, Password: req.Password})
	if cerr != nil {
		a.writeCallError(w, r, cerr)
		return
	}

	writeStatus(w, resp.Status, &envelope{
		User:        jsonUser(resp.User),
		Session:     jsonSession(resp.Session),
		OTPRequired: resp.OtpRequired,
	})
}

func (a *API) verifyOtp(w http.ResponseWriter, r *http.Request) {
	var req verifyOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badBody(w)
		return
	}

	ctx, cancel := a.callCtx(r)
	defer cancel()

	resp, cerr := a.accounts.VerifyOtp(ctx, &pb.VerifyOtpRequest{
		Email:        req.Email,
		OtpCode:      req.OtpCode,
		SessionUuid:  req.SessionUUID,
		ReturnAction: req.Action,
	})
	if cerr != nil {
		a.writeCallError(w, r, cerr)
		return
	}

	writeStatus(w, resp.Status, &envelope{
		User:        jsonUser(resp.User),
		Session:     jsonSession(resp.Session),
		OTPRequired: resp.OtpRequired,
	})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badBody(w)
		return
	}

	ctx, cancel := a.callCtx(r)
	defer cancel()

	resp, cerr := a.accounts.Logout(ctx, &pb.LogoutRequest{SessionUuid: req.SessionUUID, UserUuid: req.UserUUID})
	if cerr != nil {
		a.writeCallError(w, r, cerr)
		return
	}

	writeStatus(w, resp.Status, &envelope{})
}
