package grpc

import (
	"context"

	pb "github.com/freshdeal/account-service/internal/proto"
	"github.com/freshdeal/account-service/internal/server/models"
	"github.com/freshdeal/account-service/internal/server/services"
)

func pbStatus(st *services.Status) *pb.Status {
	return &pb.Status{
		Success:    st.Success,
		HttpStatus: int32(st.HTTPStatus),
		Message:    st.Message,
		Errors:     st.Errors,
	}
}

func pbUser(u *models.PublicUser) *pb.UserData {
	if u == nil {
		return nil
	}
	return &pb.UserData{
		Uuid:          u.UUID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Gender:        u.Gender,
		DateOfBirth:   u.DateOfBirth,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		LastLogin:     u.LastLogin,
		EmailVerified: u.EmailVerified,
		UserStatus:    u.Status,
	}
}

func pbSession(s *services.Session) *pb.UserSession {
	if s == nil {
		return nil
	}
	return &pb.UserSession{
		SessionUuid: s.UUID,
		ExpiryTime:  s.Expiry,
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "email", req.Email)

	result := s.auth.Register(ctx, services.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	})

	if !result.Status.Success {
		s.logger.Warn(ctx, "Registration denied", "email", req.Email, "message", result.Status.Message)
	}

	return &pb.RegisterResponse{
		Status: pbStatus(result.Status),
		User:   pbUser(result.User),
	}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	s.logger.Info(ctx, "Login request", "email", req.Email)

	result := s.auth.Login(ctx, req.Email, req.Password)

	return &pb.LoginResponse{
		Status:      pbStatus(result.Status),
		User:        pbUser(result.User),
		Session:     pbSession(result.Session),
		OtpRequired: result.OTPRequired,
	}, nil
}

func (s *GRPCServer) VerifyOtp(ctx context.Context, req *pb.VerifyOtpRequest) (*pb.LoginResponse, error) {

	s.logger.Info(ctx, "OTP verification request", "email", req.Email)

	result := s.auth.VerifyOtp(ctx, services.VerifyOTPInput{
		Email:       req.Email,
		Code:        req.OtpCode,
		SessionUUID: req.SessionUuid,
		Action:      req.ReturnAction,
	})

	return &pb.LoginResponse{
		Status:      pbStatus(result.Status),
		User:        pbUser(result.User),
		Session:     pbSession(result.Session),
		OtpRequired: result.OTPRequired,
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	s.logger.Info(ctx, "Logout request", "session", req.SessionUuid)

	st := s.auth.Logout(ctx, req.SessionUuid, req.UserUuid)

	return &pb.LogoutResponse{Status: pbStatus(st)}, nil
}
