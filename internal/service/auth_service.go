package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/auth"
	"github.com/mmynk/tutorbooks/internal/middleware"
	"github.com/mmynk/tutorbooks/pkg/api"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	staff         auth.StaffStorage
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

var _ apiconnect.AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, staff auth.StaffStorage, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		staff:         staff,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login authenticates a staff member and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, invalidArgument(errors.New("email and password are required"))
	}

	staff, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(staff)
	if err != nil {
		s.logger.Error("Failed to generate token", "staff_id", staff.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to issue token"))
	}

	s.logger.Info("Staff logged in", "staff_id", staff.ID, "email", staff.Email)
	return connect.NewResponse(&api.LoginResponse{Staff: toStaff(staff), Token: token}), nil
}

// Me returns the account of the caller.
func (s *AuthService) Me(ctx context.Context, req *connect.Request[api.MeRequest]) (*connect.Response[api.MeResponse], error) {
	staffID := middleware.GetStaffID(ctx)
	if staffID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	staff, err := s.staff.GetStaff(ctx, staffID)
	if err != nil {
		s.logger.Warn("Token refers to unknown staff", "staff_id", staffID, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
	}
	return connect.NewResponse(&api.MeResponse{Staff: toStaff(staff)}), nil
}
