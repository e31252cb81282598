package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/employee"
	"github.com/smart-attendance/attendance-backend-go/internal/domain/user"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/database"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/jwt"
	"github.com/smart-attendance/attendance-backend-go/internal/repository/postgresql"
)

type service struct {
	db           *database.DB
	repo         user.Repository
	employeeRepo employee.Repository
	jwtService   jwt.Service
	refreshTTL   time.Duration
}

// NewUserService creates a new user service
func NewUserService(
	db *database.DB,
	repo user.Repository,
	employeeRepo employee.Repository,
	jwtService jwt.Service,
	refreshTTL time.Duration,
) user.Service {
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		refreshTTL:   refreshTTL,
	}
}

func (s *service) Register(ctx context.Context, req user.RegisterRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created user.User

	// The employee record and the login account are created together or
	// not at all.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeCode: req.EmployeeCode,
			Name:         req.Name,
			Email:        req.Email,
			DepartmentID: req.DepartmentID,
			Status:       employee.StatusPending,
		})
		if err != nil {
			return err
		}

		created = user.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
			EmployeeID:   &emp.ID,
		}
		return s.repo.Create(txCtx, &created)
	})
	if err != nil {
		return nil, err
	}

	resp := user.ToUserResponse(&created)
	return &resp, nil
}

func (s *service) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, user.ErrInvalidCredentials
	}

	// Employees cannot sign in until their registration is approved.
	if !u.IsAdmin() && u.EmployeeID != nil {
		emp, err := s.employeeRepo.GetByID(ctx, *u.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp.Status != employee.StatusApproved {
			return nil, user.ErrAccountNotApproved
		}
	}

	return s.issueTokens(ctx, u)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*user.TokenResponse, error) {
	tokenID, err := uuid.Parse(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	stored, err := s.repo.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.repo.DeleteRefreshToken(ctx, stored.ID)
		return nil, user.ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	// Rotate: a refresh token is single use.
	if err := s.repo.DeleteRefreshToken(ctx, stored.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, u)
}

func (s *service) Logout(ctx context.Context, userID int64) error {
	return s.repo.DeleteRefreshTokensByUser(ctx, userID)
}

func (s *service) issueTokens(ctx context.Context, u *user.User) (*user.TokenResponse, error) {
	var employeeID *string
	if u.EmployeeID != nil {
		id := strconv.FormatInt(*u.EmployeeID, 10)
		employeeID = &id
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(
		strconv.FormatInt(u.ID, 10), u.Email, employeeID, u.Role,
	)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refresh := user.RefreshToken{
		ID:        uuid.New(),
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.repo.CreateRefreshToken(ctx, &refresh); err != nil {
		return nil, err
	}

	return &user.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.ID.String(),
		ExpiresAt:    expiresAt,
		User:         user.ToUserResponse(u),
	}, nil
}
