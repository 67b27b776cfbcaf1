package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/auth"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, []string, error)
}

type AuthService struct {
	dbDao db.UnifiedStore
	maker auth.Maker
}

func NewAuthService(dbDao db.UnifiedStore, maker auth.Maker) IAuthService {
	return &AuthService{
		dbDao: dbDao,
		maker: maker,
	}
}

// Register 創建新用戶並賦予一般用戶角色
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.New(apperr.BadRequestCode, "name, email and password are required")
	}

	// 檢查email是否已存在
	existing, err := s.dbDao.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.BadRequestCode, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to hash password", err)
	}

	var user *model.User
	err = s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		created, err := store.CreateUser(ctx, &model.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hashed),
		})
		if err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to create user", err)
		}

		role, err := store.GetRoleByName(ctx, constants.RoleUser)
		if err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "default role not seeded", err)
		}
		if err := store.AssignRole(ctx, created.UserID, role.RoleID); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to assign role", err)
		}

		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login 驗證密碼並簽發 access token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, []string, error) {
	user, err := s.dbDao.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, nil, apperr.New(apperr.UnauthenticatedCode, "invalid email or password")
		}
		return "", nil, nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, nil, apperr.New(apperr.UnauthenticatedCode, "invalid email or password")
	}

	roles, err := s.dbDao.GetRolesForUser(ctx, user.UserID)
	if err != nil {
		return "", nil, nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load roles", err)
	}
	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleNames = append(roleNames, r.Name)
	}

	token, err := s.maker.CreateToken(user.UserID, user.Email, roleNames, constants.AccessTokenDuration)
	if err != nil {
		return "", nil, nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create token", err)
	}
	return token, user, roleNames, nil
}

var _ IAuthService = (*AuthService)(nil)
