package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type IUserService interface {
	GetProfile(ctx context.Context, userID uint) (*model.User, []string, error)
	GetAddresses(ctx context.Context, userID uint) ([]model.Address, error)
	AddAddress(ctx context.Context, userID uint, address *model.Address) (*model.Address, error)
}

type UserService struct {
	dbDao db.UnifiedStore
}

func NewUserService(dbDao db.UnifiedStore) IUserService {
	return &UserService{dbDao: dbDao}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*model.User, []string, error) {
	user, err := s.dbDao.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.New(apperr.NotFoundCode, "user not found")
		}
		return nil, nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load user", err)
	}

	roles, err := s.dbDao.GetRolesForUser(ctx, userID)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load roles", err)
	}
	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleNames = append(roleNames, r.Name)
	}
	return user, roleNames, nil
}

func (s *UserService) GetAddresses(ctx context.Context, userID uint) ([]model.Address, error) {
	addresses, err := s.dbDao.GetAddressesByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load addresses", err)
	}
	return addresses, nil
}

func (s *UserService) AddAddress(ctx context.Context, userID uint, address *model.Address) (*model.Address, error) {
	if address.Street == "" || address.City == "" || address.Country == "" {
		return nil, apperr.New(apperr.BadRequestCode, "street, city and country are required")
	}
	if _, err := s.dbDao.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "user not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load user", err)
	}

	address.UserID = userID
	created, err := s.dbDao.CreateAddress(ctx, address)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create address", err)
	}
	return created, nil
}

var _ IUserService = (*UserService)(nil)
