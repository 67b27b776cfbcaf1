package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type UserRepo struct {
	dbDao *DbDao
}

func NewUserRepo(dbDao *DbDao) *UserRepo {
	return &UserRepo{dbDao: dbDao}
}

// Create - 創建用戶
func (s *UserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.dbDao.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Read - 根據ID查詢用戶
func (s *UserRepo) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.dbDao.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Read - 根據Email查詢用戶
func (s *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.dbDao.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update - 更新用戶
func (s *UserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	return s.dbDao.WithContext(ctx).Save(user).Error
}

// roles

func (s *UserRepo) CreateRole(ctx context.Context, role *model.Role) error {
	return s.dbDao.WithContext(ctx).Create(role).Error
}

func (s *UserRepo) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := s.dbDao.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *UserRepo) AssignRole(ctx context.Context, userID, roleID uint) error {
	return s.dbDao.WithContext(ctx).Create(&model.UserRole{UserID: userID, RoleID: roleID}).Error
}

// GetRolesForUser resolves the user's roles through the join table.
func (s *UserRepo) GetRolesForUser(ctx context.Context, userID uint) ([]model.Role, error) {
	var roles []model.Role
	err := s.dbDao.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.role_id").
		Where("user_roles.user_id = ?", userID).
		Find(&roles).Error
	return roles, err
}

// addresses

func (s *UserRepo) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	if err := s.dbDao.WithContext(ctx).Create(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

func (s *UserRepo) GetAddressByID(ctx context.Context, id uint) (*model.Address, error) {
	var address model.Address
	err := s.dbDao.WithContext(ctx).First(&address, id).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *UserRepo) GetAddressesByUserID(ctx context.Context, userID uint) ([]model.Address, error) {
	var addresses []model.Address
	err := s.dbDao.WithContext(ctx).Where("user_id = ?", userID).Find(&addresses).Error
	return addresses, err
}
