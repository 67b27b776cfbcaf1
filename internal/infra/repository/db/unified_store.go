package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

// UnifiedStore 統一的資料庫介面
type UnifiedStore interface {
	InitMigrate() error

	// ExecTx runs fn inside one database transaction; the store handed to fn
	// is bound to that transaction. All writes commit together or roll back
	// together.
	ExecTx(ctx context.Context, fn func(UnifiedStore) error) error

	IUserRepository
	ICatalogRepository
	ICartRepository
	IWishlistRepository
	IOrderRepository
}

type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	CreateRole(ctx context.Context, role *model.Role) error
	GetRoleByName(ctx context.Context, name string) (*model.Role, error)
	AssignRole(ctx context.Context, userID, roleID uint) error
	GetRolesForUser(ctx context.Context, userID uint) ([]model.Role, error)
	CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	GetAddressByID(ctx context.Context, id uint) (*model.Address, error)
	GetAddressesByUserID(ctx context.Context, userID uint) ([]model.Address, error)
}

type ICatalogRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*model.Category, error)
	GetRootCategories(ctx context.Context) ([]model.Category, error)
	GetCategoriesByParent(ctx context.Context, parentID uint) ([]model.Category, error)
	CountCategories(ctx context.Context) (int64, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	CountProducts(ctx context.Context) (int64, error)
}

type ICartRepository interface {
	CreateCart(ctx context.Context, cart *model.Cart) (*model.Cart, error)
	GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error)
	GetCartItem(ctx context.Context, cartID, itemID uint) (*model.CartItem, error)
	GetCartItemByProduct(ctx context.Context, cartID, productID uint) (*model.CartItem, error)
	CreateCartItem(ctx context.Context, item *model.CartItem) error
	UpdateCartItem(ctx context.Context, item *model.CartItem) error
	DeleteCartItem(ctx context.Context, cartID, itemID uint) error
	ClearCart(ctx context.Context, cartID uint) error
}

type IWishlistRepository interface {
	CreateWishlist(ctx context.Context, wishlist *model.Wishlist) (*model.Wishlist, error)
	GetWishlistByUserID(ctx context.Context, userID uint) (*model.Wishlist, error)
	GetWishlistItem(ctx context.Context, wishlistID, itemID uint) (*model.WishlistItem, error)
	GetWishlistItemByProduct(ctx context.Context, wishlistID, productID uint) (*model.WishlistItem, error)
	CreateWishlistItem(ctx context.Context, item *model.WishlistItem) error
	DeleteWishlistItem(ctx context.Context, wishlistID, itemID uint) error
}

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) error
}

// UnifiedStoreImpl 統一資料庫實現
type UnifiedStoreImpl struct {
	db    *gorm.DB
	dbDao *DbDao
	*UserRepo
	*CatalogRepo
	*CartRepo
	*WishlistRepo
	*OrderRepo
}

func NewUnifiedStore(conn *gorm.DB) *UnifiedStoreImpl {
	dbDao := NewDbDao(conn)
	return &UnifiedStoreImpl{
		db:           conn,
		dbDao:        dbDao,
		UserRepo:     NewUserRepo(dbDao),
		CatalogRepo:  NewCatalogRepo(dbDao),
		CartRepo:     NewCartRepo(dbDao),
		WishlistRepo: NewWishlistRepo(dbDao),
		OrderRepo:    NewOrderRepo(dbDao),
	}
}

func (u *UnifiedStoreImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

func (u *UnifiedStoreImpl) ExecTx(ctx context.Context, fn func(UnifiedStore) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUnifiedStore(tx))
	})
}

var (
	_ UnifiedStore        = (*UnifiedStoreImpl)(nil)
	_ IUserRepository     = (*UnifiedStoreImpl)(nil)
	_ ICatalogRepository  = (*UnifiedStoreImpl)(nil)
	_ ICartRepository     = (*UnifiedStoreImpl)(nil)
	_ IWishlistRepository = (*UnifiedStoreImpl)(nil)
	_ IOrderRepository    = (*UnifiedStoreImpl)(nil)
)
