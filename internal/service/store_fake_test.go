package service

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

// fakeStore 是記憶體版的 UnifiedStore,讓 service 測試不需要資料庫。
// ExecTx 直接執行 fn,不提供回滾,測試只驗證 service 邏輯本身。
type fakeStore struct {
	mu sync.Mutex

	users         map[uint]*model.User
	roles         map[uint]*model.Role
	userRoles     []model.UserRole
	addresses     map[uint]*model.Address
	categories    map[uint]*model.Category
	products      map[uint]*model.Product
	carts         map[uint]*model.Cart
	cartItems     map[uint]*model.CartItem
	wishlists     map[uint]*model.Wishlist
	wishlistItems map[uint]*model.WishlistItem
	orders        map[uint]*model.Order

	nextID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[uint]*model.User),
		roles:         make(map[uint]*model.Role),
		addresses:     make(map[uint]*model.Address),
		categories:    make(map[uint]*model.Category),
		products:      make(map[uint]*model.Product),
		carts:         make(map[uint]*model.Cart),
		cartItems:     make(map[uint]*model.CartItem),
		wishlists:     make(map[uint]*model.Wishlist),
		wishlistItems: make(map[uint]*model.WishlistItem),
		orders:        make(map[uint]*model.Order),
	}
}

func (f *fakeStore) nextKey() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) InitMigrate() error { return nil }

func (f *fakeStore) ExecTx(ctx context.Context, fn func(db.UnifiedStore) error) error {
	return fn(f)
}

// users

func (f *fakeStore) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.UserID = f.nextKey()
	f.users[user.UserID] = user
	return user, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) UpdateUser(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.UserID] = user
	return nil
}

func (f *fakeStore) CreateRole(ctx context.Context, role *model.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	role.RoleID = f.nextKey()
	f.roles[role.RoleID] = role
	return nil
}

func (f *fakeStore) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, role := range f.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) AssignRole(ctx context.Context, userID, roleID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userRoles = append(f.userRoles, model.UserRole{UserID: userID, RoleID: roleID})
	return nil
}

func (f *fakeStore) GetRolesForUser(ctx context.Context, userID uint) ([]model.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var roles []model.Role
	for _, ur := range f.userRoles {
		if ur.UserID == userID {
			if role, ok := f.roles[ur.RoleID]; ok {
				roles = append(roles, *role)
			}
		}
	}
	return roles, nil
}

func (f *fakeStore) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	address.AddressID = f.nextKey()
	f.addresses[address.AddressID] = address
	return address, nil
}

func (f *fakeStore) GetAddressByID(ctx context.Context, id uint) (*model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	address, ok := f.addresses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return address, nil
}

func (f *fakeStore) GetAddressesByUserID(ctx context.Context, userID uint) ([]model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var addresses []model.Address
	for _, address := range f.addresses {
		if address.UserID == userID {
			addresses = append(addresses, *address)
		}
	}
	return addresses, nil
}

// catalog

func (f *fakeStore) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category.CategoryID = f.nextKey()
	f.categories[category.CategoryID] = category
	return category, nil
}

func (f *fakeStore) GetCategoryByID(ctx context.Context, id uint) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (f *fakeStore) GetRootCategories(ctx context.Context) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var categories []model.Category
	for _, category := range f.categories {
		if category.ParentID == nil {
			categories = append(categories, *category)
		}
	}
	return categories, nil
}

func (f *fakeStore) GetCategoriesByParent(ctx context.Context, parentID uint) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var categories []model.Category
	for _, category := range f.categories {
		if category.ParentID != nil && *category.ParentID == parentID {
			categories = append(categories, *category)
		}
	}
	return categories, nil
}

func (f *fakeStore) CountCategories(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.categories)), nil
}

func (f *fakeStore) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product.ProductID = f.nextKey()
	f.products[product.ProductID] = product
	return product, nil
}

func (f *fakeStore) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (f *fakeStore) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var products []model.Product
	for _, product := range f.products {
		products = append(products, *product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ProductID < products[j].ProductID })
	return products, nil
}

func (f *fakeStore) GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var products []model.Product
	for _, product := range f.products {
		if product.CategoryID == categoryID {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (f *fakeStore) UpdateProduct(ctx context.Context, product *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[product.ProductID] = product
	return nil
}

func (f *fakeStore) CountProducts(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.products)), nil
}

// cart

func (f *fakeStore) CreateCart(ctx context.Context, cart *model.Cart) (*model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart.CartID = f.nextKey()
	f.carts[cart.CartID] = cart
	return cart, nil
}

func (f *fakeStore) GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cart := range f.carts {
		if cart.UserID == userID {
			loaded := *cart
			loaded.Items = f.itemsOfCart(cart.CartID)
			return &loaded, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) itemsOfCart(cartID uint) []model.CartItem {
	var items []model.CartItem
	for _, item := range f.cartItems {
		if item.CartID == cartID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CartItemID < items[j].CartItemID })
	return items
}

func (f *fakeStore) GetCartItem(ctx context.Context, cartID, itemID uint) (*model.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.cartItems[itemID]
	if !ok || item.CartID != cartID {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeStore) GetCartItemByProduct(ctx context.Context, cartID, productID uint) (*model.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.cartItems {
		if item.CartID == cartID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CreateCartItem(ctx context.Context, item *model.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.CartItemID = f.nextKey()
	f.cartItems[item.CartItemID] = item
	return nil
}

func (f *fakeStore) UpdateCartItem(ctx context.Context, item *model.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cartItems[item.CartItemID] = item
	return nil
}

func (f *fakeStore) DeleteCartItem(ctx context.Context, cartID, itemID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.cartItems[itemID]
	if ok && item.CartID == cartID {
		delete(f.cartItems, itemID)
	}
	return nil
}

func (f *fakeStore) ClearCart(ctx context.Context, cartID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, item := range f.cartItems {
		if item.CartID == cartID {
			delete(f.cartItems, id)
		}
	}
	return nil
}

// wishlist

func (f *fakeStore) CreateWishlist(ctx context.Context, wishlist *model.Wishlist) (*model.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wishlist.WishlistID = f.nextKey()
	f.wishlists[wishlist.WishlistID] = wishlist
	return wishlist, nil
}

func (f *fakeStore) GetWishlistByUserID(ctx context.Context, userID uint) (*model.Wishlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, wishlist := range f.wishlists {
		if wishlist.UserID == userID {
			loaded := *wishlist
			loaded.Items = f.itemsOfWishlist(wishlist.WishlistID)
			return &loaded, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) itemsOfWishlist(wishlistID uint) []model.WishlistItem {
	var items []model.WishlistItem
	for _, item := range f.wishlistItems {
		if item.WishlistID == wishlistID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].WishlistItemID < items[j].WishlistItemID })
	return items
}

func (f *fakeStore) GetWishlistItem(ctx context.Context, wishlistID, itemID uint) (*model.WishlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.wishlistItems[itemID]
	if !ok || item.WishlistID != wishlistID {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeStore) GetWishlistItemByProduct(ctx context.Context, wishlistID, productID uint) (*model.WishlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.wishlistItems {
		if item.WishlistID == wishlistID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CreateWishlistItem(ctx context.Context, item *model.WishlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.WishlistItemID = f.nextKey()
	f.wishlistItems[item.WishlistItemID] = item
	return nil
}

func (f *fakeStore) DeleteWishlistItem(ctx context.Context, wishlistID, itemID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.wishlistItems[itemID]
	if ok && item.WishlistID == wishlistID {
		delete(f.wishlistItems, itemID)
	}
	return nil
}

// orders

func (f *fakeStore) CreateOrder(ctx context.Context, order *model.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.OrderID = f.nextKey()
	for i := range order.Items {
		order.Items[i].OrderItemID = f.nextKey()
		order.Items[i].OrderID = order.OrderID
	}
	if order.Payment != nil {
		order.Payment.PaymentID = f.nextKey()
		order.Payment.OrderID = order.OrderID
	}
	f.orders[order.OrderID] = order
	return nil
}

func (f *fakeStore) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := *order
	return &loaded, nil
}

func (f *fakeStore) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []model.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID > orders[j].OrderID })
	return orders, nil
}

func (f *fakeStore) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []model.Order
	for _, order := range f.orders {
		orders = append(orders, *order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID > orders[j].OrderID })
	return orders, nil
}

func (f *fakeStore) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

var _ db.UnifiedStore = (*fakeStore)(nil)
