package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type CartServiceTestSuite struct {
	suite.Suite
	store       *fakeStore
	cartService ICartService
	user        *model.User
	product     *model.Product
}

func (suite *CartServiceTestSuite) SetupTest() {
	suite.store = newFakeStore()
	suite.cartService = NewCartService(suite.store)

	user, err := suite.store.CreateUser(context.Background(), &model.User{
		Name:  "Test User",
		Email: "test@example.com",
	})
	require.NoError(suite.T(), err)
	suite.user = user

	category, err := suite.store.CreateCategory(context.Background(), &model.Category{Name: "Electronics"})
	require.NoError(suite.T(), err)

	product, err := suite.store.CreateProduct(context.Background(), &model.Product{
		Name:       "Premium Smartphone",
		Price:      decimal.RequireFromString("999.99"),
		Stock:      50,
		CategoryID: category.CategoryID,
	})
	require.NoError(suite.T(), err)
	suite.product = product
}

func (suite *CartServiceTestSuite) TestGetCartCreatesOnFirstAccess() {
	cart, err := suite.cartService.GetCart(context.Background(), suite.user.UserID)
	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), cart.CartID)
	require.Empty(suite.T(), cart.Items)

	// 第二次存取拿到同一台購物車
	again, err := suite.cartService.GetCart(context.Background(), suite.user.UserID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), cart.CartID, again.CartID)
}

func (suite *CartServiceTestSuite) TestGetCartUnknownUser() {
	_, err := suite.cartService.GetCart(context.Background(), 9999)
	require.Error(suite.T(), err)
	require.True(suite.T(), apperr.IsCode(err, apperr.NotFoundCode))
}

func (suite *CartServiceTestSuite) TestAddToCartCapturesCurrentPrice() {
	cart, err := suite.cartService.AddToCart(context.Background(), suite.user.UserID, suite.product.ProductID, 2)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), cart.Items, 1)
	require.Equal(suite.T(), 2, cart.Items[0].Quantity)
	require.True(suite.T(), cart.Items[0].Price.Equal(decimal.RequireFromString("999.99")))
}

func (suite *CartServiceTestSuite) TestAddToCartMergesExistingLine() {
	_, err := suite.cartService.AddToCart(context.Background(), suite.user.UserID, suite.product.ProductID, 2)
	require.NoError(suite.T(), err)

	cart, err := suite.cartService.AddToCart(context.Background(), suite.user.UserID, suite.product.ProductID, 3)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), cart.Items, 1)
	require.Equal(suite.T(), 5, cart.Items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestAddToCartUnknownProduct() {
	_, err := suite.cartService.AddToCart(context.Background(), suite.user.UserID, 9999, 1)
	require.Error(suite.T(), err)
	require.True(suite.T(), apperr.IsCode(err, apperr.NotFoundCode))
}

func (suite *CartServiceTestSuite) TestAddToCartRejectsNonPositiveQuantity() {
	_, err := suite.cartService.AddToCart(context.Background(), suite.user.UserID, suite.product.ProductID, 0)
	require.Error(suite.T(), err)
	require.True(suite.T(), apperr.IsCode(err, apperr.BadRequestCode))
}

func (suite *CartServiceTestSuite) TestUpdateItemQuantity() {
	cart, err := suite.cartService.AddToCart(context.Background(), suite.user.UserID, suite.product.ProductID, 2)
	require.NoError(suite.T(), err)
	itemID := cart.Items[0].CartItemID

	updated, err := suite.cartService.UpdateItemQuantity(context.Background(), suite.user.UserID, itemID, 7)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 7, updated.Items[0].Quantity)
}

func (suite *CartServiceTestSuite) TestUpdateItemQuantityUnknownLine() {
	_, err := suite.cartService.UpdateItemQuantity(context.Background(), suite.user.UserID, 9999, 2)
	require.Error(suite.T(), err)
	require.True(suite.T(), apperr.IsCode(err, apperr.NotFoundCode))
}

func (suite *CartServiceTestSuite) TestUpdateItemQuantityRejectsNonPositive() {
	cart, err := suite.cartService.AddToCart(context.Background(), suite.user.UserID, suite.product.ProductID, 2)
	require.NoError(suite.T(), err)

	_, err = suite.cartService.UpdateItemQuantity(context.Background(), suite.user.UserID, cart.Items[0].CartItemID, -1)
	require.Error(suite.T(), err)
	require.True(suite.T(), apperr.IsCode(err, apperr.BadRequestCode))
}

func (suite *CartServiceTestSuite) TestRemoveItem() {
	cart, err := suite.cartService.AddToCart(context.Background(), suite.user.UserID, suite.product.ProductID, 2)
	require.NoError(suite.T(), err)

	after, err := suite.cartService.RemoveItem(context.Background(), suite.user.UserID, cart.Items[0].CartItemID)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), after.Items)
}

func (suite *CartServiceTestSuite) TestRemoveItemFromOtherCart() {
	// 他人購物車的項目對當前用戶是 not found
	other, err := suite.store.CreateUser(context.Background(), &model.User{Name: "Other", Email: "other@example.com"})
	require.NoError(suite.T(), err)
	otherCart, err := suite.cartService.AddToCart(context.Background(), other.UserID, suite.product.ProductID, 1)
	require.NoError(suite.T(), err)

	_, err = suite.cartService.RemoveItem(context.Background(), suite.user.UserID, otherCart.Items[0].CartItemID)
	require.Error(suite.T(), err)
	require.True(suite.T(), apperr.IsCode(err, apperr.NotFoundCode))
}

func (suite *CartServiceTestSuite) TestClearCart() {
	_, err := suite.cartService.AddToCart(context.Background(), suite.user.UserID, suite.product.ProductID, 2)
	require.NoError(suite.T(), err)

	err = suite.cartService.ClearCart(context.Background(), suite.user.UserID)
	require.NoError(suite.T(), err)

	cart, err := suite.cartService.GetCart(context.Background(), suite.user.UserID)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), cart.Items)
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
