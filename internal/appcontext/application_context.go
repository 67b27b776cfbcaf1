package appcontext

import (
	"context"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/auth"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type ApplicationContext struct {
	Cf              *config.Config
	DbConn          *gorm.DB
	DbDao           db.UnifiedStore
	TokenMaker      auth.Maker
	OrderProducer   producer.OrderProducer
	AuthService     service.IAuthService
	UserService     service.IUserService
	CatalogService  service.ICatalogService
	CartService     service.ICartService
	WishlistService service.IWishlistService
	OrderService    service.IOrderService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	if err := app.setUpDbConn(); err != nil {
		return err
	}
	if err := app.setUpDbDao(); err != nil {
		return err
	}
	if err := app.setUpTokenMaker(); err != nil {
		return err
	}
	app.setUpOrderProducer()
	app.setUpServices()

	if app.Cf.SeedData {
		log.Printf("seeding initial data...")
		if err := service.SeedData(context.Background(), app.DbDao); err != nil {
			return err
		}
	}
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup db connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup db connection")
	return nil
}

func (app *ApplicationContext) setUpDbDao() error {
	store := db.NewUnifiedStore(app.DbConn)
	if err := store.InitMigrate(); err != nil {
		return err
	}
	app.DbDao = store
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	maker, err := auth.NewJWTMaker(app.Cf.TokenSymmetricKey)
	if err != nil {
		return err
	}
	app.TokenMaker = maker
	return nil
}

func (app *ApplicationContext) setUpOrderProducer() {
	var brokers []string
	if app.Cf.KafkaBrokers != "" {
		brokers = strings.Split(app.Cf.KafkaBrokers, ",")
	}
	app.OrderProducer = producer.NewOrderProducer(brokers, app.Cf.KafkaOrderTopic)
}

func (app *ApplicationContext) setUpServices() {
	app.AuthService = service.NewAuthService(app.DbDao, app.TokenMaker)
	app.UserService = service.NewUserService(app.DbDao)
	app.CatalogService = service.NewCatalogService(app.DbDao)
	app.CartService = service.NewCartService(app.DbDao)
	app.WishlistService = service.NewWishlistService(app.DbDao)
	app.OrderService = service.NewOrderService(app.DbDao, app.OrderProducer)
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	if app.OrderProducer != nil {
		if err := app.OrderProducer.Close(); err != nil {
			log.Printf("order producer close error: %v", err)
		}
	}
	if app.DbConn != nil {
		sqlDB, err := app.DbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
