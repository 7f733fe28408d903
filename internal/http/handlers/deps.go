package handlers

import (
	"github.com/jmoiron/sqlx"

	"solarmart/internal/repos"
	"solarmart/internal/services"
)

type Deps struct {
	ProductHandler     *ProductHandler
	TestimonialHandler *TestimonialHandler
	NewsHandler        *NewsHandler
	CartHandler        *CartHandler
	OrderHandler       *OrderHandler
	AdminHandler       *AdminHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	testRepo := repos.NewTestimonialRepo(db)
	newsRepo := repos.NewNewsRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo, testRepo, newsRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(cartRepo, prodRepo, orderRepo)

	return &Deps{
		ProductHandler:     &ProductHandler{Catalog: catalogSvc},
		TestimonialHandler: &TestimonialHandler{Catalog: catalogSvc},
		NewsHandler:        &NewsHandler{Catalog: catalogSvc},
		CartHandler:        &CartHandler{Cart: cartSvc},
		OrderHandler:       &OrderHandler{Cart: cartSvc, Order: orderSvc, Auth: auth},
		AdminHandler:       &AdminHandler{Catalog: catalogSvc, Orders: orderRepo},
	}
}
