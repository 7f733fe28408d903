package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"solarmart/internal/domain"
	"solarmart/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
	Tests *repos.TestimonialRepo
	News  *repos.NewsRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo, tests *repos.TestimonialRepo, news *repos.NewsRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, Tests: tests, News: news}
}

func (s *CatalogService) Categories() ([]domain.Category, error) { return s.Cats.All() }

func (s *CatalogService) Products(limit, offset int) ([]domain.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	if offset < 0 {
		offset = 0
	}
	return s.Prods.List(limit, offset)
}

func (s *CatalogService) ProductsByCategory(catID string, limit, offset int) ([]domain.Product, error) {
	if _, err := s.Cats.Get(catID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	if offset < 0 {
		offset = 0
	}
	return s.Prods.ListByCategory(catID, limit, offset)
}

func (s *CatalogService) Product(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	if !p.Active {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *CatalogService) SearchProducts(q string, limit, offset int) ([]domain.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	if offset < 0 {
		offset = 0
	}
	return s.Prods.Search(q, limit, offset)
}

func (s *CatalogService) Testimonials(limit int) ([]domain.Testimonial, error) {
	return s.Tests.List(limit)
}

func (s *CatalogService) Articles(limit int) ([]domain.Article, error) { return s.News.List(limit) }

func (s *CatalogService) Article(id string) (domain.Article, error) { return s.News.Get(id) }

// ---------- Admin mutations ----------

func (s *CatalogService) CreateProduct(categoryID, name, description, imagesJSON string, price decimal.Decimal) (domain.Product, error) {
	if name == "" || categoryID == "" {
		return domain.Product{}, errors.New("missing required fields")
	}
	if price.IsNegative() {
		return domain.Product{}, errors.New("price must not be negative")
	}
	if _, err := s.Cats.Get(categoryID); err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{
		ID:          uuid.NewString(),
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
		Price:       price,
		ImagesJSON:  imagesJSON,
		Active:      true,
	}
	if err := s.Prods.Create(p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(p.ID)
}

func (s *CatalogService) UpdateProduct(p domain.Product) (domain.Product, error) {
	if p.ID == "" || p.Name == "" || p.CategoryID == "" {
		return domain.Product{}, errors.New("missing required fields")
	}
	if p.Price.IsNegative() {
		return domain.Product{}, errors.New("price must not be negative")
	}
	if err := s.Prods.Update(p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(p.ID)
}

func (s *CatalogService) RemoveProduct(id string) error {
	return s.Prods.Deactivate(id)
}

func (s *CatalogService) CreateTestimonial(author, quote string, rating int) (domain.Testimonial, error) {
	if author == "" || quote == "" {
		return domain.Testimonial{}, errors.New("missing required fields")
	}
	if rating < 1 || rating > 5 {
		rating = 5
	}
	t := domain.Testimonial{ID: uuid.NewString(), Author: author, Quote: quote, Rating: rating}
	if err := s.Tests.Create(t); err != nil {
		return domain.Testimonial{}, err
	}
	return t, nil
}

func (s *CatalogService) RemoveTestimonial(id string) error { return s.Tests.Delete(id) }

func (s *CatalogService) CreateArticle(title, body string) (domain.Article, error) {
	if title == "" || body == "" {
		return domain.Article{}, errors.New("missing required fields")
	}
	a := domain.Article{ID: uuid.NewString(), Title: title, Body: body}
	if err := s.News.Create(a); err != nil {
		return domain.Article{}, err
	}
	return s.News.Get(a.ID)
}

func (s *CatalogService) UpdateArticle(a domain.Article) (domain.Article, error) {
	if a.ID == "" || a.Title == "" || a.Body == "" {
		return domain.Article{}, errors.New("missing required fields")
	}
	if err := s.News.Update(a); err != nil {
		return domain.Article{}, err
	}
	return s.News.Get(a.ID)
}

func (s *CatalogService) RemoveArticle(id string) error { return s.News.Delete(id) }
