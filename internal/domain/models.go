package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Product struct {
	ID          string          `db:"id" json:"id"`
	CategoryID  string          `db:"category_id" json:"categoryId"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	ImagesJSON  string          `db:"images_json" json:"imagesJson"`
	Active      bool            `db:"active" json:"active"`
	CreatedAt   string          `db:"created_at" json:"createdAt"`
	UpdatedAt   string          `db:"updated_at" json:"updatedAt,omitempty"`
}

type Testimonial struct {
	ID        string `db:"id" json:"id"`
	Author    string `db:"author" json:"author"`
	Quote     string `db:"quote" json:"quote"`
	Rating    int    `db:"rating" json:"rating"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

type Article struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Body        string `db:"body" json:"body"`
	PublishedAt string `db:"published_at" json:"publishedAt"`
}
