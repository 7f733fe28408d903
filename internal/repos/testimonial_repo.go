package repos

import (
	"github.com/jmoiron/sqlx"

	"solarmart/internal/domain"
)

type TestimonialRepo struct{ db *sqlx.DB }

func NewTestimonialRepo(db *sqlx.DB) *TestimonialRepo { return &TestimonialRepo{db: db} }

func (r *TestimonialRepo) List(limit int) ([]domain.Testimonial, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []domain.Testimonial
	err := r.db.Select(&out, `
	  SELECT id, author, quote, rating, created_at
	  FROM testimonials
	  ORDER BY datetime(created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *TestimonialRepo) Create(t domain.Testimonial) error {
	_, err := r.db.Exec(`
	  INSERT INTO testimonials(id, author, quote, rating, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, t.ID, t.Author, t.Quote, t.Rating)
	return err
}

func (r *TestimonialRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
