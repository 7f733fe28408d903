package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"solarmart/internal/domain"
)

type NewsRepo struct{ db *sqlx.DB }

func NewNewsRepo(db *sqlx.DB) *NewsRepo { return &NewsRepo{db: db} }

func (r *NewsRepo) List(limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []domain.Article
	err := r.db.Select(&out, `
	  SELECT id, title, body, published_at
	  FROM news
	  ORDER BY datetime(published_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *NewsRepo) Get(id string) (domain.Article, error) {
	var a domain.Article
	err := r.db.Get(&a, `SELECT id, title, body, published_at FROM news WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, domain.ErrNotFound
	}
	return a, err
}

func (r *NewsRepo) Create(a domain.Article) error {
	_, err := r.db.Exec(`
	  INSERT INTO news(id, title, body, published_at)
	  VALUES(?, ?, ?, CURRENT_TIMESTAMP)
	`, a.ID, a.Title, a.Body)
	return err
}

func (r *NewsRepo) Update(a domain.Article) error {
	res, err := r.db.Exec(`UPDATE news SET title = ?, body = ? WHERE id = ?`, a.Title, a.Body, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NewsRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM news WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
