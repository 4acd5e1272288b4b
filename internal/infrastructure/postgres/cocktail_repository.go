package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/entity"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain/repository"
)

var _ repository.CocktailRepository = (*CocktailRepo)(nil)

// CocktailRepo is the PostgreSQL adapter for cocktail recipes. The ingredient
// list is stored as JSONB on the row.
type CocktailRepo struct {
	q Querier
}

// NewCocktailRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCocktailRepository(q Querier) *CocktailRepo {
	return &CocktailRepo{q: q}
}

type ingredientRow struct {
	LiquorID string `json:"liquorId"`
	Brand    string `json:"brand"`
	VolumeMl int    `json:"volumeMl"`
}

func (r *CocktailRepo) Create(c *entity.Cocktail) error {
	ingredients, err := marshalIngredients(c.Ingredients)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO cocktails (id, name, barcode, price, ingredients, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`
	_, err = r.q.Exec(context.Background(), query, c.ID, c.Name, c.Barcode, c.Price, ingredients)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cocktail: %w", err)
	}
	return nil
}

func (r *CocktailRepo) GetByID(id string) (*entity.Cocktail, error) {
	query := `SELECT id, name, barcode, price, ingredients, created_at, updated_at FROM cocktails WHERE id = $1`
	c, err := scanCocktail(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cocktail: %w", err)
	}
	return c, nil
}

func (r *CocktailRepo) List() ([]*entity.Cocktail, error) {
	query := `SELECT id, name, barcode, price, ingredients, created_at, updated_at FROM cocktails ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cocktails: %w", err)
	}
	defer rows.Close()

	var out []*entity.Cocktail
	for rows.Next() {
		c, err := scanCocktail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cocktail: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CocktailRepo) Update(c *entity.Cocktail) error {
	ingredients, err := marshalIngredients(c.Ingredients)
	if err != nil {
		return err
	}
	query := `
		UPDATE cocktails
		SET name = $2, barcode = $3, price = $4, ingredients = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.Barcode, c.Price, ingredients)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cocktail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CocktailRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM cocktails WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cocktail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalIngredients(ingredients []entity.Ingredient) ([]byte, error) {
	rows := make([]ingredientRow, 0, len(ingredients))
	for _, ing := range ingredients {
		rows = append(rows, ingredientRow(ing))
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal ingredients: %w", err)
	}
	return data, nil
}

func scanCocktail(row pgx.Row) (*entity.Cocktail, error) {
	var (
		c    entity.Cocktail
		data []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Barcode, &c.Price, &data, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	var rows []ingredientRow
	if len(data) > 0 {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("unmarshal ingredients: %w", err)
		}
	}
	for _, ing := range rows {
		c.Ingredients = append(c.Ingredients, entity.Ingredient(ing))
	}
	return &c, nil
}
