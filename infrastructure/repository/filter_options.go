package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-insights-api/internal/domain"
)

// GetFilterOptions lista cidades, filiais e categorias cadastradas
func (r *salesAggregateRepository) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	cities, err := queryRows(ctx, r.conn,
		squirrel.Select("c.city_id", "c.city_name").
			From("cities c").
			OrderBy("c.city_name").
			PlaceholderFormat(squirrel.Dollar),
		func(rows *sql.Rows) (domain.City, error) {
			var city domain.City
			err := rows.Scan(&city.ID, &city.Name)
			return city, err
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar cidades: %w", err)
	}

	branches, err := queryRows(ctx, r.conn,
		squirrel.Select("b.branch_id", "b.branch_name", "d.city_id").
			From("branches b").
			Join(joinDistricts).
			OrderBy("b.branch_name").
			PlaceholderFormat(squirrel.Dollar),
		func(rows *sql.Rows) (domain.Branch, error) {
			var branch domain.Branch
			err := rows.Scan(&branch.ID, &branch.Name, &branch.CityID)
			return branch, err
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar filiais: %w", err)
	}

	categories, err := queryRows(ctx, r.conn,
		squirrel.Select("cat.category_id", "cat.category_name").
			From("categories cat").
			OrderBy("cat.category_name").
			PlaceholderFormat(squirrel.Dollar),
		func(rows *sql.Rows) (domain.Category, error) {
			var category domain.Category
			err := rows.Scan(&category.ID, &category.Name)
			return category, err
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}

	return &domain.FilterOptions{
		Cities:     cities,
		Branches:   branches,
		Categories: categories,
	}, nil
}
