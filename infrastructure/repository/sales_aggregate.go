// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/internal/usecases/dashboard"
)

type salesAggregateRepository struct {
	conn postgres.Queryer
}

// NewSalesAggregateRepository cria o repositório de agregados de vendas
func NewSalesAggregateRepository(conn postgres.Queryer) dashboard.AggregateFetcher {
	return &salesAggregateRepository{
		conn: conn,
	}
}

func (r *salesAggregateRepository) GetTotals(ctx context.Context, predicate domain.Predicate) (*domain.SalesTotals, error) {
	query := salesQuery(predicate, false,
		revenueColumn(predicate, false),
		unitsColumn(predicate, false),
	)
	query = applyPredicate(query, predicate)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.SalesTotals{}
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&totals.Revenue, &totals.Units); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.SalesTotals{Revenue: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("erro ao consultar totais de vendas: %w", err)
	}

	return totals, nil
}

func (r *salesAggregateRepository) GetTopBranch(ctx context.Context, predicate domain.Predicate) (*domain.NamedRevenue, error) {
	branches, err := queryRows(ctx, r.conn, branchRevenueQuery(predicate).Limit(1), scanNamedRevenue)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar filial destaque: %w", err)
	}
	if len(branches) == 0 {
		return nil, nil
	}
	return &branches[0], nil
}

func (r *salesAggregateRepository) GetTopProduct(ctx context.Context, predicate domain.Predicate) (*domain.ProductAggregate, error) {
	products, err := r.GetTopProducts(ctx, predicate, 1)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

func (r *salesAggregateRepository) GetTopProducts(ctx context.Context, predicate domain.Predicate, limit int) ([]domain.ProductAggregate, error) {
	query := salesQuery(predicate, true,
		"p.product_name",
		"cat.category_name",
		lineItemUnits+" AS units_sold",
		lineItemRevenue+" AS revenue",
	).
		Join(joinProducts).
		Join(joinCategories).
		GroupBy("p.product_id", "p.product_name", "cat.category_name").
		OrderBy("units_sold DESC", "p.product_name")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	query = applyPredicate(query, predicate)

	products, err := queryRows(ctx, r.conn, query, func(rows *sql.Rows) (domain.ProductAggregate, error) {
		var product domain.ProductAggregate
		err := rows.Scan(&product.ProductName, &product.CategoryName, &product.UnitsSold, &product.Revenue)
		return product, err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos mais vendidos: %w", err)
	}
	return products, nil
}

func (r *salesAggregateRepository) GetMonthlySales(ctx context.Context, predicate domain.Predicate) ([]domain.SaleAggregate, error) {
	query := salesQuery(predicate, false,
		"TO_CHAR(DATE_TRUNC('month', s.sale_date), 'YYYY-MM') AS period",
		revenueColumn(predicate, false)+" AS revenue",
		unitsColumn(predicate, false)+" AS unit_count",
	).
		GroupBy("period").
		OrderBy("period")
	query = applyPredicate(query, predicate)

	sales, err := queryRows(ctx, r.conn, query, func(rows *sql.Rows) (domain.SaleAggregate, error) {
		var sale domain.SaleAggregate
		err := rows.Scan(&sale.Period, &sale.Revenue, &sale.UnitCount)
		return sale, err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas mensais: %w", err)
	}
	return sales, nil
}

func (r *salesAggregateRepository) GetBranchRevenue(ctx context.Context, predicate domain.Predicate) ([]domain.NamedRevenue, error) {
	branches, err := queryRows(ctx, r.conn, branchRevenueQuery(predicate), scanNamedRevenue)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar receita por filial: %w", err)
	}
	return branches, nil
}

// GetCategoryRevenue soma os itens de venda por categoria, independente do filtro
func (r *salesAggregateRepository) GetCategoryRevenue(ctx context.Context, predicate domain.Predicate) ([]domain.CategoryAggregate, error) {
	query := salesQuery(predicate, true,
		"cat.category_name",
		lineItemRevenue+" AS revenue",
	).
		Join(joinProducts).
		Join(joinCategories).
		GroupBy("cat.category_id", "cat.category_name").
		OrderBy("revenue DESC", "cat.category_name")
	query = applyPredicate(query, predicate)

	categories, err := queryRows(ctx, r.conn, query, func(rows *sql.Rows) (domain.CategoryAggregate, error) {
		var category domain.CategoryAggregate
		err := rows.Scan(&category.CategoryName, &category.Revenue)
		return category, err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar receita por categoria: %w", err)
	}
	return categories, nil
}

func (r *salesAggregateRepository) GetCityRevenue(ctx context.Context, predicate domain.Predicate) ([]domain.NamedRevenue, error) {
	query := salesQuery(predicate, false,
		"c.city_name",
		revenueColumn(predicate, false)+" AS revenue",
	).
		Join(joinBranches).
		Join(joinDistricts).
		Join(joinCities).
		GroupBy("c.city_id", "c.city_name").
		OrderBy("revenue DESC", "c.city_name")
	query = applyPredicate(query, predicate)

	cities, err := queryRows(ctx, r.conn, query, scanNamedRevenue)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar receita por cidade: %w", err)
	}
	return cities, nil
}

func (r *salesAggregateRepository) GetBranchPerformance(ctx context.Context, predicate domain.Predicate) ([]domain.BranchAggregate, error) {
	query := salesQuery(predicate, false,
		"b.branch_name",
		"c.city_name",
		revenueColumn(predicate, false)+" AS revenue",
		"COUNT(DISTINCT s.sale_id) AS transaction_count",
	).
		Join(joinBranches).
		Join(joinDistricts).
		Join(joinCities).
		GroupBy("b.branch_id", "b.branch_name", "c.city_name").
		OrderBy("c.city_name", "b.branch_name")
	query = applyPredicate(query, predicate)

	branches, err := queryRows(ctx, r.conn, query, func(rows *sql.Rows) (domain.BranchAggregate, error) {
		var branch domain.BranchAggregate
		if err := rows.Scan(&branch.BranchName, &branch.CityName, &branch.Revenue, &branch.TransactionCount); err != nil {
			return branch, err
		}

		branch.AverageBasket = decimal.Zero
		if branch.TransactionCount > 0 {
			branch.AverageBasket = branch.Revenue.Div(decimal.NewFromInt(branch.TransactionCount))
		}
		return branch, nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar desempenho das filiais: %w", err)
	}
	return branches, nil
}

func (r *salesAggregateRepository) GetDistrictPerformance(ctx context.Context, predicate domain.Predicate) ([]domain.DistrictAggregate, error) {
	query := salesQuery(predicate, false,
		"d.district_name",
		"c.city_name",
		"COALESCE(d.population, 0) AS population",
		"COUNT(DISTINCT b.branch_id) AS branch_count",
		revenueColumn(predicate, false)+" AS region_revenue",
	).
		Join(joinBranches).
		Join(joinDistricts).
		Join(joinCities).
		GroupBy("d.district_id", "d.district_name", "c.city_name", "d.population").
		OrderBy("c.city_name", "d.district_name")
	query = applyPredicate(query, predicate)

	districts, err := queryRows(ctx, r.conn, query, func(rows *sql.Rows) (domain.DistrictAggregate, error) {
		var district domain.DistrictAggregate
		err := rows.Scan(&district.DistrictName, &district.CityName, &district.Population, &district.BranchCount, &district.RegionRevenue)
		return district, err
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar desempenho das regiões: %w", err)
	}
	return districts, nil
}

func branchRevenueQuery(predicate domain.Predicate) squirrel.SelectBuilder {
	query := salesQuery(predicate, false,
		"b.branch_name",
		revenueColumn(predicate, false)+" AS revenue",
	).
		Join(joinBranches).
		GroupBy("b.branch_id", "b.branch_name").
		OrderBy("revenue DESC", "b.branch_name")
	return applyPredicate(query, predicate)
}

func scanNamedRevenue(rows *sql.Rows) (domain.NamedRevenue, error) {
	var item domain.NamedRevenue
	err := rows.Scan(&item.Name, &item.Revenue)
	return item, err
}

// queryRows executa a consulta e converte cada linha com scan
func queryRows[T any](ctx context.Context, conn postgres.Queryer, query squirrel.SelectBuilder, scan func(*sql.Rows) (T, error)) ([]T, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
