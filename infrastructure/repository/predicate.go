package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-insights-api/internal/domain"
)

const (
	salesTable = "sales s"

	joinBranches   = "branches b ON b.branch_id = s.branch_id"
	joinDistricts  = "districts d ON d.district_id = b.district_id"
	joinCities     = "cities c ON c.city_id = d.city_id"
	joinLineItems  = "sale_line_items li ON li.sale_id = s.sale_id"
	joinProducts   = "products p ON p.product_id = li.product_id"
	joinCategories = "categories cat ON cat.category_id = p.category_id"

	saleRevenue     = "COALESCE(SUM(s.amount), 0)"
	saleUnits       = "COALESCE(SUM(s.unit_count), 0)"
	lineItemRevenue = "COALESCE(SUM(li.quantity * li.unit_price), 0)"
	lineItemUnits   = "COALESCE(SUM(li.quantity), 0)"

	cityFilter     = "s.branch_id IN (SELECT b2.branch_id FROM branches b2 JOIN districts d2 ON d2.district_id = b2.district_id WHERE d2.city_id = ?)"
	categoryFilter = "li.product_id IN (SELECT p2.product_id FROM products p2 WHERE p2.category_id = ?)"
)

// salesQuery inicia uma consulta sobre a tabela de vendas. Com filtro de categoria
// os itens de venda entram no join e a receita passa a ser a soma dos itens.
func salesQuery(predicate domain.Predicate, lineItems bool, columns ...string) squirrel.SelectBuilder {
	query := squirrel.
		Select(columns...).
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	if lineItems || predicate.HasCategory() {
		query = query.Join(joinLineItems)
	}
	return query
}

// revenueColumn retorna a expressão de receita adequada ao predicado
func revenueColumn(predicate domain.Predicate, lineItems bool) string {
	if lineItems || predicate.HasCategory() {
		return lineItemRevenue
	}
	return saleRevenue
}

func unitsColumn(predicate domain.Predicate, lineItems bool) string {
	if lineItems || predicate.HasCategory() {
		return lineItemUnits
	}
	return saleUnits
}

// applyPredicate adiciona à consulta as condições do predicado
func applyPredicate(query squirrel.SelectBuilder, predicate domain.Predicate) squirrel.SelectBuilder {
	if clause := timeClause(predicate.Time); clause != nil {
		query = query.Where(clause)
	}
	if predicate.BranchID != nil {
		query = query.Where(squirrel.Eq{"s.branch_id": *predicate.BranchID})
	}
	if predicate.CityID != nil {
		query = query.Where(squirrel.Expr(cityFilter, *predicate.CityID))
	}
	if predicate.CategoryID != nil {
		query = query.Where(squirrel.Expr(categoryFilter, *predicate.CategoryID))
	}
	return query
}

// timeClause converte o recorte temporal em condição SQL. Retorna nil sem recorte.
func timeClause(tp domain.TimePredicate) squirrel.Sqlizer {
	switch tp.Kind {
	case domain.TimeBetween:
		return squirrel.Expr(
			fmt.Sprintf("%s::date BETWEEN ? AND ?", tp.Column),
			tp.Start.Format(time.DateOnly),
			tp.End.Format(time.DateOnly),
		)
	case domain.TimeYear:
		return squirrel.Expr(fmt.Sprintf("EXTRACT(YEAR FROM %s) = ?", tp.Column), tp.Year)
	case domain.TimeSince:
		return squirrel.GtOrEq{tp.Column: tp.Start}
	case domain.TimeRange:
		return squirrel.And{
			squirrel.GtOrEq{tp.Column: tp.Start},
			squirrel.Lt{tp.Column: tp.End},
		}
	default:
		return nil
	}
}
