package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"review-listing/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidColumn    = errors.New("invalid column")
	ErrInvalidOperator  = errors.New("invalid operator")
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrInvalidValue     = errors.New("invalid value")
)

const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// operators maps accepted (lower-cased) operators to their SQL form
var operators = map[string]string{
	"=":    "=",
	"!=":   "<>",
	"<>":   "<>",
	">":    ">",
	">=":   ">=",
	"<":    "<",
	"<=":   "<=",
	"like": "LIKE",
	"in":   "IN",
}

type condition struct {
	column   string
	operator string
	value    any
}

type ordering struct {
	column string
	desc   bool
}

// ReviewQuery is a fluent filter/sort/limit chain over the reviews table.
// A chain is single use and must not be shared between goroutines. The first
// invalid call is kept and returned by the terminal method.
type ReviewQuery struct {
	db     *gorm.DB
	log    *zap.Logger
	conds  []condition
	orders []ordering
	limit  int
	offset int
	err    error
}

func newReviewQuery(db *gorm.DB, log *zap.Logger) *ReviewQuery {
	return &ReviewQuery{db: db, log: log}
}

func (q *ReviewQuery) checkColumn(column string) (string, bool) {
	col := strings.ToLower(strings.TrimSpace(column))
	if _, ok := entity.ReviewColumns[col]; !ok {
		q.err = fmt.Errorf("%w: %q", ErrInvalidColumn, column)
		return "", false
	}
	return col, true
}

// Where adds "column operator value". Conditions are ANDed.
func (q *ReviewQuery) Where(column, operator string, value any) *ReviewQuery {
	if q.err != nil {
		return q
	}

	col, ok := q.checkColumn(column)
	if !ok {
		return q
	}

	op, ok := operators[strings.ToLower(strings.TrimSpace(operator))]
	if !ok {
		q.err = fmt.Errorf("%w: %q", ErrInvalidOperator, operator)
		return q
	}

	if op == "IN" && !isList(value) {
		q.err = fmt.Errorf("%w: IN needs a slice, got %T", ErrInvalidValue, value)
		return q
	}

	q.conds = append(q.conds, condition{column: col, operator: op, value: value})
	return q
}

// OrderBy appends a sort key. An empty direction sorts ascending.
func (q *ReviewQuery) OrderBy(column, direction string) *ReviewQuery {
	if q.err != nil {
		return q
	}

	col, ok := q.checkColumn(column)
	if !ok {
		return q
	}

	var desc bool
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case DirectionAsc, "":
	case DirectionDesc:
		desc = true
	default:
		q.err = fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
		return q
	}

	q.orders = append(q.orders, ordering{column: col, desc: desc})
	return q
}

// Limit caps the result size, n <= 0 removes the cap
func (q *ReviewQuery) Limit(n int) *ReviewQuery {
	if n < 0 {
		n = 0
	}
	q.limit = n
	return q
}

func (q *ReviewQuery) Offset(n int) *ReviewQuery {
	if n < 0 {
		n = 0
	}
	q.offset = n
	return q
}

// Err reports the first invalid call of the chain
func (q *ReviewQuery) Err() error {
	return q.err
}

func isList(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func (q *ReviewQuery) filtered(ctx context.Context) *gorm.DB {
	tx := q.db.WithContext(ctx).Model(&entity.Review{})
	for _, c := range q.conds {
		tx = tx.Where(fmt.Sprintf("%s %s ?", c.column, c.operator), c.value)
	}
	return tx
}

func (q *ReviewQuery) build(ctx context.Context) *gorm.DB {
	tx := q.filtered(ctx)
	for _, o := range q.orders {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.column}, Desc: o.desc})
	}
	if q.limit > 0 {
		tx = tx.Limit(q.limit)
	}
	if q.offset > 0 {
		tx = tx.Offset(q.offset)
	}
	return tx
}

// FindAll runs the chain and returns every matching review
func (q *ReviewQuery) FindAll(ctx context.Context) ([]*entity.Review, error) {
	if q.err != nil {
		return nil, q.err
	}

	reviews := make([]*entity.Review, 0)
	if err := q.build(ctx).Find(&reviews).Error; err != nil {
		q.log.Error("Failed to find reviews",
			zap.Error(err),
			zap.Int("conditions", len(q.conds)),
			zap.Int("limit", q.limit),
			zap.Int("offset", q.offset),
		)
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	return reviews, nil
}

// Find runs the chain limited to one row. It returns nil, nil when nothing matches.
func (q *ReviewQuery) Find(ctx context.Context) (*entity.Review, error) {
	if q.err != nil {
		return nil, q.err
	}

	q.limit = 1
	var reviews []*entity.Review
	if err := q.build(ctx).Find(&reviews).Error; err != nil {
		q.log.Error("Failed to find review", zap.Error(err))
		return nil, fmt.Errorf("find review: %w", err)
	}

	if len(reviews) == 0 {
		return nil, nil
	}
	return reviews[0], nil
}

// Count ignores order, limit and offset
func (q *ReviewQuery) Count(ctx context.Context) (int64, error) {
	if q.err != nil {
		return 0, q.err
	}

	var count int64
	if err := q.filtered(ctx).Count(&count).Error; err != nil {
		q.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}
