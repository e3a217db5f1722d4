package repository

import (
	"context"
	"strings"

	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"

	"gorm.io/gorm"
)

// searchScope builds a case-insensitive substring match across columns.
// gorm wraps the whole expression in parentheses when it is combined with
// the other filters.
func searchScope(search string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		needle := "%" + strings.ToLower(search) + "%"
		conds := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = needle
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// listPublished runs the shared public-listing query: published only,
// optional category, optional search, fixed sort, offset/limit. dest is a
// pointer to the slice being filled; mdl the entity for counting.
func listPublished(ctx context.Context, db *gorm.DB, mdl interface{}, dest interface{}, q dto.ListQuery, order string, searchCols ...string) (int64, error) {
	tx := db.WithContext(ctx).Model(mdl).
		Where("status = ?", model.ContentPublished).
		Scopes(searchScope(q.Search, searchCols...))
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}

	err := tx.Order(order).Offset(q.Offset()).Limit(q.Limit).Find(dest).Error
	return total, err
}

// softDelete flips an entity to the deleted state; nothing on the HTTP
// surface removes rows physically.
func softDelete(ctx context.Context, db *gorm.DB, mdl interface{}, id uint) error {
	result := db.WithContext(ctx).Model(mdl).
		Where("id = ? AND status <> ?", id, model.ContentDeleted).
		Update("status", model.ContentDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
