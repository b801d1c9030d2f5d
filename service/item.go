package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"isaacdex/model"
)

// Sort keys accepted by the item listing. Anything else falls back to the
// table's natural order.
const (
	SortAlphabeticalAsc  = "alphabetical-asc"
	SortAlphabeticalDesc = "alphabetical-desc"
	SortQualityAsc       = "quality-asc"
	SortQualityDesc      = "quality-desc"
)

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// ItemPage is one page of the item listing. Count is the post-filter,
// pre-pagination total.
type ItemPage struct {
	Count int64        `json:"count"`
	Pages int          `json:"pages"`
	Page  int          `json:"page"`
	Items []model.Item `json:"items"`
}

// ItemPatch carries a partial update. Fields left nil are not touched; an
// explicit JSON null binds to nil too, so nulls never clear a column here.
type ItemPatch struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	ShortDescription *string   `json:"short_description"`
	Quality          *int      `json:"quality"`
	Type             *string   `json:"type"`
	Icon             *string   `json:"icon"`
	ItemPool         *[]string `json:"item_pool"`
}

func (s *ItemService) List(q ListQuery, sort string) (*ItemPage, error) {
	query := s.db.Model(&model.Item{})

	if q.Q != "" {
		pattern := "%" + strings.ToLower(q.Q) + "%"
		query = query.Where(
			s.db.Where("LOWER(title) LIKE ?", pattern).
				Or("LOWER(short_description) LIKE ?", pattern).
				Or("LOWER(description) LIKE ?", pattern))
	}

	switch sort {
	case SortAlphabeticalAsc:
		query = query.Order("title ASC")
	case SortAlphabeticalDesc:
		query = query.Order("title DESC")
	case SortQualityAsc:
		query = query.Order("quality ASC NULLS LAST")
	case SortQualityDesc:
		query = query.Order("quality DESC NULLS LAST")
	}

	// Two finishers run on this chain (Count, then Find).
	query = query.Session(&gorm.Session{})

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, Internal(err)
	}

	items := []model.Item{}
	if err := query.Offset(q.offset()).Limit(q.Limit).Find(&items).Error; err != nil {
		return nil, Internal(err)
	}

	return &ItemPage{
		Count: count,
		Pages: totalPages(count, q.Limit),
		Page:  q.Page,
		Items: items,
	}, nil
}

func (s *ItemService) Get(id int) (*model.Item, error) {
	var item model.Item
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Item not found")
		}
		return nil, Internal(err)
	}
	return &item, nil
}

func (s *ItemService) Patch(id int, patch ItemPatch) (*model.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		item.Title = patch.Title
	}
	if patch.Description != nil {
		item.Description = patch.Description
	}
	if patch.ShortDescription != nil {
		item.ShortDescription = patch.ShortDescription
	}
	if patch.Quality != nil {
		item.Quality = patch.Quality
	}
	if patch.Type != nil {
		item.Type = patch.Type
	}
	if patch.Icon != nil {
		item.Icon = patch.Icon
	}
	if patch.ItemPool != nil {
		item.ItemPool = *patch.ItemPool
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, Internal(err)
	}
	return item, nil
}

func (s *ItemService) Delete(id int) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return Internal(err)
	}
	return nil
}
