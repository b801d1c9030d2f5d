package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"isaacdex/model"
)

type MonsterService struct {
	db *gorm.DB
}

func NewMonsterService(db *gorm.DB) *MonsterService {
	return &MonsterService{db: db}
}

type MonsterPage struct {
	Count    int64           `json:"count"`
	Pages    int             `json:"pages"`
	Page     int             `json:"page"`
	Monsters []model.Monster `json:"monsters"`
}

// MonsterCreate is the creation payload. The wire field for the icon is
// "image"; it is persisted to the icon column.
type MonsterCreate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (s *MonsterService) List(q ListQuery) (*MonsterPage, error) {
	query := s.db.Model(&model.Monster{})

	if q.Q != "" {
		pattern := "%" + strings.ToLower(q.Q) + "%"
		query = query.Where(
			s.db.Where("LOWER(name) LIKE ?", pattern).
				Or("LOWER(description) LIKE ?", pattern))
	}

	query = query.Session(&gorm.Session{})

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, Internal(err)
	}

	monsters := []model.Monster{}
	if err := query.Offset(q.offset()).Limit(q.Limit).Find(&monsters).Error; err != nil {
		return nil, Internal(err)
	}

	return &MonsterPage{
		Count:    count,
		Pages:    totalPages(count, q.Limit),
		Page:     q.Page,
		Monsters: monsters,
	}, nil
}

func (s *MonsterService) Get(id int) (*model.Monster, error) {
	var monster model.Monster
	if err := s.db.First(&monster, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Monster not found")
		}
		return nil, Internal(err)
	}
	return &monster, nil
}

// Create inserts the monster and returns it with the auto-assigned id filled
// in by gorm; there is no re-fetch.
func (s *MonsterService) Create(in MonsterCreate) (*model.Monster, error) {
	monster := &model.Monster{
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Image,
	}
	if err := s.db.Create(monster).Error; err != nil {
		return nil, Internal(err)
	}
	return monster, nil
}

// Patch applies every recognized key present in fields, including explicit
// nulls, which clear the column. Unknown keys are ignored.
func (s *MonsterService) Patch(id int, fields map[string]any) (*model.Monster, error) {
	monster, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		key string
		dst **string
	}{
		{"name", &monster.Name},
		{"description", &monster.Description},
		{"icon", &monster.Icon},
	} {
		value, present := fields[f.key]
		if !present {
			continue
		}
		if value == nil {
			*f.dst = nil
			continue
		}
		text, ok := value.(string)
		if !ok {
			return nil, Validation(f.key + " must be a string or null")
		}
		*f.dst = &text
	}

	if err := s.db.Save(monster).Error; err != nil {
		return nil, Internal(err)
	}
	return monster, nil
}

func (s *MonsterService) Delete(id int) error {
	monster, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(monster).Error; err != nil {
		return Internal(err)
	}
	return nil
}
