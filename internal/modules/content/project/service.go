package project

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/engisim/core/internal/models"
	"github.com/engisim/core/internal/pkg/pagination"
	"github.com/engisim/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Create(authorID string, dto *CreateProjectDTO) (*models.ProjectModel, error) {
	title := strings.TrimSpace(dto.Title)
	if utf8.RuneCountInString(title) > models.TitleMaxLength {
		return nil, errTitleTooLong
	}

	p := models.ProjectModel{
		Title:        title,
		Description:  dto.Description,
		SoftwareType: dto.SoftwareType,
		Tags:         dto.Tags,
		FileURL:      dto.FileURL,
		Screenshots:  dto.Screenshots,
		YoutubeURL:   dto.YoutubeURL,
		AuthorID:     authorID,
	}
	return &p, s.db.Create(&p).Error
}

func (s *Service) List(q pagination.Query, software string) ([]models.ProjectModel, response.Pagination, error) {
	tx := s.db.Model(&models.ProjectModel{}).Order("created_at DESC")
	if software != "" && !strings.EqualFold(software, "all") {
		tx = tx.Where("software_type = ?", software)
	}

	var projects []models.ProjectModel
	pag, err := pagination.Paginate(tx, q, &projects)
	return projects, pag, err
}

func (s *Service) ListByAuthor(authorID string) ([]models.ProjectModel, error) {
	var projects []models.ProjectModel
	return projects, s.db.Where("author_id = ?", authorID).
		Order("created_at DESC").Find(&projects).Error
}

func (s *Service) GetByID(id string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Update(id, userID string, dto *UpdateProjectDTO) (*models.ProjectModel, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != userID {
		return nil, errNotProjectOwner
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if utf8.RuneCountInString(title) > models.TitleMaxLength {
			return nil, errTitleTooLong
		}
		updates["title"] = title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.SoftwareType != nil {
		updates["software_type"] = *dto.SoftwareType
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringArray(*dto.Tags)
	}
	if dto.FileURL != nil {
		updates["file_url"] = *dto.FileURL
	}
	if dto.Screenshots != nil {
		updates["screenshots"] = models.StringArray(*dto.Screenshots)
	}
	if dto.YoutubeURL != nil {
		updates["youtube_url"] = *dto.YoutubeURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(p).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id, userID string) error {
	p, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if p.AuthorID != userID {
		return errNotProjectOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.LikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.BookmarkModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProjectModel{}, "id = ?", id).Error
	})
}

// RegisterDownload bumps the download counter and returns the file URL.
func (s *Service) RegisterDownload(id string) (*models.ProjectModel, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(p).
		UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error; err != nil {
		return nil, err
	}
	p.Downloads++
	return p, nil
}
