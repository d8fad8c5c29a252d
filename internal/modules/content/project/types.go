package project

import "errors"

type CreateProjectDTO struct {
	Title        string   `json:"title"         binding:"required"`
	Description  string   `json:"description"   binding:"required"`
	SoftwareType string   `json:"software_type" binding:"required"`
	Tags         []string `json:"tags"`
	FileURL      string   `json:"file_url"      binding:"required"`
	Screenshots  []string `json:"screenshots"`
	YoutubeURL   string   `json:"youtube_url"`
}

type UpdateProjectDTO struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	SoftwareType *string   `json:"software_type"`
	Tags         *[]string `json:"tags"`
	FileURL      *string   `json:"file_url"`
	Screenshots  *[]string `json:"screenshots"`
	YoutubeURL   *string   `json:"youtube_url"`
}

var (
	errProjectNotFound = errors.New("project not found")
	errNotProjectOwner = errors.New("not the project owner")
	errTitleTooLong    = errors.New("title too long")
)
