package models

// TitleMaxLength caps the project title, mirroring the schema constraint.
const TitleMaxLength = 100

// ProjectModel stores an uploaded simulation project.
type ProjectModel struct {
	Base
	Title        string      `json:"title"         gorm:"not null"`
	Description  string      `json:"description"   gorm:"type:text;not null"`
	SoftwareType string      `json:"software_type" gorm:"index;not null"`
	Tags         StringArray `json:"tags"          gorm:"type:longtext"`
	FileURL      string      `json:"file_url"      gorm:"not null"`
	Screenshots  StringArray `json:"screenshots"   gorm:"type:longtext"`
	YoutubeURL   string      `json:"youtube_url"`
	AuthorID     string      `json:"author_id"     gorm:"index;not null"`
	Downloads    int         `json:"downloads"     gorm:"default:0"`
	Likes        int         `json:"likes"         gorm:"default:0"`
}

func (ProjectModel) TableName() string { return "projects" }
