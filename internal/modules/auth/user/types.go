package user

type UpdateProfileDTO struct {
	Name        *string `json:"name"`
	FullName    *string `json:"full_name"`
	AvatarURL   *string `json:"avatar_url"`
	JobTitle    *string `json:"job_title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Website     *string `json:"website"`
	LinkedinURL *string `json:"linkedin_url"`
}

// fields maps the set pointers onto a gorm update map.
func (dto *UpdateProfileDTO) fields() map[string]interface{} {
	updates := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	set("name", dto.Name)
	set("full_name", dto.FullName)
	set("avatar_url", dto.AvatarURL)
	set("job_title", dto.JobTitle)
	set("company", dto.Company)
	set("location", dto.Location)
	set("website", dto.Website)
	set("linkedin_url", dto.LinkedinURL)
	return updates
}
