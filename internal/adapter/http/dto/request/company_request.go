package request

import "os_pro/internal/domain/entities"

type CompanyRequest struct {
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (r CompanyRequest) ToEntity() entities.CompanyProfile {
	return entities.CompanyProfile{
		Name:    r.Name,
		Logo:    r.Logo,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

type SuggestFixRequest struct {
	Problem string `json:"problem" binding:"required"`
}
