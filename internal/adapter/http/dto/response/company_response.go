package response

import "os_pro/internal/domain/entities"

type CompanyResponse struct {
	Name    string `json:"name"`
	Logo    string `json:"logo,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

func FromCompany(p entities.CompanyProfile) CompanyResponse {
	return CompanyResponse{
		Name:    p.Name,
		Logo:    p.Logo,
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
	}
}
