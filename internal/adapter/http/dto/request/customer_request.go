package request

import "os_pro/internal/domain/entities"

type CustomerRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Document string `json:"document"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Document: r.Document,
	}
}
