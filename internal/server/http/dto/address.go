package dto

import "github.com/dmarkhas/gameshop/internal/domain/model"

// AddressRequest describes a new address book entry.
type AddressRequest struct {
	Street    string `json:"street" binding:"required"`
	Apartment string `json:"apartment"`
	ZipCode   string `json:"zip_code" binding:"required"`
	City      string `json:"city" binding:"required"`
	Country   string `json:"country" binding:"required"`
	Type      string `json:"type" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// Model converts the request into the domain address owned by userID.
func (r AddressRequest) Model(userID int64) *model.Address {
	return &model.Address{
		UserID:    userID,
		Street:    r.Street,
		Apartment: r.Apartment,
		ZipCode:   r.ZipCode,
		City:      r.City,
		Country:   r.Country,
		Type:      model.AddressType(r.Type),
		IsDefault: r.IsDefault,
	}
}

// AddressResponse is an address as exposed over the API.
type AddressResponse struct {
	ID        int64  `json:"id"`
	Street    string `json:"street"`
	Apartment string `json:"apartment,omitempty"`
	ZipCode   string `json:"zip_code"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Type      string `json:"type"`
	IsDefault bool   `json:"is_default"`
}

// NewAddressResponse maps an address to its API shape.
func NewAddressResponse(a model.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		Street:    a.Street,
		Apartment: a.Apartment,
		ZipCode:   a.ZipCode,
		City:      a.City,
		Country:   a.Country,
		Type:      string(a.Type),
		IsDefault: a.IsDefault,
	}
}

// NewAddressListResponse maps an address slice to its API shape.
func NewAddressListResponse(addresses []model.Address) []AddressResponse {
	result := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		result = append(result, NewAddressResponse(a))
	}
	return result
}
