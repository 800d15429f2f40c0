// internal/domain/address/service.go
package address

import (
	"errors"
	"strings"

	"github.com/your-org/storefront-backend/internal/pkg/apperror"
	"gorm.io/gorm"
)

// Service handles address book business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new address service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateAddressRequest represents address creation data
type CreateAddressRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ZipCode   string `json:"zip_code" binding:"required"`
	Address1  string `json:"address1" binding:"required"`
	Address2  string `json:"address2"`
	IsDefault bool   `json:"is_default"`
}

// UpdateAddressRequest represents address update data
type UpdateAddressRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ZipCode   string `json:"zip_code" binding:"required"`
	Address1  string `json:"address1" binding:"required"`
	Address2  string `json:"address2"`
	IsDefault bool   `json:"is_default"`
}

// List retrieves all addresses for a customer, default first, then most
// recently updated, then newest id. An empty address book is not an error.
func (s *Service) List(customerID uint) ([]Address, error) {
	var addresses []Address
	err := s.db.
		Where("customer_id = ?", customerID).
		Order("is_default DESC, updated_at DESC, id DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, apperror.Store("failed to retrieve addresses", err)
	}
	return addresses, nil
}

// Get retrieves a specific address owned by the customer
func (s *Service) Get(customerID, addressID uint) (*Address, error) {
	var addr Address
	err := s.db.Where("id = ? AND customer_id = ?", addressID, customerID).First(&addr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("address not found")
		}
		return nil, apperror.Store("failed to retrieve address", err)
	}
	return &addr, nil
}

// Create creates a new address. The customer's first address always becomes
// the default; otherwise the request decides. Clearing existing defaults and
// inserting the new row happen in one transaction so concurrent creates can
// never leave two rows marked default.
func (s *Service) Create(customerID uint, req *CreateAddressRequest) (*Address, error) {
	if err := validateFields(req.Recipient, req.Phone, req.ZipCode, req.Address1); err != nil {
		return nil, err
	}

	addr := Address{
		CustomerID: customerID,
		Recipient:  strings.TrimSpace(req.Recipient),
		Phone:      strings.TrimSpace(req.Phone),
		ZipCode:    strings.TrimSpace(req.ZipCode),
		Address1:   strings.TrimSpace(req.Address1),
		Address2:   strings.TrimSpace(req.Address2),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Address{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
			return err
		}

		addr.IsDefault = req.IsDefault || count == 0

		if addr.IsDefault {
			if err := clearDefaults(tx, customerID); err != nil {
				return err
			}
		}

		return tx.Create(&addr).Error
	})
	if err != nil {
		return nil, apperror.Store("failed to create address", err)
	}

	return &addr, nil
}

// Update rewrites an address's fields. Setting it default clears the
// customer's other defaults inside the same transaction.
func (s *Service) Update(customerID, addressID uint, req *UpdateAddressRequest) (*Address, error) {
	if err := validateFields(req.Recipient, req.Phone, req.ZipCode, req.Address1); err != nil {
		return nil, err
	}

	addr, err := s.Get(customerID, addressID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := clearDefaults(tx, customerID); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"recipient": strings.TrimSpace(req.Recipient),
			"phone":     strings.TrimSpace(req.Phone),
			"zip_code":  strings.TrimSpace(req.ZipCode),
			"address1":  strings.TrimSpace(req.Address1),
			"address2":  strings.TrimSpace(req.Address2),
		}
		if req.IsDefault {
			updates["is_default"] = true
		}

		return tx.Model(addr).Updates(updates).Error
	})
	if err != nil {
		return nil, apperror.Store("failed to update address", err)
	}

	return s.Get(customerID, addressID)
}

// SetDefault marks one address as the customer's default
func (s *Service) SetDefault(customerID, addressID uint) error {
	addr, err := s.Get(customerID, addressID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := clearDefaults(tx, customerID); err != nil {
			return err
		}
		return tx.Model(addr).Update("is_default", true).Error
	})
	if err != nil {
		return apperror.Store("failed to set default address", err)
	}
	return nil
}

// Delete removes an address. Deleting the current default promotes the most
// recently updated remaining address in the same transaction, so there is no
// window in which the customer owns addresses but no default.
func (s *Service) Delete(customerID, addressID uint) error {
	addr, err := s.Get(customerID, addressID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(addr).Error; err != nil {
			return err
		}

		if !addr.IsDefault {
			return nil
		}

		var next Address
		err := tx.
			Where("customer_id = ?", customerID).
			Order("updated_at DESC, id DESC").
			First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return tx.Model(&next).Update("is_default", true).Error
	})
	if err != nil {
		return apperror.Store("failed to delete address", err)
	}
	return nil
}

// clearDefaults removes the default flag from all of a customer's addresses
func clearDefaults(tx *gorm.DB, customerID uint) error {
	return tx.Model(&Address{}).
		Where("customer_id = ? AND is_default = ?", customerID, true).
		Update("is_default", false).Error
}

func validateFields(recipient, phone, zipCode, address1 string) error {
	if strings.TrimSpace(recipient) == "" {
		return apperror.Validation("recipient is required")
	}
	if strings.TrimSpace(phone) == "" {
		return apperror.Validation("phone is required")
	}
	if strings.TrimSpace(zipCode) == "" {
		return apperror.Validation("zip code is required")
	}
	if strings.TrimSpace(address1) == "" {
		return apperror.Validation("address line 1 is required")
	}
	return nil
}
