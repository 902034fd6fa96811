package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Promotion is a discount code owned by a business. The scheduling core only
// stores the FK and bumps the usage counter best-effort; discount math is the
// caller's business.
type Promotion struct {
	Base
	BusinessID         uuid.UUID      `db:"business_id" json:"business_id"`
	Code               string         `db:"code" json:"code"`
	DiscountType       DiscountType   `db:"discount_type" json:"discount_type"`
	DiscountValue      float64        `db:"discount_value" json:"discount_value"`
	ValidFrom          string         `db:"valid_from" json:"valid_from"`
	ValidTo            string         `db:"valid_to" json:"valid_to"`
	MaxUses            *int           `db:"max_uses" json:"max_uses,omitempty"`
	CurrentUses        int            `db:"current_uses" json:"current_uses"`
	ApplicableServices pq.StringArray `db:"applicable_services" json:"applicable_services"`
	Active             bool           `db:"active" json:"active"`
}

// AppliesTo reports whether the promotion covers the given service. An empty
// allow-list covers everything.
func (p *Promotion) AppliesTo(serviceID uuid.UUID) bool {
	if len(p.ApplicableServices) == 0 {
		return true
	}
	for _, id := range p.ApplicableServices {
		if id == serviceID.String() {
			return true
		}
	}
	return false
}

type CreatePromotionRequest struct {
	Code               string   `json:"code" binding:"required"`
	DiscountType       string   `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue      float64  `json:"discount_value" binding:"required,gt=0"`
	ValidFrom          string   `json:"valid_from" binding:"required,dateonly"`
	ValidTo            string   `json:"valid_to" binding:"required,dateonly"`
	MaxUses            *int     `json:"max_uses"`
	ApplicableServices []string `json:"applicable_services"`
}
