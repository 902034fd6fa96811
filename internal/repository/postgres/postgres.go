package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/salonbase/booking-api/internal/repository"
)

type businessRepository struct {
	db *sqlx.DB
}

type serviceRepository struct {
	db *sqlx.DB
}

type staffRepository struct {
	db *sqlx.DB
}

type blockedDateRepository struct {
	db *sqlx.DB
}

type promotionRepository struct {
	db *sqlx.DB
}

func NewBusinessRepository(db *sqlx.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func NewStaffRepository(db *sqlx.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func NewBlockedDateRepository(db *sqlx.DB) repository.BlockedDateRepository {
	return &blockedDateRepository{db: db}
}

func NewPromotionRepository(db *sqlx.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}
