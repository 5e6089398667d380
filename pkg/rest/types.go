// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal Сделка
type Deal struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	CompanyID     int64     `json:"companyId"`
	DistributorID *int64    `json:"distributorId"`
	Tags          []int64   `json:"tags"`
	Value         string    `json:"value"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DealList Список сделок
type DealList struct {
	Deals []Deal `json:"deals"`
}

// CreateDealRequest Запрос на создание сделки
type CreateDealRequest struct {
	Title         string          `json:"title" validate:"required,max=255"`
	CompanyID     int64           `json:"companyId" validate:"required,gt=0"`
	Value         decimal.Decimal `json:"value"`
	Tags          []int64         `json:"tags" validate:"omitempty,dive,gt=0"`
	DistributorID *int64          `json:"distributorId" validate:"omitempty,min=0"`
}

// UpdateDealRequest Запрос на частичное обновление сделки. Отсутствующее
// или null поле не изменяется.
type UpdateDealRequest struct {
	Title         *string          `json:"title" validate:"omitempty,max=255"`
	DistributorID *int64           `json:"distributorId" validate:"omitempty,min=0"`
	Tags          []int64          `json:"tags" validate:"omitempty,dive,gt=0"`
	Value         *decimal.Decimal `json:"value"`
}

// DeleteResult Результат удаления
type DeleteResult struct {
	Success bool `json:"success"`
}

// Company Компания
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CompanyList struct {
	Companies []Company `json:"companies"`
}

type CreateCompanyRequest struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Address *string `json:"address"`
}

// Distributor Дистрибьютор
type Distributor struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type DistributorList struct {
	Distributors []Distributor `json:"distributors"`
}

type CreateDistributorRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email,max=254"`
}

// Tag Тег
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TagList struct {
	Tags []Tag `json:"tags"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`

	// Fields Ошибки валидации по полям
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError Ошибка валидации одного поля
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
