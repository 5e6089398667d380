package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"deal_service/internal/domain"
	"deal_service/pkg/errcodes"
)

const (
	DealTitleMaxLen = 255
	// NUMERIC(12, 2): десять цифр до запятой, две после.
	dealValueScale = 2
)

//nolint:gochecknoglobals
var dealValueLimit = decimal.New(1, 10)

// Deal связывает компанию, необязательного дистрибьютора, теги и сумму.
type Deal struct {
	ID            int64
	Title         string
	CompanyID     int64
	DistributorID *int64
	TagIDs        []int64
	Value         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (d Deal) String() string {
	return fmt.Sprintf("%s (%d)", d.Title, d.CompanyID)
}

// DealCreate — входные данные для создания сделки.
type DealCreate struct {
	Title         string
	CompanyID     int64
	Value         decimal.Decimal
	TagIDs        []int64
	DistributorID *int64
}

func (c DealCreate) Validate() error {
	if err := validateTitle(c.Title); err != nil {
		return err
	}

	if c.CompanyID <= 0 {
		return domain.NewError(errcodes.InvalidCompanyID, "company id must be positive")
	}

	if c.DistributorID != nil && *c.DistributorID < 0 {
		return domain.NewError(errcodes.InvalidDistributorID, "distributor id must not be negative")
	}

	return ValidateDealValue(c.Value)
}

// HasDistributor: нулевой идентификатор означает «без дистрибьютора».
func (c DealCreate) HasDistributor() bool {
	return c.DistributorID != nil && *c.DistributorID != 0
}

// DealUpdate — частичное обновление. nil-поле не меняет сохранённое
// значение; TagIDs != nil (в том числе пустой срез) заменяет набор тегов целиком.
type DealUpdate struct {
	Title         *string
	DistributorID *int64
	TagIDs        []int64
	Value         *decimal.Decimal
}

func (u DealUpdate) Validate() error {
	if u.Title != nil {
		if err := validateTitle(*u.Title); err != nil {
			return err
		}
	}

	if u.DistributorID != nil && *u.DistributorID < 0 {
		return domain.NewError(errcodes.InvalidDistributorID, "distributor id must not be negative")
	}

	if u.Value != nil {
		return ValidateDealValue(*u.Value)
	}

	return nil
}

// HasDistributor сообщает, нужно ли перепривязывать дистрибьютора.
// Ноль трактуется как «без изменений», а не как «отвязать».
func (u DealUpdate) HasDistributor() bool {
	return u.DistributorID != nil && *u.DistributorID != 0
}

func (u DealUpdate) ReplacesTags() bool {
	return u.TagIDs != nil
}

// ValidateDealValue проверяет, что сумма положительна и помещается в NUMERIC(12, 2).
func ValidateDealValue(value decimal.Decimal) error {
	if !value.IsPositive() {
		return domain.NewError(errcodes.InvalidDealValue, "value must be positive")
	}

	if !value.Equal(value.Truncate(dealValueScale)) {
		return domain.Errorf(errcodes.InvalidDealValue, "value must have at most %d decimal places", dealValueScale)
	}

	if value.GreaterThanOrEqual(dealValueLimit) {
		return domain.NewError(errcodes.InvalidDealValue, "value must have at most 12 digits")
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return domain.NewError(errcodes.InvalidDealTitle, "title must not be blank")
	}

	if utf8.RuneCountInString(title) > DealTitleMaxLen {
		return domain.Errorf(errcodes.InvalidDealTitle, "title must be at most %d characters", DealTitleMaxLen)
	}

	return nil
}
