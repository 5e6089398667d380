package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	DealNotFound        failure.ErrorCode = "DealNotFound"
	CompanyNotFound     failure.ErrorCode = "CompanyNotFound"
	DistributorNotFound failure.ErrorCode = "DistributorNotFound"
	TagNotFound         failure.ErrorCode = "TagNotFound"
	TagAlreadyExists    failure.ErrorCode = "TagAlreadyExists"

	InvalidDealID        failure.ErrorCode = "InvalidDealID"
	InvalidCompanyID     failure.ErrorCode = "InvalidCompanyID"
	InvalidDistributorID failure.ErrorCode = "InvalidDistributorID"
	InvalidTagID         failure.ErrorCode = "InvalidTagID"
	InvalidDealTitle     failure.ErrorCode = "InvalidDealTitle"
	InvalidDealValue     failure.ErrorCode = "InvalidDealValue"
	InvalidName          failure.ErrorCode = "InvalidName"
)
