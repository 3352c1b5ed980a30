package service

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrNoCompanyProfile     = errors.New("company not found")
	ErrCompanyNotFound      = errors.New("company does not exist")
	ErrCompanyNotOwned      = errors.New("company not found or unauthorized")
	ErrCompanyAlreadyExists = errors.New("user already has a company profile")

	ErrCompanyRequiredForTender       = errors.New("company profile required to create tenders")
	ErrCompanyRequiredForApplication  = errors.New("company profile required to apply to tenders")
	ErrCompanyRequiredForGoodsService = errors.New("company profile required to add goods/services")

	ErrNoFileUploaded       = errors.New("no file uploaded")
	ErrUnsupportedMediaType = errors.New("only image files are allowed")
	ErrFileTooLarge         = errors.New("file too large")

	ErrGoodsServiceNotOwned = errors.New("goods/service not found or unauthorized")

	ErrTenderNotFound = errors.New("tender not found")
	ErrTenderNotOwned = errors.New("tender not found or unauthorized")
	ErrTenderInactive = errors.New("tender not found or inactive")

	ErrAlreadyApplied           = errors.New("already applied to this tender")
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationNotOwned      = errors.New("application not found or unauthorized")
	ErrApplicationsNotOwned     = errors.New("applications not found or unauthorized")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
)
