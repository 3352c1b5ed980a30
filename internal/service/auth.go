package service

import (
	"context"
	"errors"

	"protender-api/internal/common"
	"protender-api/internal/entity"
	"protender-api/internal/repo"
	"protender-api/internal/repo/repo_errors"
)

type AuthService struct {
	userRepo    repo.User
	companyRepo repo.Company
	tokens      TokenManager
	hasher      PasswordHasher
}

func NewAuthService(repos *repo.Repositories, tokens TokenManager, hasher PasswordHasher) *AuthService {
	return &AuthService{
		userRepo:    repos.User,
		companyRepo: repos.Company,
		tokens:      tokens,
		hasher:      hasher,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.AuthOutputModel, error) {
	exists, err := s.userRepo.DoesUserExistByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, &entity.CreateUserInput{
		Email:          email,
		PasswordDigest: digest,
		Role:           common.RoleCompany,
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return s.authOutput(user)
}

// Login reports ErrInvalidCredentials for an unknown email and for a wrong password alike.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.AuthOutputModel, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordDigest) {
		return nil, ErrInvalidCredentials
	}

	return s.authOutput(user)
}

func (s *AuthService) authOutput(user *entity.User) (*entity.AuthOutputModel, error) {
	token, err := s.tokens.Issue(&entity.Identity{Id: user.Id, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, err
	}

	return &entity.AuthOutputModel{User: mapUser(user), Token: token}, nil
}

func (s *AuthService) Authenticate(token string) (*entity.Identity, error) {
	identity, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return identity, nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, identity *entity.Identity) (*entity.CurrentUserOutputModel, error) {
	output := &entity.CurrentUserOutputModel{User: mapIdentity(identity)}

	company, err := s.companyRepo.GetCompanyByUserId(ctx, identity.Id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return output, nil
		}

		return nil, err
	}
	output.Company = mapCompany(company)

	return output, nil
}
