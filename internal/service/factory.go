package service

import "users-api/internal/repository"

//go:generate mockgen -destination=mocks/service_mock.go -package=mocks users-api/internal/service AuthService,UserService,Factory

// Factory builds services bound to a request-scoped connection
type Factory interface {
	Auth(db repository.DBTX) AuthService
	Users(db repository.DBTX) UserService
}

type factory struct {
	credentials CredentialService
	ids         IDGenerator
}

// NewFactory creates a service factory sharing credentials and id generation across requests
func NewFactory(credentials CredentialService, ids IDGenerator) Factory {
	return &factory{
		credentials: credentials,
		ids:         ids,
	}
}

func (f *factory) Auth(db repository.DBTX) AuthService {
	return NewAuthService(repository.NewUserRepository(db), f.credentials, f.ids)
}

func (f *factory) Users(db repository.DBTX) UserService {
	return NewUserService(repository.NewUserRepository(db), f.ids)
}
