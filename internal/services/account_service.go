package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"placemark/internal/models/db_models"
	"placemark/internal/models/request_models"
	"placemark/internal/models/response_models"
	"placemark/internal/repositories"
	"placemark/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountLoginResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, req request_models.UpdateSettingsRequest) error
	GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error)
	GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

// CreateAccount signs a user up with the default scope and a zero POI
// count, and logs them straight in.
func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountLoginResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Error checking email %q: %v", req.Email, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashed,
		NumOfPoi:     0,
		Scope:        pq.StringArray{utils.ScopeUser},
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		log.Printf("Error creating account: %v", err)
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID, user.Scope)
	if err != nil {
		log.Printf("Error creating token: %v", err)
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{Token: token}, nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Error fetching account %q: %v", req.Email, err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Scope)
	if err != nil {
		log.Printf("Error creating token: %v", err)
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{Token: token}, nil
}

func (a *AccountService) UpdateSettings(ctx context.Context, userID uuid.UUID, req request_models.UpdateSettingsRequest) error {
	user, err := a.userRepo.FindById(ctx, userID.String())
	if err != nil {
		log.Printf("Error fetching account %s: %v", userID, err)
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return utils.ErrDatabaseError
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.PasswordHash = hashed

	if err := a.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error updating account %s: %v", userID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error) {
	user, err := a.userRepo.FindById(ctx, id)
	if err != nil {
		log.Printf("Error fetching account %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(user)
	return &resp, nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error) {
	users, err := a.userRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing accounts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AccountResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toAccountResponse(&users[i]))
	}
	return responses, nil
}

// DeleteAccount removes the user record only. The user's POIs are not
// cascaded here; that is a separate admin path.
func (a *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	user, err := a.userRepo.FindById(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching account %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	if err := a.userRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting account %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toAccountResponse(user *db_models.User) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		NumOfPoi:  user.NumOfPoi,
		Scope:     user.Scope,
		IsAdmin:   utils.IsAdmin(user.Scope),
	}
}
