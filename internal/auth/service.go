package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	repo *UserRepository
}

func NewUserService(repo *UserRepository) *UserService {
	return &UserService{repo: repo}
}

// RegisterUser creates an operator account. Registration is closed to the
// public: the request must carry the setup key from the environment.
func (s *UserService) RegisterUser(ctx context.Context, req RegisterRequest) error {
	setupKey := os.Getenv("ADMIN_SETUP_KEY")
	if setupKey == "" || req.SetupKey != setupKey {
		return errors.New("Invalid setup key")
	}

	existingUser, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return errors.New("Email already registered")
	}

	hashPassword, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &User{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashPassword,
	}
	return s.repo.CreateUser(ctx, user)
}

func (s *UserService) AuthenticateUser(ctx context.Context, cred Credential) (string, error) {
	user, err := s.repo.FindByEmail(ctx, cred.Email)
	if err != nil || user == nil || !CheckPasswordHash(cred.Password, user.PasswordHash) {
		return "", errors.New("Invalid Credentials")
	}

	token, err := GenerateJWT(user.Name, user.Email, time.Hour*12)
	if err != nil {
		return "", errors.New("Token not generated")
	}
	return token, nil
}
