package service

import (
	"context"

	"github.com/freshcart/commerce-service/internal/domain"
	"github.com/freshcart/commerce-service/internal/dto"
	"github.com/freshcart/commerce-service/internal/repository"
	"github.com/freshcart/commerce-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo repository.UserRepository
}

func CreateUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) Signup(ctx context.Context, payload dto.CredentialsRequest) (resp dto.SignupResponse, err error) {
	if payload.PhoneNumber == "" || payload.Password == "" {
		return resp, errs.ErrClient
	}

	_, err = s.repo.GetUserByPhoneNumber(ctx, payload.PhoneNumber)
	if err == nil {
		return resp, errs.ErrPhoneAlreadyUsed
	}
	if err != errs.ErrNotFound {
		return resp, err
	}

	// DefaultCost keeps the hash deliberately slow without pushing signup
	// latency past interactive use.
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return resp, err
	}

	userEnt := domain.User{
		PhoneNumber:    payload.PhoneNumber,
		HashedPassword: string(hash),
	}

	// The unique index on phone_number closes the race between the pre-read
	// above and this insert; the repository maps the index violation to the
	// same conflict error.
	id, err := s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return resp, err
	}

	resp.UserID = id.Hex()

	return resp, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.CredentialsRequest) (resp dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByPhoneNumber(ctx, payload.PhoneNumber)
	if err != nil {
		if err == errs.ErrNotFound {
			// Same error for an unknown phone number and a wrong password,
			// so the response does not leak which one failed.
			return resp, errs.ErrInvalidCredentials
		}
		return resp, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentials
	}

	resp.UserID = user.ID.Hex()

	return resp, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (resp dto.UserResponse, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return resp, errs.ErrNotFound
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return resp, err
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, payload dto.ProfileUpdateRequest) (resp dto.UserResponse, err error) {
	id, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return resp, errs.ErrNotFound
	}

	err = s.repo.UpdateProfile(ctx, id, payload.FullName, payload.City, payload.Location)
	if err != nil {
		return resp, err
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return resp, err
	}

	return toUserResponse(user), nil
}

func toUserResponse(user domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID.Hex(),
		PhoneNumber: user.PhoneNumber,
		FullName:    user.FullName,
		City:        user.City,
		Location:    user.Location,
	}
}
