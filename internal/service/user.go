package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"circula/internal/auth"
	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/repository"
	"circula/internal/storage"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Signup(ctx context.Context, req dto.SignupRequest, picture *multipart.FileHeader) (*model.Customer, string, error)
	Login(ctx context.Context, email, password string) (*model.Customer, string, error)
	Profile(ctx context.Context, id uint) (*model.Customer, error)
	UpdateProfile(ctx context.Context, id uint, req dto.ProfileRequest, picture *multipart.FileHeader) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
	UpdateStatus(ctx context.Context, id uint, status model.UserStatus) error
	PromoteAdmin(ctx context.Context, email string) error
}

type userServiceImpl struct {
	customerRepo repository.CustomerRepository
	images       storage.ImageStore
	tokens       auth.TokenManager
	logger       *logrus.Logger
}

func NewUserService(
	customerRepo repository.CustomerRepository,
	images storage.ImageStore,
	tokens auth.TokenManager,
	logger *logrus.Logger,
) UserService {
	return &userServiceImpl{
		customerRepo: customerRepo,
		images:       images,
		tokens:       tokens,
		logger:       logger,
	}
}

func (s *userServiceImpl) Signup(ctx context.Context, req dto.SignupRequest, picture *multipart.FileHeader) (*model.Customer, string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" {
		return nil, "", model.ErrInvalidUserData
	}

	if err := s.checkUnique(ctx, username, email, 0); err != nil {
		return nil, "", err
	}
	if req.Password == "" {
		return nil, "", model.ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	customer := &model.Customer{
		Username: username,
		Email:    email,
		Password: string(hash),
		Phone:    optional(req.Phone),
		City:     optional(req.City),
		Role:     model.RoleCustomer,
		Status:   model.UserActive,
	}

	if picture != nil {
		path, err := s.images.Save(picture, storage.ProfilePicture)
		if err != nil {
			return nil, "", err
		}
		customer.ProfilePicture = &path
	}

	err = s.customerRepo.Create(ctx, customer)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a race with a concurrent signup
		return nil, "", model.ErrEmailTaken
	}
	if err != nil {
		return nil, "", fmt.Errorf("store customer: %w", err)
	}

	token, err := s.tokens.Issue(customer.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.WithField("user_id", customer.ID).Info("customer signed up")
	return customer, token, nil
}

func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*model.Customer, string, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("find customer: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)); err != nil {
		return nil, "", model.ErrInvalidCredentials
	}
	if customer.Status == model.UserInactive {
		return nil, "", model.ErrAccountInactive
	}

	token, err := s.tokens.Issue(customer.ID)
	if err != nil {
		return nil, "", err
	}

	return customer, token, nil
}

func (s *userServiceImpl) Profile(ctx context.Context, id uint) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	return customer, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, id uint, req dto.ProfileRequest, picture *multipart.FileHeader) (*model.Customer, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" {
		return nil, model.ErrInvalidUserData
	}
	if err := s.checkUnique(ctx, username, email, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"username": username,
		"email":    email,
		"phone":    optional(req.Phone),
		"city":     optional(req.City),
	}
	if picture != nil {
		path, err := s.images.Save(picture, storage.ProfilePicture)
		if err != nil {
			return nil, err
		}
		fields["profile_picture"] = path
	}

	err := s.customerRepo.UpdateProfile(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return s.Profile(ctx, id)
}

func (s *userServiceImpl) List(ctx context.Context) ([]*model.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return customers, nil
}

func (s *userServiceImpl) UpdateStatus(ctx context.Context, id uint, status model.UserStatus) error {
	if status != model.UserActive && status != model.UserInactive {
		return model.ErrInvalidUserStatus
	}

	err := s.customerRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": id, "status": status}).Info("customer status changed")
	return nil
}

func (s *userServiceImpl) PromoteAdmin(ctx context.Context, email string) error {
	err := s.customerRepo.SetRoleByEmail(ctx, strings.TrimSpace(email), model.RoleAdmin)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("promote admin: %w", err)
	}

	s.logger.WithField("email", email).Warn("customer promoted to admin")
	return nil
}

func (s *userServiceImpl) checkUnique(ctx context.Context, username, email string, exceptID uint) error {
	taken, err := s.customerRepo.EmailTaken(ctx, email, exceptID)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return model.ErrEmailTaken
	}

	taken, err = s.customerRepo.UsernameTaken(ctx, username, exceptID)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return model.ErrUsernameTaken
	}

	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
