package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"
	"lawsite-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The generic credentials error. Wrong password, unknown email and inactive
// account must all surface identically so the login form can't be used to
// enumerate admins.
const loginFailedMsg = "invalid email or password"

const tokenTTL = 24 * time.Hour

var defaultSuperAdminPermissions = []string{
	"admins:manage",
	"content:write",
	"orders:read",
}

var defaultAdminPermissions = []string{
	"content:write",
	"orders:read",
}

type AdminService interface {
	IsFirstUser(ctx context.Context) (bool, error)
	CreateFirstAdmin(ctx context.Context, email, password, name string) (*model.Admin, error)
	CreateAdmin(ctx context.Context, creatorID uint, req *dto.CreateAdminRequest) (*model.Admin, error)
	Login(ctx context.Context, email, password string) (string, *model.Admin, error)
	ListAdmins(ctx context.Context, page, limit int) ([]model.Admin, int64, error)
	DeactivateAdmin(ctx context.Context, id uint) error
}

type adminServiceImpl struct {
	adminRepo repository.AdminRepository
	jwtSecret string
}

func NewAdminService(adminRepo repository.AdminRepository, jwtSecret string) AdminService {
	return &adminServiceImpl{
		adminRepo: adminRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *adminServiceImpl) IsFirstUser(ctx context.Context) (bool, error) {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *adminServiceImpl) CreateFirstAdmin(ctx context.Context, email, password, name string) (*model.Admin, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password, name); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Email:       email,
		Password:    string(hash),
		Name:        name,
		Role:        model.RoleSuperAdmin,
		IsActive:    true,
		Permissions: defaultSuperAdminPermissions,
	}
	if err := s.adminRepo.CreateFirst(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminServiceImpl) CreateAdmin(ctx context.Context, creatorID uint, req *dto.CreateAdminRequest) (*model.Admin, error) {
	email := normalizeEmail(req.Email)
	if err := validateCredentials(email, req.Password, req.Name); err != nil {
		return nil, err
	}

	exists, err := s.adminRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflictf("an admin with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	permissions := req.Permissions
	if len(permissions) == 0 {
		permissions = defaultAdminPermissions
	}

	admin := &model.Admin{
		Email:       email,
		Password:    string(hash),
		Name:        req.Name,
		Role:        model.RoleAdmin,
		IsActive:    true,
		Permissions: permissions,
		CreatedBy:   &creatorID,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminServiceImpl) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	admin, err := s.adminRepo.FindActiveByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.Authf(loginFailedMsg)
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", nil, apperr.Authf(loginFailedMsg)
	}

	// Fire-and-forget: the login response does not wait on this write.
	go func(id uint) {
		if err := s.adminRepo.UpdateLastLogin(context.Background(), id, time.Now()); err != nil {
			log.Println("update last login:", err)
		}
	}(admin.ID)

	token, err := s.issueToken(admin)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func (s *adminServiceImpl) ListAdmins(ctx context.Context, page, limit int) ([]model.Admin, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.adminRepo.List(ctx, page, limit)
}

func (s *adminServiceImpl) DeactivateAdmin(ctx context.Context, id uint) error {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("admin not found")
		}
		return err
	}

	if admin.Role == model.RoleSuperAdmin {
		count, err := s.adminRepo.CountActiveByRole(ctx, model.RoleSuperAdmin)
		if err != nil {
			return err
		}
		if count <= 1 {
			return apperr.Conflictf("cannot deactivate the last super-admin")
		}
	}

	if err := s.adminRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("admin not found")
		}
		return err
	}
	return nil
}

func (s *adminServiceImpl) issueToken(admin *model.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"role":  admin.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password, name string) error {
	if email == "" || password == "" || name == "" {
		return apperr.Validationf("email, password and name are required")
	}
	if !strings.Contains(email, "@") {
		return apperr.Validationf("invalid email address")
	}
	if len(password) < 8 {
		return apperr.Validationf("password must be at least 8 characters")
	}
	return nil
}
