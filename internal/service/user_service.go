package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/redis"
	"Blogicum/internal/pkg/security"
	"Blogicum/internal/repository"
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-sql-driver/mysql"
)

type UserService interface {
	Register(ctx context.Context, registerDTO *dto.RegisterDTO) (string, error)
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	UpdateProfile(ctx context.Context, viewer Viewer, username string, editDTO *dto.EditProfileDTO) (Decision, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// Register 注册新用户，成功后直接签发 Token 视同已登录
func (s *userServiceImpl) Register(ctx context.Context, registerDTO *dto.RegisterDTO) (string, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, registerDTO.Username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrUserUsernameExist
	}
	exists, err = s.userRepo.ExistsByEmail(ctx, registerDTO.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrUserEmailExist
	}

	hashed, err := security.HashPassword(registerDTO.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username:  registerDTO.Username,
		Password:  hashed,
		Email:     registerDTO.Email,
		FirstName: registerDTO.FirstName,
		LastName:  registerDTO.LastName,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 预检查之后仍可能并发撞库，靠唯一索引兜底
		if dup := duplicateToErr(err); dup != nil {
			return "", dup
		}
		return "", err
	}

	return security.GenerateToken(user.ID, user.Username, user.IsSuperuser)
}

// Login 用户名密码登录
func (s *userServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credentialDTO.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err = security.CheckPasswordHash(credentialDTO.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(user.ID, user.Username, user.IsSuperuser)
}

// Logout 将 Token 签名加入黑名单，剩余有效期内拒绝复用
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}

	err = redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", security.JWTExpirationTime)
	if err != nil {
		slog.ErrorContext(ctx, "写入 Token 黑名单失败", "error", err)
		return UnExpectedError
	}
	return nil
}

// UpdateProfile 修改个人资料，仅限本人
func (s *userServiceImpl) UpdateProfile(ctx context.Context, viewer Viewer, username string, editDTO *dto.EditProfileDTO) (Decision, error) {
	if viewer.IsAnonymous() {
		return DecisionForbidden, nil
	}
	if viewer.Username != username {
		return DecisionRedirect, nil
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return DecisionAllow, err
	}
	if user == nil {
		return DecisionAllow, ErrUserNotFound
	}

	if editDTO.FirstName != nil {
		user.FirstName = *editDTO.FirstName
	}
	if editDTO.LastName != nil {
		user.LastName = *editDTO.LastName
	}
	if editDTO.Email != nil && *editDTO.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *editDTO.Email)
		if err != nil {
			return DecisionAllow, err
		}
		if exists {
			return DecisionAllow, ErrUserEmailExist
		}
		user.Email = *editDTO.Email
	}

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		if dup := duplicateToErr(err); dup != nil {
			return DecisionAllow, dup
		}
		return DecisionAllow, err
	}
	return DecisionAllow, nil
}

// duplicateToErr 把 MySQL 1062 唯一键冲突翻译为业务错误
func duplicateToErr(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
		return nil
	}
	if strings.Contains(mysqlErr.Message, "username") {
		return ErrUserUsernameExist
	}
	return ErrUserEmailExist
}
