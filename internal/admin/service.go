package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prestigedrive/prestigedrive/internal/common/auth"
	"github.com/prestigedrive/prestigedrive/internal/common/config"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 统一的登录失败错误：不区分“账号不存在”和“密码错误”。
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service 管理员账号与登录。会话是无状态 JWT，服务端不存布尔标记。
type Service struct {
	repo    *Repo
	authCfg config.AuthConfig
}

func NewService(repo *Repo, authCfg config.AuthConfig) *Service {
	return &Service{repo: repo, authCfg: authCfg}
}

// Register 创建管理员账号（仅 adminctl 调用，不暴露公网接口）。
func (s *Service) Register(ctx context.Context, username, password string) (*AdminUser, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username required")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &AdminUser{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// LoginResult 登录成功返回的令牌信息。
type LoginResult struct {
	AdminID   string    `json:"admin_id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login 校验口令并签发 JWT（roles=["admin"]）。
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(s.authCfg.TokenTTLMinutes) * time.Minute
	token, expiresAt, err := auth.GenerateAccessToken(s.authCfg, u.ID, []string{"admin"}, ttl)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		AdminID:   u.ID,
		Username:  u.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ChangePassword 当前登录管理员改口令：校验旧口令后换新。
func (s *Service) ChangePassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("service not initialized")
	}
	u, err := s.repo.FindByID(ctx, strings.TrimSpace(adminID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if !VerifyPassword(oldPassword, u.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.repo.Update(ctx, u)
}

// ResetPassword 运维兜底：不校验旧口令，直接重置（仅 adminctl 调用）。
func (s *Service) ResetPassword(ctx context.Context, username, newPassword string) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("service not initialized")
	}
	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.repo.Update(ctx, u)
}
