package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Authenticator interface {
	Login(ctx context.Context, memberID, accessKey string) (*Session, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	CurrentIdentity(ctx context.Context) (*domain.Identity, bool)
	Logout(ctx context.Context)
}

// MemberFinder localiza membros da equipe no espaço de trabalho.
type MemberFinder interface {
	Get(id string) (domain.TeamMember, error)
}

// IdentityStore guarda o registro da identidade autenticada.
type IdentityStore interface {
	LoadInto(ctx context.Context, key string, target any) bool
	Save(ctx context.Context, key string, value any)
	Remove(ctx context.Context, key string)
}

type Session struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Identity  domain.Identity `json:"identity"`
}

type Service struct {
	members     MemberFinder
	identities  IdentityStore
	cfg         config.Auth
	identityKey string
	now         func() time.Time
}

func NewService(members MemberFinder, identities IdentityStore, cfg config.Auth, identityKey string) *Service {
	if cfg.AccessKeyHash == "" {
		logrus.Warn("AUTH_ACCESS_KEY_HASH vazio: troca de identidade simulada, qualquer chave é aceita")
	}

	return &Service{
		members:     members,
		identities:  identities,
		cfg:         cfg,
		identityKey: identityKey,
		now:         time.Now,
	}
}

// Login valida a chave de acesso do espaço de trabalho e emite um token para o membro.
// Sem hash configurado a troca de identidade é simulada e qualquer chave é aceita.
func (s *Service) Login(ctx context.Context, memberID, accessKey string) (*Session, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "memberId é obrigatório")
	}

	if s.cfg.AccessKeyHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AccessKeyHash), []byte(accessKey)); err != nil {
			return nil, NewMemberAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, memberID, "")
		}
	}

	member, err := s.members.Get(memberID)
	if err != nil {
		return nil, NewMemberAuthError(ErrMemberNotFound, apiErrors.ErrMemberNotFound, memberID, "")
	}

	now := s.now()
	identity := domain.Identity{
		MemberID: member.ID,
		Name:     member.Name,
		Role:     member.Role,
		LoggedAt: now.UTC(),
	}

	expiresAt := now.Add(s.cfg.TokenTTL)
	token, err := s.generateJWT(member, expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	s.identities.Save(ctx, s.identityKey, identity)

	logrus.WithField("member_id", member.ID).Info("Sessão iniciada")
	return &Session{Token: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

func (s *Service) generateJWT(member domain.TeamMember, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		MemberID:   member.ID,
		MemberName: member.Name,
		MemberRole: member.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.ID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}
	return claims, nil
}

// CurrentIdentity lê o registro gravado no último login.
func (s *Service) CurrentIdentity(ctx context.Context) (*domain.Identity, bool) {
	var identity domain.Identity
	if !s.identities.LoadInto(ctx, s.identityKey, &identity) || identity.MemberID == "" {
		return nil, false
	}
	return &identity, true
}

func (s *Service) Logout(ctx context.Context) {
	s.identities.Remove(ctx, s.identityKey)
}

// HashAccessKey gera o hash bcrypt para AUTH_ACCESS_KEY_HASH.
func HashAccessKey(accessKey string) (string, error) {
	if len(accessKey) < 8 {
		return "", errors.New("a chave de acesso deve ter ao menos 8 caracteres")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(accessKey), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
