package preferences

import (
	"context"
	"strings"

	"github.com/maestria/maestria-api/internal/config"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/maestria/maestria-api/pkg/apiErrors"
)

// KeyValue é o armazenamento tolerante usado pelas preferências.
type KeyValue interface {
	LoadInto(ctx context.Context, key string, target any) bool
	Save(ctx context.Context, key string, value any)
	Remove(ctx context.Context, key string)
}

// Service guarda identidade visual, idioma e última tela, cada um em sua chave.
// Gravações não retornam erro: a última gravação vence.
type Service struct {
	store KeyValue
	keys  config.Storage
}

func NewService(store KeyValue, keys config.Storage) *Service {
	return &Service{
		store: store,
		keys:  keys,
	}
}

func (s *Service) Branding(ctx context.Context) domain.Branding {
	branding := domain.DefaultBranding()
	if !s.store.LoadInto(ctx, s.keys.BrandingKey, &branding) {
		return domain.DefaultBranding()
	}
	return branding
}

func (s *Service) SetBranding(ctx context.Context, branding domain.Branding) (domain.Branding, error) {
	branding.CompanyName = strings.TrimSpace(branding.CompanyName)
	if branding.CompanyName == "" {
		return branding, workspace.NewError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "companyName é obrigatório")
	}

	s.store.Save(ctx, s.keys.BrandingKey, branding)
	return branding, nil
}

func (s *Service) Language(ctx context.Context) domain.Language {
	var language domain.Language
	if !s.store.LoadInto(ctx, s.keys.LanguageKey, &language) || !language.Valid() {
		return domain.LanguagePortuguese
	}
	return language
}

func (s *Service) SetLanguage(ctx context.Context, language domain.Language) error {
	if !language.Valid() {
		return workspace.NewError(domain.ErrValidation, apiErrors.ErrInvalidFormat, "idioma deve ser pt, en ou es")
	}

	s.store.Save(ctx, s.keys.LanguageKey, language)
	return nil
}

func (s *Service) View(ctx context.Context) string {
	var view string
	if !s.store.LoadInto(ctx, s.keys.ViewKey, &view) || view == "" {
		return domain.DefaultView
	}
	return view
}

func (s *Service) SetView(ctx context.Context, view string) error {
	view = strings.TrimSpace(view)
	if view == "" {
		return workspace.NewError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "view é obrigatório")
	}

	s.store.Save(ctx, s.keys.ViewKey, view)
	return nil
}
