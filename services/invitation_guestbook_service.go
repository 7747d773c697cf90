package services

import (
	"context"
	"errors"
	"fmt"

	"chodae.link/configs/configslog"
	"chodae.link/models"
	"chodae.link/pkg/inviteform"
	"chodae.link/repositories"

	"gorm.io/gorm"
)

type GuestbookServiceError string

func (e GuestbookServiceError) Error() string { return string(e) }

const (
	ErrGuestbookInvitationNotFound GuestbookServiceError = "ziyaretçi defteri için davetiye bulunamadı"
	ErrGuestbookInvalidInput       GuestbookServiceError = "geçersiz ziyaretçi defteri mesajı"
	ErrGuestbookCreationFailed     GuestbookServiceError = "mesaj kaydedilemedi"
)

// IGuestbookService yayınlanmış davetiyelerin ziyaretçi defteri.
type IGuestbookService interface {
	Submit(ctx context.Context, invitationID string, payload map[string]any) (*models.InvitationGuestbookEntry, error)
	List(ctx context.Context, invitationID string) ([]models.InvitationGuestbookEntry, error)
}

type GuestbookService struct {
	invitationRepo repositories.IInvitationRepository
	repo           repositories.IInvitationGuestbookRepository
}

func NewGuestbookService(db *gorm.DB) IGuestbookService {
	return &GuestbookService{
		invitationRepo: repositories.NewInvitationRepositoryTx(db),
		repo:           repositories.NewInvitationGuestbookRepositoryTx(db),
	}
}

func (s *GuestbookService) requirePublished(ctx context.Context, invitationID string) error {
	_, err := s.invitationRepo.FindPublishedByID(ctx, invitationID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrGuestbookInvitationNotFound
	}
	return err
}

func (s *GuestbookService) Submit(ctx context.Context, invitationID string, payload map[string]any) (*models.InvitationGuestbookEntry, error) {
	if err := s.requirePublished(ctx, invitationID); err != nil {
		return nil, err
	}
	input, err := inviteform.ValidateGuestbook(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGuestbookInvalidInput, err)
	}

	entry := &models.InvitationGuestbookEntry{
		InvitationID: invitationID,
		AuthorName:   input.AuthorName,
		Content:      input.Content,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, ErrGuestbookCreationFailed
	}
	configslog.SLog.Infof("Ziyaretçi defterine mesaj eklendi: davetiye %s", invitationID)
	return entry, nil
}

func (s *GuestbookService) List(ctx context.Context, invitationID string) ([]models.InvitationGuestbookEntry, error) {
	if err := s.requirePublished(ctx, invitationID); err != nil {
		return nil, err
	}
	return s.repo.FindByInvitationID(ctx, invitationID)
}

var _ IGuestbookService = (*GuestbookService)(nil)
