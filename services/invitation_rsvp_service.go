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

// RSVPServiceError katılım yanıtı servis hataları.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPInvitationNotFound RSVPServiceError = "yanıt verilecek davetiye bulunamadı"
	ErrRSVPInvalidInput       RSVPServiceError = "geçersiz katılım yanıtı"
	ErrRSVPCreationFailed     RSVPServiceError = "katılım yanıtı kaydedilemedi"
)

// IRSVPService yayınlanmış davetiyelere verilen katılım yanıtları.
type IRSVPService interface {
	Submit(ctx context.Context, invitationID string, payload map[string]any) (*models.InvitationRSVP, models.RSVPSummary, error)
	List(ctx context.Context, invitationID string) ([]models.InvitationRSVP, models.RSVPSummary, error)
}

type RSVPService struct {
	invitationRepo repositories.IInvitationRepository
	repo           repositories.IInvitationRSVPRepository
}

func NewRSVPService(db *gorm.DB) IRSVPService {
	return &RSVPService{
		invitationRepo: repositories.NewInvitationRepositoryTx(db),
		repo:           repositories.NewInvitationRSVPRepositoryTx(db),
	}
}

func (s *RSVPService) requirePublished(ctx context.Context, invitationID string) error {
	if _, err := s.invitationRepo.FindPublishedByID(ctx, invitationID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRSVPInvitationNotFound
		}
		return err
	}
	return nil
}

// Submit yanıtı doğrular, kaydeder ve güncel özeti döner.
func (s *RSVPService) Submit(ctx context.Context, invitationID string, payload map[string]any) (*models.InvitationRSVP, models.RSVPSummary, error) {
	if err := s.requirePublished(ctx, invitationID); err != nil {
		return nil, models.RSVPSummary{}, err
	}
	input, err := inviteform.ValidateRSVP(payload)
	if err != nil {
		return nil, models.RSVPSummary{}, fmt.Errorf("%w: %w", ErrRSVPInvalidInput, err)
	}

	rsvp := &models.InvitationRSVP{
		InvitationID: invitationID,
		GuestName:    input.GuestName,
		GuestPhone:   input.GuestPhone,
		GuestCount:   input.GuestCount,
		Attending:    input.Attending,
		Message:      input.Message,
	}
	if err := s.repo.Create(ctx, rsvp); err != nil {
		return nil, models.RSVPSummary{}, ErrRSVPCreationFailed
	}
	configslog.SLog.Infof("Katılım yanıtı alındı: davetiye %s, katılım %t, kişi %d", invitationID, rsvp.Attending, rsvp.GuestCount)

	summary, err := s.repo.Summary(ctx, invitationID)
	if err != nil {
		return nil, models.RSVPSummary{}, err
	}
	return rsvp, summary, nil
}

// List yanıtları en yeniden eskiye döner.
func (s *RSVPService) List(ctx context.Context, invitationID string) ([]models.InvitationRSVP, models.RSVPSummary, error) {
	if err := s.requirePublished(ctx, invitationID); err != nil {
		return nil, models.RSVPSummary{}, err
	}
	items, err := s.repo.FindByInvitationID(ctx, invitationID)
	if err != nil {
		return nil, models.RSVPSummary{}, err
	}
	summary, err := s.repo.Summary(ctx, invitationID)
	if err != nil {
		return nil, models.RSVPSummary{}, err
	}
	return items, summary, nil
}

var _ IRSVPService = (*RSVPService)(nil)
