package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"chodae.link/database/testdb"
	"chodae.link/models"
	"chodae.link/pkg/inviteform"
	"chodae.link/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	editTokenCost = bcrypt.MinCost
}

// 2026-05-01 10:00 KST
func testValidator() *inviteform.Validator {
	now := time.Date(2026, 5, 1, 1, 0, 0, 0, time.UTC)
	return inviteform.NewValidator(nil, time.FixedZone("KST", 9*60*60), func() time.Time { return now })
}

func newTestServices(t *testing.T) (*gorm.DB, IInvitationService) {
	db := testdb.Open(t)
	return db, NewInvitationService(db, testValidator())
}

func payload() map[string]any {
	return map[string]any{
		"templateId":   "general-modern-01",
		"type":         "general",
		"title":        "Party",
		"eventDate":    "2026-06-15",
		"eventTime":    "18:30",
		"venueName":    "Hall",
		"venueAddress": "123 Main",
		"hostName":     "Kim",
		"extraData":    map[string]any{"contactPhone": "010-1234-5678"},
	}
}

func TestInvitationService_CreateOwned(t *testing.T) {
	_, svc := newTestServices(t)
	ctx := context.Background()

	p := payload()
	p["templateId"] = "general-cute-banana"
	res, err := svc.CreateInvitation(ctx, "user-1", p)
	require.NoError(t, err)
	assert.Empty(t, res.EditToken)

	inv := res.Invitation
	require.NotNil(t, inv.OwnerID)
	assert.Equal(t, "user-1", *inv.OwnerID)
	assert.True(t, inv.IsPremium)
	assert.False(t, inv.IsPaid)
	assert.Equal(t, models.InvitationStatusPublished, inv.Status)
	assert.Equal(t, models.ExtraData{"contactPhone": "010-1234-5678"}, inv.ExtraData)
	assert.Len(t, inv.ShareID, models.ShareIDLength)

	got, err := svc.GetInvitationForOwner(ctx, inv.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Party", got.Title)

	_, err = svc.GetInvitationForOwner(ctx, inv.ID, "user-2")
	assert.ErrorIs(t, err, ErrInvitationNotFound)
	_, err = svc.GetInvitationForOwner(ctx, inv.ID, "")
	assert.ErrorIs(t, err, ErrInvitationUnauthenticated)
}

func TestInvitationService_CreateRejectsInvalidPayload(t *testing.T) {
	db, svc := newTestServices(t)

	p := payload()
	p["title"] = ""
	p["eventTime"] = "25:00"
	_, err := svc.CreateInvitation(context.Background(), "user-1", p)
	require.ErrorIs(t, err, ErrInvInvalidInput)

	var verr *inviteform.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("title"))
	assert.True(t, verr.Has("eventTime"))

	var count int64
	require.NoError(t, db.Model(&models.Invitation{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestInvitationService_AnonymousCreateAndClaim(t *testing.T) {
	_, svc := newTestServices(t)
	ctx := context.Background()

	p := payload()
	p["status"] = "draft"
	res, err := svc.CreateInvitation(ctx, "", p)
	require.NoError(t, err)
	require.NotEmpty(t, res.EditToken)
	assert.Nil(t, res.Invitation.OwnerID)
	assert.Equal(t, models.InvitationStatusDraft, res.Invitation.Status)
	id := res.Invitation.ID

	_, err = svc.Claim(ctx, id, "user-1", "wrong")
	assert.ErrorIs(t, err, ErrInvInvalidEditToken)
	_, err = svc.Claim(ctx, id, "", res.EditToken)
	assert.ErrorIs(t, err, ErrInvitationUnauthenticated)
	_, err = svc.Claim(ctx, "missing", "user-1", res.EditToken)
	assert.ErrorIs(t, err, ErrInvitationNotFound)

	claimed, err := svc.Claim(ctx, id, "user-1", res.EditToken)
	require.NoError(t, err)
	assert.True(t, claimed.IsOwnedBy("user-1"))

	again, err := svc.Claim(ctx, id, "user-1", res.EditToken)
	require.NoError(t, err)
	assert.Equal(t, id, again.ID)

	_, err = svc.Claim(ctx, id, "user-2", res.EditToken)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationService_Update(t *testing.T) {
	_, svc := newTestServices(t)
	ctx := context.Background()

	res, err := svc.CreateInvitation(ctx, "user-1", payload())
	require.NoError(t, err)
	id := res.Invitation.ID

	p := payload()
	p["title"] = "Renamed"
	p["greeting"] = "Hello"
	p["extraData"] = map[string]any{}
	p["status"] = "draft"
	updated, err := svc.UpdateInvitation(ctx, id, "user-1", p)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Hello", updated.Greeting)
	assert.Empty(t, updated.ExtraData)
	assert.Equal(t, models.InvitationStatusDraft, updated.Status)
	assert.Equal(t, res.Invitation.ShareID, updated.ShareID)

	_, err = svc.UpdateInvitation(ctx, id, "user-2", payload())
	assert.ErrorIs(t, err, ErrInvitationNotFound)

	bad := payload()
	bad["eventDate"] = "2020-01-01"
	_, err = svc.UpdateInvitation(ctx, id, "user-1", bad)
	assert.ErrorIs(t, err, ErrInvInvalidInput)

	// Başkasına ait kayıtta doğrulama hatası yerine bulunamadı döner.
	_, err = svc.UpdateInvitation(ctx, id, "user-2", bad)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationService_SetStatus(t *testing.T) {
	_, svc := newTestServices(t)
	ctx := context.Background()

	res, err := svc.CreateInvitation(ctx, "user-1", payload())
	require.NoError(t, err)

	inv, err := svc.SetStatus(ctx, res.Invitation.ID, "user-1", "archived")
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusArchived, inv.Status)

	_, err = svc.SetStatus(ctx, res.Invitation.ID, "user-1", "deleted")
	assert.ErrorIs(t, err, ErrInvInvalidStatus)
	_, err = svc.SetStatus(ctx, res.Invitation.ID, "user-2", "draft")
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestInvitationService_CheckoutIsIdempotent(t *testing.T) {
	_, svc := newTestServices(t)
	ctx := context.Background()

	res, err := svc.CreateInvitation(ctx, "user-1", payload())
	require.NoError(t, err)
	id := res.Invitation.ID

	_, err = svc.Checkout(ctx, id, "user-2")
	assert.ErrorIs(t, err, ErrInvitationNotFound)

	first, err := svc.Checkout(ctx, id, "user-1")
	require.NoError(t, err)
	assert.True(t, first.IsPaid)

	second, err := svc.Checkout(ctx, id, "user-1")
	require.NoError(t, err)
	assert.True(t, second.IsPaid)
	assert.Equal(t, first.ID, second.ID)
}

func TestInvitationService_ListAndDelete(t *testing.T) {
	_, svc := newTestServices(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		res, err := svc.CreateInvitation(ctx, "user-1", payload())
		require.NoError(t, err)
		ids = append(ids, res.Invitation.ID)
	}

	page, err := svc.GetInvitationsForOwner(ctx, "user-1", queryparams.ListParams{PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, queryparams.PaginationMeta{CurrentPage: 1, PerPage: 2, TotalItems: 3, TotalPages: 2}, page.Meta)

	assert.ErrorIs(t, svc.DeleteInvitation(ctx, ids[0], "user-2"), ErrInvitationNotFound)
	require.NoError(t, svc.DeleteInvitation(ctx, ids[0], "user-1"))
	assert.ErrorIs(t, svc.DeleteInvitation(ctx, ids[0], "user-1"), ErrInvitationNotFound)

	page, err = svc.GetInvitationsForOwner(ctx, "user-1", queryparams.ListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Meta.TotalItems)
}

func TestInvitationService_ShareDetail(t *testing.T) {
	db, svc := newTestServices(t)
	ctx := context.Background()
	rsvps := NewRSVPService(db)
	guestbook := NewGuestbookService(db)

	res, err := svc.CreateInvitation(ctx, "user-1", payload())
	require.NoError(t, err)
	inv := res.Invitation

	_, _, err = rsvps.Submit(ctx, inv.ID, map[string]any{"guestName": "Lee", "guestCount": 3, "attending": true})
	require.NoError(t, err)
	_, _, err = rsvps.Submit(ctx, inv.ID, map[string]any{"guestName": "Park", "attending": false})
	require.NoError(t, err)
	_, err = guestbook.Submit(ctx, inv.ID, map[string]any{"authorName": "Choi", "content": "Congrats"})
	require.NoError(t, err)

	detail, err := svc.GetShareDetail(ctx, inv.ShareID)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, detail.Invite.ID)
	assert.Len(t, detail.RSVPs, 2)
	assert.Len(t, detail.Guestbook, 1)
	assert.Equal(t, models.RSVPSummary{TotalResponses: 2, AttendingCount: 3, DeclineCount: 1}, detail.Summary)

	_, err = svc.SetStatus(ctx, inv.ID, "user-1", "draft")
	require.NoError(t, err)
	_, err = svc.GetShareDetail(ctx, inv.ShareID)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}
