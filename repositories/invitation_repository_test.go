package repositories

import (
	"context"
	"testing"

	"chodae.link/database/testdb"
	"chodae.link/models"
	"chodae.link/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newInvitation(owner *string) *models.Invitation {
	return &models.Invitation{
		OwnerID:      owner,
		TemplateID:   "general-modern-01",
		Type:         models.InvitationTypeGeneral,
		Title:        "Party",
		EventDate:    "2030-06-15",
		EventTime:    "18:30",
		VenueName:    "Hall",
		VenueAddress: "123 Main",
		HostName:     "Kim",
		ExtraData:    models.ExtraData{"contactPhone": "010-1234-5678"},
	}
}

func TestInvitationRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewInvitationRepositoryTx(testdb.Open(t))

	inv := newInvitation(strPtr("user-1"))
	require.NoError(t, repo.Create(ctx, inv))
	assert.Len(t, inv.ID, 36)
	assert.Len(t, inv.ShareID, models.ShareIDLength)
	assert.Equal(t, models.InvitationStatusPublished, inv.Status)

	got, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.Title, got.Title)
	assert.Equal(t, "010-1234-5678", got.ExtraData["contactPhone"])
	assert.False(t, got.IsPaid)

	_, err = repo.FindByIDAndOwner(ctx, inv.ID, "user-2")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByIDAndOwner(ctx, inv.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)

	byShare, err := repo.FindPublishedByShareID(ctx, inv.ShareID)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, byShare.ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvitationRepository_ShareIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewInvitationRepositoryTx(testdb.Open(t))

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		inv := newInvitation(nil)
		require.NoError(t, repo.Create(ctx, inv))
		assert.False(t, seen[inv.ShareID])
		seen[inv.ShareID] = true
	}
}

func TestInvitationRepository_UnpublishedHiddenFromPublicLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewInvitationRepositoryTx(testdb.Open(t))

	inv := newInvitation(strPtr("user-1"))
	inv.Status = models.InvitationStatusDraft
	require.NoError(t, repo.Create(ctx, inv))

	_, err := repo.FindPublishedByShareID(ctx, inv.ShareID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindPublishedByID(ctx, inv.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.SetStatus(ctx, inv.ID, "user-1", models.InvitationStatusPublished))
	_, err = repo.FindPublishedByShareID(ctx, inv.ShareID)
	assert.NoError(t, err)

	assert.ErrorIs(t, repo.SetStatus(ctx, inv.ID, "user-2", models.InvitationStatusArchived), ErrNotFound)
}

func TestInvitationRepository_UpdateContentReplacesFields(t *testing.T) {
	ctx := context.Background()
	repo := NewInvitationRepositoryTx(testdb.Open(t))

	inv := newInvitation(strPtr("user-1"))
	inv.Greeting = "Welcome"
	require.NoError(t, repo.Create(ctx, inv))

	update := *inv
	update.Title = "Renamed"
	update.Greeting = ""
	update.ExtraData = models.ExtraData{}
	update.IsPaid = true // içerik güncellemesi ödeme bayrağına dokunmaz
	require.NoError(t, repo.UpdateContent(ctx, &update))

	got, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Empty(t, got.Greeting)
	assert.Empty(t, got.ExtraData)
	assert.False(t, got.IsPaid)
	assert.Equal(t, inv.ShareID, got.ShareID)

	foreign := *got
	foreign.OwnerID = strPtr("user-2")
	assert.ErrorIs(t, repo.UpdateContent(ctx, &foreign), ErrNotFound)
}

func TestInvitationRepository_MarkPaidOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewInvitationRepositoryTx(testdb.Open(t))

	inv := newInvitation(strPtr("user-1"))
	require.NoError(t, repo.Create(ctx, inv))

	changed, err := repo.MarkPaid(ctx, inv.ID, "user-2")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.MarkPaid(ctx, inv.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkPaid(ctx, inv.ID, "user-1")
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaid)
}

func TestInvitationRepository_Claim(t *testing.T) {
	ctx := context.Background()
	repo := NewInvitationRepositoryTx(testdb.Open(t))

	inv := newInvitation(nil)
	inv.EditTokenHash = "hash"
	require.NoError(t, repo.Create(ctx, inv))

	require.NoError(t, repo.Claim(ctx, inv.ID, "user-1"))
	got, err := repo.FindByIDAndOwner(ctx, inv.ID, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got.EditTokenHash)

	assert.ErrorIs(t, repo.Claim(ctx, inv.ID, "user-2"), ErrNotFound)
}

func TestInvitationRepository_DeleteIsOwnerScopedAndSoft(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	repo := NewInvitationRepositoryTx(db)
	rsvps := NewInvitationRSVPRepositoryTx(db)

	inv := newInvitation(strPtr("user-1"))
	require.NoError(t, repo.Create(ctx, inv))
	require.NoError(t, rsvps.Create(ctx, &models.InvitationRSVP{InvitationID: inv.ID, GuestName: "Lee", GuestCount: 1, Attending: true}))

	assert.ErrorIs(t, repo.Delete(ctx, inv.ID, "user-2"), ErrNotFound)
	require.NoError(t, repo.Delete(ctx, inv.ID, "user-1"))
	assert.ErrorIs(t, repo.Delete(ctx, inv.ID, "user-1"), ErrNotFound)

	_, err := repo.FindByID(ctx, inv.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Invitation{}).Where("id = ?", inv.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	remaining, err := rsvps.FindByInvitationID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestInvitationRepository_FindAllByOwnerPaginated(t *testing.T) {
	ctx := context.Background()
	repo := NewInvitationRepositoryTx(testdb.Open(t))

	for i := 0; i < 5; i++ {
		inv := newInvitation(strPtr("user-1"))
		if i == 0 {
			inv.Status = models.InvitationStatusDraft
		}
		require.NoError(t, repo.Create(ctx, inv))
	}
	require.NoError(t, repo.Create(ctx, newInvitation(strPtr("user-2"))))

	params := queryparams.ListParams{Page: 2, PerPage: 2}
	params.Validate()
	items, total, err := repo.FindAllByOwnerPaginated(ctx, "user-1", params)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, items, 2)

	params = queryparams.ListParams{Status: "draft"}
	params.Validate()
	items, total, err = repo.FindAllByOwnerPaginated(ctx, "user-1", params)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, models.InvitationStatusDraft, items[0].Status)

	items, total, err = repo.FindAllByOwnerPaginated(ctx, "nobody", params)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)

	n, err := repo.CountByOwner(ctx, "user-2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
