package repositories

import (
	"context"
	"testing"

	"chodae.link/database/testdb"
	"chodae.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInvitationRSVPRepository_Summary(t *testing.T) {
	ctx := context.Background()
	repo := NewInvitationRSVPRepositoryTx(testdb.Open(t))

	empty, err := repo.Summary(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, models.RSVPSummary{}, empty)

	for _, r := range []models.InvitationRSVP{
		{InvitationID: "inv-1", GuestName: "A", GuestCount: 2, Attending: true},
		{InvitationID: "inv-1", GuestName: "B", GuestCount: 3, Attending: true},
		{InvitationID: "inv-1", GuestName: "C", GuestCount: 4, Attending: false},
		{InvitationID: "inv-2", GuestName: "D", GuestCount: 1, Attending: true},
	} {
		require.NoError(t, repo.Create(ctx, &r))
	}

	summary, err := repo.Summary(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, models.RSVPSummary{TotalResponses: 3, AttendingCount: 5, DeclineCount: 1}, summary)

	list, err := repo.FindByInvitationID(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "C", list[0].GuestName)

	assert.Error(t, repo.Create(ctx, &models.InvitationRSVP{GuestName: "orphan"}))
}

func TestInvitationGuestbookRepository(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	repo := NewInvitationGuestbookRepositoryTx(db)

	require.NoError(t, repo.Create(ctx, &models.InvitationGuestbookEntry{InvitationID: "inv-1", AuthorName: "A", Content: "first"}))
	require.NoError(t, repo.Create(ctx, &models.InvitationGuestbookEntry{InvitationID: "inv-1", AuthorName: "B", Content: "second"}))

	entries, err := repo.FindByInvitationID(ctx, "inv-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Content)

	none, err := repo.FindByInvitationID(ctx, "inv-404")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestWithTxRollsBack(t *testing.T) {
	db := testdb.Open(t)
	repo := NewInvitationGuestbookRepositoryTx(db)

	err := db.Transaction(func(tx *gorm.DB) error {
		ctx := WithTx(context.Background(), tx)
		require.NoError(t, repo.Create(ctx, &models.InvitationGuestbookEntry{InvitationID: "inv-1", AuthorName: "A", Content: "x"}))
		return gorm.ErrInvalidData
	})
	require.ErrorIs(t, err, gorm.ErrInvalidData)

	entries, err := repo.FindByInvitationID(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
