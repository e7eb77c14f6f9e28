package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/satstream/internal/common"
	"github.com/dmitrijs2005/satstream/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAndGlobalStats(t *testing.T) {
	svc, clock := newTestService(t)

	a := createDefault(t, svc)
	_, err := svc.CreateStream(as(bob), alice, 1, 1000, 10)
	require.NoError(t, err)
	_, err = svc.CreateTemplate(as(alice), "t", "", 1, 1)
	require.NoError(t, err)

	clock.Advance(20 * time.Second)
	svc.Tick(context.Background())
	_, err = svc.CancelStream(as(alice), a)
	require.NoError(t, err)

	us, err := svc.UserStats(as(alice))
	require.NoError(t, err)
	assert.Equal(t, models.UserStats{
		StreamsSent:           1,
		StreamsReceived:       1,
		ActiveSent:            0,
		ActiveReceived:        0,
		TotalLockedOutgoing:   1000,
		TotalReleasedOutgoing: 200,
		ClaimableIncoming:     10,
	}, us)

	_, err = svc.UserStats(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)

	gs := svc.GlobalStats(context.Background())
	assert.Equal(t, models.GlobalStats{
		TotalStreams:   2,
		Active:         0,
		Completed:      1,
		Cancelled:      1,
		TotalLocked:    1010,
		TotalReleased:  210,
		TotalBuffered:  210,
		TotalTemplates: 1,
	}, gs)
}

func TestSnapshotRestore(t *testing.T) {
	svc, clock := newTestService(t)
	createDefault(t, svc)
	_, err := svc.CreateTemplate(as(alice), "t", "", 1, 1)
	require.NoError(t, err)
	clock.Advance(10 * time.Second)
	svc.Tick(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, uint64(1), snap.NextStreamID)
	assert.Equal(t, uint64(1), snap.NextTemplateID)

	other, _ := newTestService(t)
	other.Restore(snap)
	assert.Equal(t, snap, other.Snapshot())

	id, err := other.CreateStream(as(bob), alice, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
}
