package moderation

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/SirARLOTech/anti-link/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBackoff = 20 * time.Millisecond

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, 3*time.Second, 10*time.Millisecond, msg)
}

func TestSuspendAppliesSuspendRole(t *testing.T) {
	db := newTestDB(t)
	actions := newFakeActions()
	actions.setMemberRolesState("g1", "u1", []string{"role-a", "role-b"})

	s := NewScheduler(db, actions, testBackoff)
	defer s.Stop()

	require.NoError(t, s.Suspend("g1", "u1", "role-suspended", time.Hour))

	assert.Equal(t, []string{"role-suspended"}, actions.memberRolesState("g1", "u1"))

	task, err := storage.GetSuspension(db, "g1", "u1")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.ElementsMatch(t, []string{"role-a", "role-b"}, task.OriginalRoleIDs)
	assert.Equal(t, 1, s.PendingCount())
}

func TestSuspendRestoresAfterExpiry(t *testing.T) {
	db := newTestDB(t)
	actions := newFakeActions()
	actions.setMemberRolesState("g1", "u1", []string{"role-a", "role-b"})

	s := NewScheduler(db, actions, testBackoff)
	defer s.Stop()

	require.NoError(t, s.Suspend("g1", "u1", "role-suspended", 50*time.Millisecond))
	assert.Equal(t, []string{"role-suspended"}, actions.memberRolesState("g1", "u1"))

	waitFor(t, func() bool {
		task, err := storage.GetSuspension(db, "g1", "u1")
		return err == nil && task == nil
	}, "task should be deleted after restoration")

	assert.ElementsMatch(t, []string{"role-a", "role-b"}, actions.memberRolesState("g1", "u1"))
	assert.Equal(t, 0, s.PendingCount())
}

func TestSchedulerResumesAfterRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moderation.db")
	db := newTestDBAt(t, path)
	actions := newFakeActions()
	actions.setMemberRolesState("g1", "u1", []string{"role-a"})

	s := NewScheduler(db, actions, testBackoff)
	require.NoError(t, s.Suspend("g1", "u1", "role-suspended", 80*time.Millisecond))

	// Simulated crash: timers are lost, the task row is not.
	s.Stop()
	require.NoError(t, db.Close())

	db2 := newTestDBAt(t, path)
	s2 := NewScheduler(db2, actions, testBackoff)
	defer s2.Stop()
	require.NoError(t, s2.Resume())

	waitFor(t, func() bool {
		task, err := storage.GetSuspension(db2, "g1", "u1")
		return err == nil && task == nil
	}, "resumed task should restore and delete itself")

	assert.Equal(t, []string{"role-a"}, actions.memberRolesState("g1", "u1"))
}

func TestSchedulerResumesPastDueImmediately(t *testing.T) {
	db := newTestDB(t)
	actions := newFakeActions()

	// A task whose expiry already passed, as left behind by downtime.
	require.NoError(t, storage.SaveSuspension(db, model.SuspensionTask{
		GuildID:         "g1",
		UserID:          "u1",
		SuspendRoleID:   "role-suspended",
		OriginalRoleIDs: []string{"role-a", "role-b"},
		ExpiresAt:       time.Now().Add(-time.Minute),
	}))
	actions.setMemberRolesState("g1", "u1", []string{"role-suspended"})

	s := NewScheduler(db, actions, testBackoff)
	defer s.Stop()
	require.NoError(t, s.Resume())

	waitFor(t, func() bool {
		task, err := storage.GetSuspension(db, "g1", "u1")
		return err == nil && task == nil
	}, "past-due task should restore immediately")

	assert.ElementsMatch(t, []string{"role-a", "role-b"}, actions.memberRolesState("g1", "u1"))
}

func TestRestorationRetriesUntilPlatformRecovers(t *testing.T) {
	db := newTestDB(t)
	actions := newFakeActions()
	actions.setMemberRolesState("g1", "u1", []string{"role-a"})

	s := NewScheduler(db, actions, testBackoff)
	defer s.Stop()

	require.NoError(t, s.Suspend("g1", "u1", "role-suspended", 30*time.Millisecond))
	actions.setFailSetRoles(errors.New("platform unavailable"))

	// Let at least one restoration attempt fail, then recover the platform.
	time.Sleep(100 * time.Millisecond)
	task, err := storage.GetSuspension(db, "g1", "u1")
	require.NoError(t, err)
	require.NotNil(t, task, "task must survive failed restoration attempts")

	actions.setFailSetRoles(nil)
	waitFor(t, func() bool {
		task, err := storage.GetSuspension(db, "g1", "u1")
		return err == nil && task == nil
	}, "restoration should succeed once the platform recovers")

	assert.Equal(t, []string{"role-a"}, actions.memberRolesState("g1", "u1"))
}

func TestRestorationIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	actions := newFakeActions()
	actions.setMemberRolesState("g1", "u1", []string{"role-a"})

	s := NewScheduler(db, actions, testBackoff)
	defer s.Stop()

	require.NoError(t, s.Suspend("g1", "u1", "role-suspended", 30*time.Millisecond))
	waitFor(t, func() bool {
		task, err := storage.GetSuspension(db, "g1", "u1")
		return err == nil && task == nil
	}, "task should complete")

	calls := actions.setRolesCount()

	// A duplicate timer firing after completion finds no task and must not
	// touch roles again.
	s.fire("g1", "u1")
	assert.Equal(t, calls, actions.setRolesCount())
	assert.Equal(t, []string{"role-a"}, actions.memberRolesState("g1", "u1"))
}

func TestCancelRestoresEarly(t *testing.T) {
	db := newTestDB(t)
	actions := newFakeActions()
	actions.setMemberRolesState("g1", "u1", []string{"role-a", "role-b"})

	s := NewScheduler(db, actions, testBackoff)
	defer s.Stop()

	require.NoError(t, s.Suspend("g1", "u1", "role-suspended", time.Hour))
	require.NoError(t, s.Cancel("g1", "u1"))

	assert.ElementsMatch(t, []string{"role-a", "role-b"}, actions.memberRolesState("g1", "u1"))
	task, err := storage.GetSuspension(db, "g1", "u1")
	require.NoError(t, err)
	assert.Nil(t, task)
	assert.Equal(t, 0, s.PendingCount())

	assert.ErrorIs(t, s.Cancel("g1", "u1"), ErrNoSuchSuspension)
}

func TestResuspendKeepsOriginalRoles(t *testing.T) {
	db := newTestDB(t)
	actions := newFakeActions()
	actions.setMemberRolesState("g1", "u1", []string{"role-a", "role-b"})

	s := NewScheduler(db, actions, testBackoff)
	defer s.Stop()

	require.NoError(t, s.Suspend("g1", "u1", "role-suspended", time.Hour))
	// The second suspension happens while the user only holds the suspend
	// role; the first capture must carry forward.
	require.NoError(t, s.Suspend("g1", "u1", "role-suspended", 50*time.Millisecond))
	assert.Equal(t, 1, s.PendingCount())

	waitFor(t, func() bool {
		task, err := storage.GetSuspension(db, "g1", "u1")
		return err == nil && task == nil
	}, "superseding suspension should complete")

	assert.ElementsMatch(t, []string{"role-a", "role-b"}, actions.memberRolesState("g1", "u1"))
}

func TestSuspendScenarioTiming(t *testing.T) {
	// Suspend for a short interval at t=0: roles swap immediately, and once
	// the expiry passes the pre-suspension set is back and the row is gone.
	db := newTestDB(t)
	actions := newFakeActions()
	actions.setMemberRolesState("g", "u", []string{"member", "regular"})

	s := NewScheduler(db, actions, testBackoff)
	defer s.Stop()

	require.NoError(t, s.Suspend("g", "u", "suspended", 60*time.Millisecond))
	assert.Equal(t, []string{"suspended"}, actions.memberRolesState("g", "u"))

	waitFor(t, func() bool {
		task, err := storage.GetSuspension(db, "g", "u")
		return err == nil && task == nil
	}, "suspension should expire")

	assert.ElementsMatch(t, []string{"member", "regular"}, actions.memberRolesState("g", "u"))
}
