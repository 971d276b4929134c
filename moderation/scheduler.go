package moderation

import (
	"fmt"
	"sync"
	"time"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/SirARLOTech/anti-link/storage"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// DefaultRestoreBackoff is the retry delay when a role restoration fails.
const DefaultRestoreBackoff = 30 * time.Second

// Scheduler executes suspensions: it strips a user down to the suspend role,
// persists the original role set with an expiry, and restores the roles when
// the expiry passes. Tasks survive restarts; Resume re-arms their timers at
// boot. A failed restoration is retried with backoff, never dropped.
type Scheduler struct {
	db      *sqlx.DB
	actions PlatformActions
	backoff time.Duration
	locks   *keyedLocks
	log     *logrus.Entry

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewScheduler creates a suspension scheduler. A non-positive backoff falls
// back to DefaultRestoreBackoff.
func NewScheduler(db *sqlx.DB, actions PlatformActions, backoff time.Duration) *Scheduler {
	if backoff <= 0 {
		backoff = DefaultRestoreBackoff
	}
	return &Scheduler{
		db:      db,
		actions: actions,
		backoff: backoff,
		locks:   newKeyedLocks(),
		log:     logrus.WithField("module", "scheduler"),
		timers:  make(map[string]*time.Timer),
	}
}

// Suspend replaces the user's roles with the suspend role and schedules the
// restoration. Suspending an already-suspended user extends the suspension:
// the original role set captured by the first suspension is carried forward
// and the timer is re-armed for the new expiry.
func (s *Scheduler) Suspend(guildID, userID, suspendRoleID string, d time.Duration) error {
	unlock := s.locks.Lock(guildID, userID)
	defer unlock()

	existing, err := storage.GetSuspension(s.db, guildID, userID)
	if err != nil {
		return err
	}

	var originalRoles []string
	if existing != nil {
		originalRoles = existing.OriginalRoleIDs
	} else {
		roles, err := s.actions.MemberRoles(guildID, userID)
		if err != nil {
			return fmt.Errorf("failed to read roles for user %s in guild %s: %w", userID, guildID, err)
		}
		for _, r := range roles {
			if r != suspendRoleID {
				originalRoles = append(originalRoles, r)
			}
		}
	}

	task := model.SuspensionTask{
		GuildID:         guildID,
		UserID:          userID,
		SuspendRoleID:   suspendRoleID,
		OriginalRoleIDs: originalRoles,
		ExpiresAt:       time.Now().Add(d),
	}

	// Persist before touching roles: a crash after this point still restores
	// at the recorded expiry.
	if err := storage.SaveSuspension(s.db, task); err != nil {
		return err
	}

	if err := s.actions.SetMemberRoles(guildID, userID, []string{suspendRoleID}); err != nil {
		if existing == nil {
			// Roles were never touched; drop the task again.
			if delErr := storage.DeleteSuspension(s.db, guildID, userID); delErr != nil {
				s.log.WithError(delErr).Warn("failed to roll back suspension task")
			}
		}
		return fmt.Errorf("failed to apply suspend role to user %s in guild %s: %w", userID, guildID, err)
	}

	s.arm(guildID, userID, time.Until(task.ExpiresAt))
	return nil
}

// Cancel restores the user's roles ahead of schedule and removes the task.
// Exactly one of Cancel and the timer's restoration wins; the loser sees no
// task and does nothing.
func (s *Scheduler) Cancel(guildID, userID string) error {
	unlock := s.locks.Lock(guildID, userID)
	defer unlock()

	task, err := storage.GetSuspension(s.db, guildID, userID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrNoSuchSuspension
	}

	if err := s.actions.SetMemberRoles(guildID, userID, task.OriginalRoleIDs); err != nil {
		return fmt.Errorf("failed to restore roles for user %s in guild %s: %w", userID, guildID, err)
	}
	if err := storage.DeleteSuspension(s.db, guildID, userID); err != nil {
		return err
	}

	s.disarm(guildID, userID)
	return nil
}

// Resume re-arms a timer for every persisted task. Past-due tasks fire
// immediately. Called once at boot, after the session is open.
func (s *Scheduler) Resume() error {
	tasks, err := storage.ListSuspensions(s.db)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		remaining := time.Until(task.ExpiresAt)
		if remaining < 0 {
			remaining = 0
		}
		s.log.WithFields(logrus.Fields{
			"guild": task.GuildID,
			"user":  task.UserID,
		}).Infof("resuming suspension, restore in %s", remaining)
		s.arm(task.GuildID, task.UserID, remaining)
	}
	return nil
}

// Stop disarms every timer. Persisted tasks are untouched; the next Resume
// picks them up.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}

// PendingCount returns the number of armed restoration timers.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Scheduler) arm(guildID, userID string, d time.Duration) {
	key := userKey(guildID, userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.timers[key] = time.AfterFunc(d, func() {
		s.fire(guildID, userID)
	})
}

func (s *Scheduler) disarm(guildID, userID string) {
	key := userKey(guildID, userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
}

// fire runs when a restoration timer elapses. It re-reads the task under the
// user's lock: a cancelled or already-restored task is gone by then and the
// firing is a no-op, which makes duplicate timers harmless.
func (s *Scheduler) fire(guildID, userID string) {
	unlock := s.locks.Lock(guildID, userID)
	defer unlock()

	task, err := storage.GetSuspension(s.db, guildID, userID)
	if err != nil {
		s.log.WithError(err).Error("failed to read suspension task, retrying")
		s.arm(guildID, userID, s.backoff)
		return
	}
	if task == nil {
		s.disarm(guildID, userID)
		return
	}
	if time.Now().Before(task.ExpiresAt) {
		// Superseded by a newer suspension; its own timer is armed.
		return
	}

	if err := s.actions.SetMemberRoles(guildID, userID, task.OriginalRoleIDs); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"guild": guildID,
			"user":  userID,
		}).Warnf("role restoration failed, retrying in %s", s.backoff)
		s.arm(guildID, userID, s.backoff)
		return
	}

	if err := storage.DeleteSuspension(s.db, guildID, userID); err != nil {
		// Roles are back; keep retrying until the task row is gone so a
		// restart cannot resurrect a completed suspension.
		s.log.WithError(err).Error("failed to delete completed suspension, retrying")
		s.arm(guildID, userID, s.backoff)
		return
	}

	s.log.WithFields(logrus.Fields{
		"guild": guildID,
		"user":  userID,
	}).Info("suspension completed, roles restored")
	s.disarm(guildID, userID)
}
