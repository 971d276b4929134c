package moderation

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SirARLOTech/anti-link/storage"
	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	return newTestDBAt(t, filepath.Join(t.TempDir(), "moderation.db"))
}

// newTestDBAt opens the moderation database at a fixed path so tests can
// simulate a restart by opening the same file again.
func newTestDBAt(t *testing.T, path string) *sqlx.DB {
	t.Helper()
	db, err := storage.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

type sentMessage struct {
	ChannelID string
	Content   string
}

type sentEmbed struct {
	ChannelID string
	Embed     *discordgo.MessageEmbed
}

type timeoutCall struct {
	GuildID string
	UserID  string
	Until   time.Time
}

type memberAction struct {
	GuildID string
	UserID  string
	Reason  string
}

type setRolesCall struct {
	GuildID string
	UserID  string
	RoleIDs []string
}

// fakeActions records every platform call and lets tests inject failures.
type fakeActions struct {
	mu sync.Mutex

	deleted  []sentMessage
	messages []sentMessage
	embeds   []sentEmbed
	dms      []string
	timeouts []timeoutCall
	kicks    []memberAction
	bans     []memberAction
	setRoles []setRolesCall

	roles map[string][]string

	failTimeout  error
	failDM       error
	failSetRoles error
}

func newFakeActions() *fakeActions {
	return &fakeActions{roles: make(map[string][]string)}
}

func (f *fakeActions) key(guildID, userID string) string { return guildID + "/" + userID }

func (f *fakeActions) DeleteMessage(channelID, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, sentMessage{ChannelID: channelID, Content: messageID})
	return nil
}

func (f *fakeActions) SendMessage(channelID, content string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, sentMessage{ChannelID: channelID, Content: content})
	return fmt.Sprintf("msg-%d", len(f.messages)), nil
}

func (f *fakeActions) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embeds = append(f.embeds, sentEmbed{ChannelID: channelID, Embed: embed})
	return nil
}

func (f *fakeActions) SendDirectMessage(userID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDM != nil {
		return f.failDM
	}
	f.dms = append(f.dms, content)
	return nil
}

func (f *fakeActions) TimeoutUser(guildID, userID string, until time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTimeout != nil {
		return f.failTimeout
	}
	f.timeouts = append(f.timeouts, timeoutCall{GuildID: guildID, UserID: userID, Until: until})
	return nil
}

func (f *fakeActions) KickUser(guildID, userID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kicks = append(f.kicks, memberAction{GuildID: guildID, UserID: userID, Reason: reason})
	return nil
}

func (f *fakeActions) BanUser(guildID, userID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bans = append(f.bans, memberAction{GuildID: guildID, UserID: userID, Reason: reason})
	return nil
}

func (f *fakeActions) MemberRoles(guildID, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	roles := f.roles[f.key(guildID, userID)]
	out := make([]string, len(roles))
	copy(out, roles)
	return out, nil
}

func (f *fakeActions) SetMemberRoles(guildID, userID string, roleIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSetRoles != nil {
		return f.failSetRoles
	}
	roles := make([]string, len(roleIDs))
	copy(roles, roleIDs)
	f.roles[f.key(guildID, userID)] = roles
	f.setRoles = append(f.setRoles, setRolesCall{GuildID: guildID, UserID: userID, RoleIDs: roles})
	return nil
}

func (f *fakeActions) setMemberRolesState(guildID, userID string, roleIDs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[f.key(guildID, userID)] = roleIDs
}

func (f *fakeActions) memberRolesState(guildID, userID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roles[f.key(guildID, userID)]
}

func (f *fakeActions) setRolesCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.setRoles)
}

func (f *fakeActions) setFailSetRoles(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSetRoles = err
}

func (f *fakeActions) snapshotEmbeds() []sentEmbed {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentEmbed, len(f.embeds))
	copy(out, f.embeds)
	return out
}
