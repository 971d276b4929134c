package handlers

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/SirARLOTech/anti-link/bot"
	"github.com/SirARLOTech/anti-link/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HandleStatusCommand shows runtime and host statistics. Guild owner only.
func HandleStatusCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !utils.IsGuildOwner(s, i.GuildID, i.Member.User.ID) {
		utils.SendErrorResponse(s, i, "Only the server owner can use this command.")
		return
	}

	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	cpuUsage := "n/a"
	if len(cpuPercent) > 0 {
		cpuUsage = fmt.Sprintf("%.1f%%", cpuPercent[0])
	}

	var dbSizeMB int64
	if info, err := os.Stat(b.Config.DatabasePath); err == nil {
		dbSizeMB = info.Size() / 1024 / 1024
	}

	uptime := time.Since(b.StartedAt).Round(time.Second)

	embed := &discordgo.MessageEmbed{
		Title: "Bot Status",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💻 OS", Value: fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion), Inline: true},
			{Name: "🐹 Go", Value: runtime.Version(), Inline: true},
			{Name: "⏳ Uptime", Value: uptime.String(), Inline: true},
			{Name: "🔼 CPUs", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "🔥 CPU Usage", Value: cpuUsage, Inline: true},
			{Name: "🧠 Memory", Value: fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024), Inline: true},
			{Name: "🗃️ Database", Value: fmt.Sprintf("%d MB", dbSizeMB), Inline: true},
			{Name: "⏱️ Latency", Value: s.HeartbeatLatency().String(), Inline: true},
			{Name: "🚀 Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "🌍 Guilds", Value: fmt.Sprintf("%d", len(s.State.Guilds)), Inline: true},
			{Name: "⚙️ Configured Guilds", Value: fmt.Sprintf("%d", b.Policies.GuildCount()), Inline: true},
			{Name: "⏸️ Active Suspensions", Value: fmt.Sprintf("%d", b.Scheduler.PendingCount()), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Status as of " + time.Now().Format("15:04"),
		},
	}
	utils.SendEphemeralEmbedResponse(s, i, embed)
}
