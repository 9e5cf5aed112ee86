package analytics

import (
	"fmt"
	"sort"
	"time"

	"chat-relay/internal/storage"
)

// DailyStats aggregates one day of recorded interactions.
type DailyStats struct {
	Date          string        `json:"date"`
	TotalMessages int           `json:"total_messages"`
	UniqueChats   int           `json:"unique_chats"`
	TotalTokens   int           `json:"total_tokens"`
	ChatMessages  map[int64]int `json:"chat_messages"`
}

// AnalyzeDailyLogs computes stats for the day containing targetDate.
func AnalyzeDailyLogs(events []storage.Event, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:         startOfDay.Format("2006-01-02"),
		ChatMessages: make(map[int64]int),
	}

	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}
		if event.UserMessage == "" {
			continue
		}
		stats.TotalMessages++
		stats.TotalTokens += event.TotalTokens
		stats.ChatMessages[event.ChatID]++
	}

	stats.UniqueChats = len(stats.ChatMessages)
	return stats
}

// ReportSummary renders a plain-text report suitable for a Telegram message.
func (ds *DailyStats) ReportSummary() string {
	summary := fmt.Sprintf("Usage report for %s:\n- messages: %d\n- chats: %d\n- tokens: %d\n",
		ds.Date, ds.TotalMessages, ds.UniqueChats, ds.TotalTokens)

	if len(ds.ChatMessages) == 0 {
		return summary
	}

	ids := make([]int64, 0, len(ds.ChatMessages))
	for id := range ds.ChatMessages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	summary += "\nPer chat:\n"
	for _, id := range ids {
		summary += fmt.Sprintf("- %d: %d\n", id, ds.ChatMessages[id])
	}
	return summary
}
