package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
)

type CommandType string

const (
	CmdSchedule CommandType = "takvim"
	CmdTest     CommandType = "test"
	CmdHistory  CommandType = "history"
	CmdHelp     CommandType = "help"
)

var ErrUnknownCommand = errors.New("unknown command")

type Command struct {
	Type  CommandType
	Args  []string
	Limit int // history only
	Raw   string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "takvim", "schedule", "list", "ls":
		cmd.Type = CmdSchedule
	case "test":
		cmd.Type = CmdTest
	case "history", "gecmis", "geçmiş":
		cmd.Type = CmdHistory
		cmd.Limit = domain.DefaultHistoryLimit
		if len(cmd.Args) > 0 {
			n, err := strconv.Atoi(cmd.Args[0])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid history size %q, use a positive number", cmd.Args[0])
			}
			cmd.Limit = n
		}
	case "help", "yardim", "yardım":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}

	return cmd, nil
}

// GetHelpText renders the command list using prefix as the invocation, for
// example "!" on Discord or "/events " on Slack.
func GetHelpText(prefix string) string {
	return `*Available Commands:*

• ` + "`" + prefix + "takvim`" + ` - List the events still ahead today
• ` + "`" + prefix + "test`" + ` - Send a test reminder for an event 2 minutes from now
• ` + "`" + prefix + "history [n]`" + ` - Show the last n reminders sent (default 10, max 50)
• ` + "`" + prefix + "help`" + ` - Show this message`
}
