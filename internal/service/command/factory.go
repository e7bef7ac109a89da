package command

import (
	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

// NewCommands lists the console commands in matching order. "help" shares the
// "man" handler but keeps its own slot so the manual lists both.
func NewCommands(r *Responders) []core.CommandSpec {
	return []core.CommandSpec{
		{Phrase: "man", Usage: "man", Description: "Show this help page", Handler: r.Help},
		{Phrase: "help", Usage: "help", Description: `Alias of the "man" command`, Handler: r.Help},
		{Phrase: "exit", Usage: "exit", Description: "Kill the CLI (and the rest of the application)", Handler: r.Exit},
		{Phrase: "stats", Usage: "stats", Description: "Get statistics on the underlying operating system and resource utilization", Handler: r.Stats},
		{Phrase: "list users", Usage: "list users", Description: "Show a list of all the registered (undeleted) users in the system", Handler: r.ListUsers},
		{Phrase: "more user info", Usage: "more user info --{userId}", Description: "Show details of a specific user", Handler: r.MoreUserInfo},
		{Phrase: "list checks", Usage: "list checks --up --down", Description: `Show a list of all the active checks in the system, including their state. The "--up" and the "--down" flags are both optional`, Handler: r.ListChecks},
		{Phrase: "more check info", Usage: "more check info --{checkId}", Description: "Show details of a specified check", Handler: r.MoreCheckInfo},
		{Phrase: "list logs", Usage: "list logs", Description: "Show the list of all the log files available to be read (compressed only)", Handler: r.ListLogs},
		{Phrase: "more log info", Usage: "more log info --{fileName}", Description: "Show details of a specified log file", Handler: r.MoreLogInfo},
	}
}
