package bot

import (
	"fmt"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/screens"
	"github.com/maxaizer/career-bot/internal/state"
	"github.com/samber/lo"
	"strings"
)

const jobsHelp = "Jobs commands:\n" +
	"search <text> - search by title or company\n" +
	"filters - show or hide filters\n" +
	"toggle type <Full-time|Part-time|Contract|Internship>\n" +
	"toggle location <Remote|On-site|Hybrid>\n" +
	"clear - reset filters\n" +
	"refresh - reload the list"

type jobsView struct {
	chatID int64
	jobs   *screens.Jobs
}

func newJobsView(chatID int64, jobs *screens.Jobs) *jobsView {
	return &jobsView{chatID: chatID, jobs: jobs}
}

func (v *jobsView) Render() botApi.MessageConfig {
	msg := textMessage(v.chatID, renderJobs(v.jobs.Visible(), v.jobs.Query(), v.jobs.Filters(),
		v.jobs.ShowFilters(), v.jobs.IsRefreshing()))
	msg.ReplyMarkup = screenKeyboard("filters", "refresh", "clear", helpCommand)
	msg.DisableWebPagePreview = true
	return msg
}

func (v *jobsView) HandleInput(input string) botApi.Chattable {
	parsed := parseInput(input)

	switch parsed.name {
	case "search":
		v.jobs.SetQuery(parsed.rest(0))
	case "filters":
		v.jobs.ToggleShowFilters()
	case "toggle":
		if len(parsed.args) < 2 {
			return textMessage(v.chatID, jobsHelp)
		}
		if err := v.jobs.ToggleFilter(strings.ToLower(parsed.args[0]), parsed.rest(1)); err != nil {
			return textMessage(v.chatID, "Unknown filter. "+filterHint(strings.ToLower(parsed.args[0])))
		}
	case "clear":
		v.jobs.ClearFilters()
	case "refresh":
		if !v.jobs.Refresh() {
			return textMessage(v.chatID, "Already refreshing...")
		}
	default:
		return textMessage(v.chatID, jobsHelp)
	}
	return nil
}

func filterHint(category string) string {
	values := models.FilterValues(category)
	if len(values) == 0 {
		return "Categories: " + strings.Join(models.FilterCategories(), ", ")
	}
	return "Values: " + strings.Join(values, ", ")
}

func renderJobs(jobs []models.JobPosting, query string, filters state.FilterSet, showFilters, refreshing bool) string {

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs (%d)", len(jobs)))
	if refreshing {
		sb.WriteString(" - refreshing...")
	}
	sb.WriteString("\n")
	if query != "" {
		sb.WriteString(fmt.Sprintf("Search: %q\n", query))
	}

	if !showFilters && !filters.IsEmpty() {
		var active []string
		for _, category := range models.FilterCategories() {
			active = append(active, filters.Selected(category, models.FilterValues(category))...)
		}
		sb.WriteString("Filters: " + strings.Join(active, ", ") + "\n")
	}

	if showFilters {
		for _, category := range models.FilterCategories() {
			values := lo.Map(models.FilterValues(category), func(value string, _ int) string {
				if filters.Has(category, value) {
					return "[x] " + value
				}
				return "[ ] " + value
			})
			sb.WriteString(fmt.Sprintf("%s: %s\n", category, strings.Join(values, "  ")))
		}
	}

	if len(jobs) == 0 {
		sb.WriteString("\nNo jobs match.")
		return sb.String()
	}

	for i, job := range jobs {
		sb.WriteString(fmt.Sprintf("\n%d. %s\n   %s, %s\n   %s | %s | %s\n   Posted %s\n",
			i+1, job.Title, job.Company, job.Location, job.Salary, job.Type, job.WorkLocation, job.PostedDate))
	}
	return sb.String()
}
