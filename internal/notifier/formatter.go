package notifier

import (
	"fmt"
	"sort"
	"strings"

	"HoopsSentinel/internal/model"
)

const (
	colorHeader      = "#1a3a5c"
	colorTableHead   = "#2d6a9f"
	colorRowEven     = "#f0f5fb"
	colorRowOdd      = "#ffffff"
	colorAlert       = "#fff3cd"
	colorDanger      = "#fde8e8"
	colorSuccess     = "#e8f5e9"
	colorUntouchable = "#fff9e6"
	colorMuted       = "#6c757d"
	colorGreen       = "#2e7d32"
	colorRed         = "#c62828"
	colorYellow      = "#f57f17"
)

// FormatDailyReport renders the full HTML email body.
func FormatDailyReport(r *model.Report) string {
	var b strings.Builder

	dayLabel := ""
	if r.IncludeUntouchables {
		dayLabel = " (MONDAY)"
	}

	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"UTF-8\"/></head>")
	b.WriteString("<body style=\"margin:0;padding:20px;background:#eef2f7;font-family:'Segoe UI',Arial,sans-serif;\">")
	b.WriteString("<table width=\"700\" align=\"center\" cellpadding=\"0\" cellspacing=\"0\" style=\"background:#fff;border-radius:8px;overflow:hidden;\">")
	b.WriteString(fmt.Sprintf(
		"<tr><td style=\"background:%s;padding:20px 24px;\"><p style=\"margin:0;font-size:22px;font-weight:800;color:#fff;\">&#127936; Fantasy Hoops Daily Report%s</p>"+
			"<p style=\"margin:4px 0 0;font-size:13px;color:#cfd8e3;\">%s</p></td></tr>",
		colorHeader, dayLabel, r.Date.Format("2006-01-02")))

	if r.IncludeUntouchables {
		writeUntouchables(&b, r.Untouchables)
	}
	writeActiveLineup(&b, r.Lineup.Active)
	writeBench(&b, r.Lineup.Bench, r.BenchShape.Summary)
	writeILFlags(&b, &r.ILFlags)
	writeWaiverSection(&b, "WAIVER WIRE &mdash; ACTIVE ROSTER UPGRADES", r.ActiveUpgrades, false)
	writeWaiverSection(&b, "WAIVER WIRE &mdash; BENCH UPGRADES", r.BenchUpgrades, true)
	writeAlerts(&b, r.Alerts)

	b.WriteString("</table></body></html>")
	return b.String()
}

// Subject returns the email subject line for a report.
func Subject(r *model.Report) string {
	tag := ""
	if len(r.Alerts) > 0 {
		tag = fmt.Sprintf(" [%d alerts]", len(r.Alerts))
	}
	return fmt.Sprintf("Fantasy Hoops Report %s%s", r.Date.Format("2006-01-02"), tag)
}

func sectionHeader(b *strings.Builder, title string) {
	b.WriteString(fmt.Sprintf(
		"<tr><td style=\"background:%s;color:#fff;font-size:16px;font-weight:700;padding:12px 16px;\">%s</td></tr>",
		colorHeader, title))
}

func openTable(b *strings.Builder, cols ...string) {
	b.WriteString("<tr><td><table width=\"100%\" cellpadding=\"0\" cellspacing=\"0\">")
	b.WriteString("<tr>")
	for _, c := range cols {
		b.WriteString(fmt.Sprintf(
			"<th style=\"background:%s;color:#fff;padding:8px 12px;text-align:left;font-size:13px;\">%s</th>",
			colorTableHead, c))
	}
	b.WriteString("</tr>")
}

func closeTable(b *strings.Builder) {
	b.WriteString("</table></td></tr>")
}

func td(value string) string {
	return fmt.Sprintf("<td style=\"padding:7px 12px;font-size:13px;\">%s</td>", value)
}

func tdColor(value, color string) string {
	return fmt.Sprintf("<td style=\"padding:7px 12px;font-size:13px;color:%s;\">%s</td>", color, value)
}

func note(b *strings.Builder, text, color string) {
	b.WriteString(fmt.Sprintf(
		"<tr><td style=\"padding:10px 16px;font-size:13px;color:%s;font-weight:600;\">%s</td></tr>", color, text))
}

func rowBG(i int) string {
	if i%2 == 0 {
		return colorRowEven
	}
	return colorRowOdd
}

func statusBadge(s model.Status) string {
	switch {
	case s.HardOut():
		return pill(string(s), colorRed)
	case s.GameImpacting():
		return pill(string(s), colorYellow)
	}
	return pill("OK", colorGreen)
}

func pill(text, bg string) string {
	return fmt.Sprintf(
		"<span style=\"background:%s;color:#fff;padding:2px 8px;border-radius:12px;font-size:11px;font-weight:600;\">%s</span>",
		bg, text)
}

func rankCell(r model.Rank) string {
	if !r.Known {
		return "&mdash;"
	}
	return fmt.Sprintf("%d", r.Value)
}

func yesNo(b bool) string {
	if b {
		return fmt.Sprintf("<span style=\"color:%s;\">Yes</span>", colorGreen)
	}
	return fmt.Sprintf("<span style=\"color:%s;\">No</span>", colorRed)
}

func writeUntouchables(b *strings.Builder, untouchables map[string]float64) {
	if len(untouchables) == 0 {
		return
	}
	sectionHeader(b, "&#11088; WEEKLY UNTOUCHABLES (Do Not Drop)")
	openTable(b, "Player", "MVP %")

	names := make([]string, 0, len(untouchables))
	for name := range untouchables {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if untouchables[names[i]] != untouchables[names[j]] {
			return untouchables[names[i]] > untouchables[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		b.WriteString(fmt.Sprintf("<tr style=\"background:%s;\">%s%s</tr>",
			colorUntouchable,
			td("<strong>"+name+"</strong>"),
			tdColor(fmt.Sprintf("%.1f%%", untouchables[name]), colorYellow)))
	}
	closeTable(b)
}

func writeActiveLineup(b *strings.Builder, active []model.LineupEntry) {
	sectionHeader(b, "&#9989; RECOMMENDED ACTIVE LINEUP")
	openTable(b, "Slot", "Player", "30-Day Rank", "14-Day Rank", "Game Today", "Status", "Flags")

	for i, p := range active {
		bg := rowBG(i)
		switch {
		case p.FlagInjured:
			bg = colorDanger
		case p.FlagLowRank:
			bg = colorAlert
		case p.Untouchable:
			bg = colorUntouchable
		}

		var flags []string
		if p.Untouchable {
			flags = append(flags, pill("UNTOUCHABLE", colorYellow))
		}
		if p.FlagLowRank {
			flags = append(flags, pill("LOW RANK", colorRed))
		}
		if p.FlagInjured {
			flags = append(flags, pill("INJURED", colorRed))
		}

		b.WriteString(fmt.Sprintf("<tr style=\"background:%s;\">%s%s%s%s%s%s%s</tr>",
			bg,
			td("<strong>"+p.Slot+"</strong>"),
			td(p.Name),
			td(rankCell(p.Rank30)),
			td(rankCell(p.Rank14)),
			td(yesNo(p.HasGameToday)),
			td(statusBadge(p.Status)),
			td(strings.Join(flags, " "))))
	}
	closeTable(b)
}

func writeBench(b *strings.Builder, bench []model.LineupEntry, shape string) {
	sectionHeader(b, "&#129681; RECOMMENDED BENCH")
	if shape != "" {
		b.WriteString(fmt.Sprintf(
			"<tr><td style=\"padding:6px 16px;font-size:12px;color:%s;background:%s;\">Bench shape: %s</td></tr>",
			colorMuted, colorRowEven, shape))
	}
	openTable(b, "Slot", "Player", "30-Day Rank", "14-Day Rank", "Game Today", "Status")

	for i, p := range bench {
		bg := rowBG(i)
		if p.FlagLowRank {
			bg = colorAlert
		}
		b.WriteString(fmt.Sprintf("<tr style=\"background:%s;\">%s%s%s%s%s%s</tr>",
			bg,
			td("BN"),
			td(p.Name),
			td(rankCell(p.Rank30)),
			td(rankCell(p.Rank14)),
			td(yesNo(p.HasGameToday)),
			td(statusBadge(p.Status))))
	}
	closeTable(b)
}

func writeILFlags(b *strings.Builder, flags *model.ILFlags) {
	if !flags.HasAlerts() {
		sectionHeader(b, "&#127973; IL FLAGS")
		note(b, "No IL actions needed &mdash; roster is clean.", colorGreen)
		return
	}

	sectionHeader(b, "&#127973; IL FLAGS &mdash; ACTION REQUIRED")
	openTable(b, "Action", "Player", "Current Slot", "Status")

	for _, m := range flags.MoveToIL {
		b.WriteString(fmt.Sprintf("<tr style=\"background:%s;\">%s%s%s%s</tr>",
			colorDanger,
			td(pill("Move &rarr; IL", colorRed)),
			td(m.Name),
			td(m.CurrentSlot),
			td(statusBadge(m.Status))))
	}
	for _, a := range flags.ActivateFromIL {
		detail := a.Name
		if a.Drop != nil {
			detail += fmt.Sprintf(" <span style=\"color:%s;font-size:12px;\">(drop %s)</span>", colorMuted, a.Drop.Name)
		}
		b.WriteString(fmt.Sprintf("<tr style=\"background:%s;\">%s%s%s%s</tr>",
			colorSuccess,
			td(pill("Activate", colorGreen)),
			td(detail),
			td(a.CurrentSlot),
			td(statusBadge(model.StatusHealthy))))
	}
	closeTable(b)
}

func writeWaiverSection(b *strings.Builder, title string, upgrades []model.Opportunity, bench bool) {
	sectionHeader(b, "&#128260; "+title)
	if len(upgrades) == 0 {
		note(b, "No upgrade opportunities found.", colorMuted)
		return
	}

	if bench {
		openTable(b, "Add (FA)", "Rank (14d)", "MPG", "Weekly Value", "Drop", "Drop Rank (14d)", "Fit", "Improvement", "Notes")
	} else {
		openTable(b, "Add (FA)", "Rank (30d)", "MPG", "Drop", "Slot", "Improvement", "Notes")
	}

	for i, u := range upgrades {
		bg := rowBG(i)
		notes := ""
		if u.UntouchableReplace {
			notes = pill("UNTOUCHABLE DROP", colorRed)
		}
		weekly := "&mdash;"
		if u.WeeklyValue.Known {
			weekly = fmt.Sprintf("%.1f", u.WeeklyValue.Value)
		}
		if bench {
			b.WriteString(fmt.Sprintf("<tr style=\"background:%s;\">%s%s%s%s%s%s%s%s%s</tr>",
				bg,
				td("<strong>"+u.Name+"</strong>"),
				tdColor(rankCell(u.Rank), colorGreen),
				td(fmt.Sprintf("%.1f", u.MPG)),
				td(weekly),
				td(u.ReplaceName),
				td(rankCell(u.ReplaceRank)),
				td(u.PositionFit),
				tdColor(fmt.Sprintf("+%.1f", u.Improvement), colorGreen),
				td(notes)))
		} else {
			b.WriteString(fmt.Sprintf("<tr style=\"background:%s;\">%s%s%s%s%s%s%s</tr>",
				bg,
				td("<strong>"+u.Name+"</strong>"),
				tdColor(rankCell(u.Rank), colorGreen),
				td(fmt.Sprintf("%.1f", u.MPG)),
				td(u.ReplaceName),
				td(u.ReplaceSlot),
				tdColor(fmt.Sprintf("+%.1f", u.Improvement), colorGreen),
				td(notes)))
		}
	}
	closeTable(b)
}

func writeAlerts(b *strings.Builder, alerts []string) {
	sectionHeader(b, "&#9888; ALERTS")
	if len(alerts) == 0 {
		note(b, "No alerts &mdash; all good!", colorGreen)
		return
	}
	for i, alert := range alerts {
		bg := colorRowOdd
		if i%2 == 0 {
			bg = colorAlert
		}
		b.WriteString(fmt.Sprintf("<tr><td style=\"background:%s;padding:7px 16px;font-size:13px;\">&#9888; %s</td></tr>", bg, alert))
	}
}
