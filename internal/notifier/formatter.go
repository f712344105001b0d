package notifier

import (
	"fmt"
	"strings"

	"VelocityWatch/internal/pipeline"
	"VelocityWatch/internal/strategy"
)

// FormatVelocityReport formats the latest velocity reading into a Telegram message.
func FormatVelocityReport(report *pipeline.Report) string {
	rec := report.Latest
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 <b>%s Velocity</b> | %s\n\n", report.Symbol, rec.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("종가: %.2f\n\n", rec.Close))

	b.WriteString("🔢 <b>Velocity 계산:</b>\n")
	b.WriteString(fmt.Sprintf("  240일 성장률: %.2f%%\n", rec.Growth240))
	b.WriteString(fmt.Sprintf("  480일 성장률: %.2f%%\n", rec.Growth480))
	b.WriteString(fmt.Sprintf("  1200일 성장률: %.2f%%\n", rec.Growth1200))
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  Velocity = (%.2f + %.2f + %.2f) × 1/3 = <b>%.2f%%</b>\n\n",
		rec.Growth240, rec.Growth480, rec.Growth1200, rec.Velocity))

	b.WriteString(fmt.Sprintf("💰 <b>%s:</b> %s\n", report.Zone.Label, report.Zone.Recommendation))
	return b.String()
}

// FormatZoneTable formats the full threshold table for the /zones command.
func FormatZoneTable() string {
	var b strings.Builder
	b.WriteString("📑 <b>Velocity 구간 기준</b>\n\n")

	bounds := []string{"> 150%", "100~150%", "50~100%", "0~50%"}
	for i, z := range strategy.Zones {
		b.WriteString(fmt.Sprintf("  %s (%s): %s\n", z.Zone.Label, bounds[i], z.Zone.Recommendation))
	}
	b.WriteString(fmt.Sprintf("  %s (≤ 0%%): %s\n", strategy.DefaultZone.Label, strategy.DefaultZone.Recommendation))
	return b.String()
}
