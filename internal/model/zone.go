package model

// Zone labels a velocity reading with a trading recommendation.
type Zone struct {
	Label          string
	Recommendation string
}

// The five trading zones, ordered from hottest to coldest.
var (
	ZoneBubble     = Zone{Label: "버블구간", Recommendation: "매수중단 + 알파매도"}
	ZoneOverheated = Zone{Label: "과속구간", Recommendation: "차등 소량 매수"}
	ZoneNormal     = Zone{Label: "평속구간", Recommendation: "정상 매수"}
	ZoneSlow       = Zone{Label: "저속구간", Recommendation: "차등 과량 매수"}
	ZoneRetreat    = Zone{Label: "후퇴구간", Recommendation: "+알파 매수"}
)
