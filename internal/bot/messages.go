package bot

const helpMsg = `Available commands:
	/duty - go on or off duty
	/status - show your duty status and this week's total
	/help - show this message

Weekly totals are posted and reset once per reporting period.
`

// replies
const (
	nowOnDutyMsg        = "✅ You are now on duty."
	nowOffDutyMsg       = "✅ You are now off duty."
	notAuthorizedMsg    = "⛔ You are not allowed to go on duty."
	authCheckFailedMsg  = "⚠️ Could not verify your permissions, please try again later."
	leaderboardTitle    = "🏆 Weekly Duty Leaderboard"
	weeklyHoursTitle    = "📋 Weekly Duty Hours"
	reportFileCaption   = "Weekly duty report"
	privateChatTitle    = "private chat"
	unknownOfficerTitle = "user %d"
)

const clockedInTemplate = `🟢 Clocked In
Officer: %s
Clock In Time: %s`

const clockedOutTemplate = `🔴 Clocked Out
Officer: %s
Clock In Time: %s
Total Time on Duty: %s`

const (
	clockedInDirectTemplate  = "🟢 You clocked in at %s."
	clockedOutDirectTemplate = "🔴 You clocked out. Time on duty: %s."
	weeklyDirectTemplate     = "📊 Your duty time this week: %dh %dm."
)

const (
	statusOnDutyTemplate  = "🟢 You are on duty since %s (%s so far).\nThis week: %dh %dm"
	statusOffDutyTemplate = "🔴 You are off duty.\nThis week: %dh %dm"
)

const activityTemplate = `📌 Bot Activity Log
User: %s
Command: /%s
Chat: %s
User ID: %d`
