package fixture

import (
	"github.com/track247/track247/internal/domain/analytics"
	"github.com/track247/track247/internal/domain/compliance"
	"github.com/track247/track247/internal/domain/dashboard"
	"github.com/track247/track247/internal/domain/patient"
	"github.com/track247/track247/internal/domain/workflow"
)

// Default returns a fresh copy of the built-in dataset. Callers may modify it.
func Default() *Seed {
	return &Seed{
		Dashboard:  defaultDashboard(),
		Patients:   defaultPatients(),
		Workflows:  defaultWorkflows(),
		Analytics:  defaultAnalytics(),
		Compliance: defaultCompliance(),
	}
}

func defaultDashboard() dashboard.Data {
	return dashboard.Data{
		Stats: []dashboard.StatCard{
			{Title: "Total Patients", Value: "2,847", Change: "+12%", Trend: dashboard.TrendUp, Icon: "users", Accent: "text-blue-600"},
			{Title: "Follow-up Rate", Value: "87.4%", Change: "+5.2%", Trend: dashboard.TrendUp, Icon: "trending-up", Accent: "text-green-600"},
			{Title: "No-Show Reduction", Value: "42%", Change: "+8%", Trend: dashboard.TrendUp, Icon: "calendar", Accent: "text-purple-600"},
			{Title: "Response Time", Value: "2.3h", Change: "-15%", Trend: dashboard.TrendDown, Icon: "clock", Accent: "text-orange-600"},
		},
		Channels: []dashboard.ChannelMetric{
			{Channel: "SMS", Sent: 1240, Responded: 892, Rate: 72},
			{Channel: "Email", Sent: 980, Responded: 647, Rate: 66},
			{Channel: "WhatsApp", Sent: 450, Responded: 387, Rate: 86},
			{Channel: "Phone", Sent: 120, Responded: 89, Rate: 74},
		},
		Activities: []dashboard.Activity{
			{Patient: "Patient #2847", Action: "Responded to SMS reminder", Time: "5 min ago", Status: dashboard.ActivitySuccess},
			{Patient: "Patient #2846", Action: "Missed appointment - Auto follow-up triggered", Time: "12 min ago", Status: dashboard.ActivityWarning},
			{Patient: "Patient #2845", Action: "Rescheduled via WhatsApp", Time: "18 min ago", Status: dashboard.ActivitySuccess},
			{Patient: "Patient #2844", Action: "Email opened - No response yet", Time: "1 hour ago", Status: dashboard.ActivityPending},
		},
		QuickActions: []dashboard.QuickAction{
			{Label: "Add New Patient", Icon: "users"},
			{Label: "Send Bulk SMS", Icon: "message-square"},
			{Label: "Generate Report", Icon: "bar-chart-3"},
		},
	}
}

func defaultPatients() patient.Data {
	return patient.Data{
		Patients: []patient.Record{
			{ID: "P2847", Name: "John D.", Phone: "+1 (555) ***-4567", Email: "j***@email.com", LastContact: "2024-01-15",
				Status: patient.StatusResponded, NextFollowup: "2024-01-20", Channel: patient.ChannelSMS, Priority: patient.PriorityHigh},
			{ID: "P2846", Name: "Sarah M.", Phone: "+1 (555) ***-8901", Email: "s***@email.com", LastContact: "2024-01-14",
				Status: patient.StatusPending, NextFollowup: "2024-01-18", Channel: patient.ChannelEmail, Priority: patient.PriorityMedium},
			{ID: "P2845", Name: "Mike R.", Phone: "+1 (555) ***-2345", Email: "m***@email.com", LastContact: "2024-01-13",
				Status: patient.StatusScheduled, NextFollowup: "2024-01-22", Channel: patient.ChannelWhatsApp, Priority: patient.PriorityLow},
			{ID: "P2844", Name: "Emma L.", Phone: "+1 (555) ***-6789", Email: "e***@email.com", LastContact: "2024-01-12",
				Status: patient.StatusNoResponse, NextFollowup: "2024-01-19", Channel: patient.ChannelPhone, Priority: patient.PriorityHigh},
		},
		QuickStats: []patient.QuickStat{
			{Value: "892", Label: "Responded Today", Tone: "text-green-600"},
			{Value: "156", Label: "Pending Responses", Tone: "text-yellow-600"},
			{Value: "234", Label: "Scheduled This Week", Tone: "text-blue-600"},
			{Value: "67", Label: "Require Attention", Tone: "text-red-600"},
		},
	}
}

func defaultWorkflows() workflow.Data {
	return workflow.Data{
		Workflows: []workflow.Definition{
			{
				ID:          1,
				Name:        "Missed Appointment Follow-up",
				Description: "Automated sequence for patients who miss their appointments",
				Status:      workflow.StatusActive,
				Trigger:     "Missed Appointment",
				Steps: []workflow.Step{
					{Channel: "SMS", Delay: "Immediate"},
					{Channel: "Email", Delay: "2 hours"},
					{Channel: "WhatsApp", Delay: "24 hours"},
					{Channel: "Phone Call", Delay: "48 hours"},
				},
				Patients:     45,
				ResponseRate: 73,
			},
			{
				ID:          2,
				Name:        "Pre-Appointment Reminder",
				Description: "Gentle reminders sent before scheduled appointments",
				Status:      workflow.StatusActive,
				Trigger:     "24 hours before appointment",
				Steps: []workflow.Step{
					{Channel: "SMS", Delay: "24h before"},
					{Channel: "Email", Delay: "2h before"},
				},
				Patients:     128,
				ResponseRate: 89,
			},
			{
				ID:          3,
				Name:        "Post-Treatment Check-in",
				Description: "Follow-up sequence after completed treatments",
				Status:      workflow.StatusDraft,
				Trigger:     "Treatment Complete",
				Steps: []workflow.Step{
					{Channel: "Email", Delay: "1 day"},
					{Channel: "SMS", Delay: "3 days"},
					{Channel: "Phone", Delay: "7 days"},
				},
			},
		},
		Templates: []workflow.Template{
			{Name: "No-Show Recovery", Description: "Multi-channel sequence to re-engage missed appointments"},
			{Name: "Appointment Reminders", Description: "Reduce no-shows with timely appointment reminders"},
			{Name: "Treatment Follow-up", Description: "Post-treatment care and satisfaction surveys"},
		},
	}
}

func defaultAnalytics() analytics.Data {
	return analytics.Data{
		KeyMetrics: []analytics.KeyMetric{
			{Label: "Overall Response Rate", Value: "87.4%", Change: "+5.2%", Trend: "up"},
			{Label: "Average Response Time", Value: "2.3h", Change: "-15min", Trend: "up"},
			{Label: "Conversion Rate", Value: "73.8%", Change: "+8.1%", Trend: "up"},
			{Label: "Patient Satisfaction", Value: "4.6/5", Change: "+0.2", Trend: "up"},
		},
		Responses: []analytics.ResponsePoint{
			{Date: "2024-01-01", SMS: 85, Email: 67, WhatsApp: 92, Phone: 78},
			{Date: "2024-01-02", SMS: 88, Email: 70, WhatsApp: 89, Phone: 82},
			{Date: "2024-01-03", SMS: 82, Email: 65, WhatsApp: 95, Phone: 75},
			{Date: "2024-01-04", SMS: 91, Email: 73, WhatsApp: 88, Phone: 80},
			{Date: "2024-01-05", SMS: 86, Email: 68, WhatsApp: 93, Phone: 77},
			{Date: "2024-01-06", SMS: 94, Email: 75, WhatsApp: 90, Phone: 85},
			{Date: "2024-01-07", SMS: 89, Email: 72, WhatsApp: 97, Phone: 83},
		},
		Shares: []analytics.ChannelShare{
			{Name: "SMS", Value: 35, Color: analytics.ColorSMS},
			{Name: "Email", Value: 25, Color: analytics.ColorEmail},
			{Name: "WhatsApp", Value: 30, Color: analytics.ColorWhatsApp},
			{Name: "Phone", Value: 10, Color: analytics.ColorPhone},
		},
		Hourly: []analytics.HourlyConversion{
			{Hour: "9 AM", Conversions: 12},
			{Hour: "10 AM", Conversions: 18},
			{Hour: "11 AM", Conversions: 25},
			{Hour: "12 PM", Conversions: 22},
			{Hour: "1 PM", Conversions: 15},
			{Hour: "2 PM", Conversions: 28},
			{Hour: "3 PM", Conversions: 35},
			{Hour: "4 PM", Conversions: 30},
			{Hour: "5 PM", Conversions: 20},
		},
		Performance: []analytics.ChannelPerformance{
			{Channel: "WhatsApp", Rate: 94, Volume: 450, Trend: "+12%"},
			{Channel: "SMS", Rate: 89, Volume: 1240, Trend: "+8%"},
			{Channel: "Phone", Rate: 81, Volume: 120, Trend: "+5%"},
			{Channel: "Email", Rate: 71, Volume: 980, Trend: "+3%"},
		},
		Funnel: []analytics.FunnelStage{
			{Stage: "Messages Sent", Count: 2790, Percentage: 100},
			{Stage: "Messages Delivered", Count: 2734, Percentage: 98},
			{Stage: "Messages Opened", Count: 2189, Percentage: 80},
			{Stage: "Responses Received", Count: 2058, Percentage: 75},
			{Stage: "Appointments Scheduled", Count: 1821, Percentage: 66},
		},
		Categories: []analytics.ResponseCategory{
			{Category: "Positive Response", Count: 1245, Color: "bg-green-500"},
			{Category: "Needs Assistance", Count: 387, Color: "bg-yellow-500"},
			{Category: "Declined/Not Interested", Count: 234, Color: "bg-red-500"},
			{Category: "Out of Office/Away", Count: 192, Color: "bg-blue-500"},
		},
		Scores: []analytics.Score{
			{Value: 87, Label: "Engagement Score", Subtitle: "+5 points this week", Tone: "blue"},
			{Value: 92, Label: "Efficiency Score", Subtitle: "+8 points this week", Tone: "green"},
			{Value: 94, Label: "Satisfaction Score", Subtitle: "+2 points this week", Tone: "purple"},
			{Value: 91, Label: "Overall Health", Subtitle: "Excellent", Tone: "orange"},
		},
		Improvements: []analytics.Insight{
			{Text: "WhatsApp response rate increased by 12%", Tone: "green"},
			{Text: "Average response time improved by 15 minutes", Tone: "blue"},
			{Text: "Patient satisfaction score up 0.2 points", Tone: "purple"},
		},
		FocusAreas: []analytics.FocusArea{
			{Area: "Email engagement", Badge: "Needs attention", Variant: "secondary", Tone: "yellow"},
			{Area: "Weekend coverage", Badge: "Opportunity", Variant: "secondary", Tone: "orange"},
			{Area: "Late response follow-ups", Badge: "Action needed", Variant: "destructive", Tone: "red"},
		},
	}
}

func defaultCompliance() compliance.Data {
	return compliance.Data{
		Summary: []compliance.Summary{
			{Label: "Overall Score", Value: "94%", Badge: "Compliant", ValueClass: "text-green-600", BadgeClass: "bg-green-100 text-green-800"},
			{Label: "Encryption", Value: "100%", Badge: "Excellent", ValueClass: "text-blue-600", BadgeClass: "bg-green-100 text-green-800"},
			{Label: "Audit Coverage", Value: "95%", Badge: "Good", ValueClass: "text-yellow-600", BadgeClass: "bg-yellow-100 text-yellow-800"},
			{Label: "Data Privacy", Value: "92%", Badge: "Good", ValueClass: "text-purple-600", BadgeClass: "bg-green-100 text-green-800"},
		},
		Categories: []compliance.Category{
			{
				Name: "Data Encryption", Status: compliance.StatusCompliant, Score: 100,
				Checks: []compliance.Check{
					{Item: "Data at Rest Encryption", Status: compliance.CheckPass, Description: "AES-256 encryption active"},
					{Item: "Data in Transit Encryption", Status: compliance.CheckPass, Description: "TLS 1.3 enforced"},
					{Item: "Database Encryption", Status: compliance.CheckPass, Description: "MySQL Workbench compatible encryption"},
					{Item: "Backup Encryption", Status: compliance.CheckPass, Description: "Encrypted automated backups"},
				},
			},
			{
				Name: "Audit Trails", Status: compliance.StatusCompliant, Score: 95,
				Checks: []compliance.Check{
					{Item: "Communication Logs", Status: compliance.CheckPass, Description: "All messages logged with timestamps"},
					{Item: "User Access Logs", Status: compliance.CheckPass, Description: "Login/logout events tracked"},
					{Item: "Data Modification Logs", Status: compliance.CheckPass, Description: "All changes audited"},
					{Item: "System Event Logs", Status: compliance.CheckWarning, Description: "Log retention at 89% capacity"},
				},
			},
			{
				Name: "Consent Management", Status: compliance.StatusCompliant, Score: 92,
				Checks: []compliance.Check{
					{Item: "Opt-in Consent", Status: compliance.CheckPass, Description: "Explicit consent required"},
					{Item: "Opt-out Mechanism", Status: compliance.CheckPass, Description: "Easy unsubscribe available"},
					{Item: "Consent Documentation", Status: compliance.CheckPass, Description: "All consents timestamped"},
					{Item: "Consent Renewal", Status: compliance.CheckWarning, Description: "15 consents expiring this month"},
				},
			},
			{
				Name: "Data Anonymization", Status: compliance.StatusCompliant, Score: 88,
				Checks: []compliance.Check{
					{Item: "Analytics Anonymization", Status: compliance.CheckPass, Description: "PII removed from reports"},
					{Item: "Data Masking", Status: compliance.CheckPass, Description: "Patient data masked in UI"},
					{Item: "IP Address Hashing", Status: compliance.CheckPass, Description: "IP addresses anonymized"},
					{Item: "Export Sanitization", Status: compliance.CheckWarning, Description: "Manual review required for exports"},
				},
			},
		},
		AuditLog: []compliance.AuditEntry{
			{Timestamp: "2024-01-15 14:30:22", User: "Dr. Smith", Action: "Sent SMS reminder to Patient #2847", Status: "Success", IPHash: "a1b2c3d4..."},
			{Timestamp: "2024-01-15 14:25:15", User: "Nurse Johnson", Action: "Viewed patient list", Status: "Success", IPHash: "e5f6g7h8..."},
			{Timestamp: "2024-01-15 14:20:08", User: "System", Action: "Automated workflow triggered", Status: "Success", IPHash: "system"},
			{Timestamp: "2024-01-15 14:15:33", User: "Admin", Action: "Updated consent settings", Status: "Success", IPHash: "i9j0k1l2..."},
		},
		Protections: []compliance.ProtectionCard{
			{Title: "Data Encryption", Description: "All patient data encrypted using industry-standard AES-256 encryption", Icon: "lock", Tone: "bg-blue-100 text-blue-600"},
			{Title: "Access Control", Description: "Role-based access controls ensure data is only accessible to authorized personnel", Icon: "eye", Tone: "bg-green-100 text-green-600"},
			{Title: "Audit Trail", Description: "Complete audit trail of all data access and communication events", Icon: "file-text", Tone: "bg-purple-100 text-purple-600"},
		},
	}
}
