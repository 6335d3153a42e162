package catalog

import "github.com/kdanquah/regportal/internal/app/models"

// defaultProgrammes carries the professional-programme course tables the
// school runs when no catalogue file is configured.
func defaultProgrammes() []Programme {
	return []Programme{
		{
			Name: "CIMG",
			Levels: []Level{
				{Name: "Foundation", Courses: []models.Course{
					{Code: "CIMG101", Title: "Marketing Essentials", CreditHours: 3},
					{Code: "CIMG102", Title: "Marketing Environment", CreditHours: 3},
					{Code: "CIMG103", Title: "Customer Insights", CreditHours: 3},
					{Code: "CIMG104", Title: "Integrated Marketing Communications", CreditHours: 3},
				}},
				{Name: "Professional Certificate", Courses: []models.Course{
					{Code: "CIMG201", Title: "Strategic Marketing", CreditHours: 3},
					{Code: "CIMG202", Title: "Marketing Planning Process", CreditHours: 3},
					{Code: "CIMG203", Title: "Marketing Implementation", CreditHours: 3},
					{Code: "CIMG204", Title: "Marketing Metrics", CreditHours: 3},
				}},
				{Name: "Professional Diploma", Courses: []models.Course{
					{Code: "CIMG301", Title: "Marketing Strategy Development", CreditHours: 6},
					{Code: "CIMG302", Title: "Leading Marketing", CreditHours: 6},
					{Code: "CIMG303", Title: "Marketing Leadership Decisions", CreditHours: 6},
					{Code: "CIMG304", Title: "Contemporary Marketing Issues", CreditHours: 6},
				}},
			},
		},
		{
			Name: "CIM-UK",
			Levels: []Level{
				{Name: "Foundation Certificate", Courses: []models.Course{
					{Code: "CIM101", Title: "Marketing Principles", CreditHours: 6},
					{Code: "CIM102", Title: "Communications in Practice", CreditHours: 6},
					{Code: "CIM103", Title: "Customer Communications", CreditHours: 6},
				}},
				{Name: "Certificate in Professional Marketing", Courses: []models.Course{
					{Code: "CIM201", Title: "Applied Marketing", CreditHours: 6},
					{Code: "CIM202", Title: "Planning Campaigns", CreditHours: 6},
					{Code: "CIM203", Title: "Customer Insights", CreditHours: 6},
				}},
				{Name: "Diploma in Professional Marketing", Courses: []models.Course{
					{Code: "CIM301", Title: "Marketing & Digital Strategy", CreditHours: 6},
					{Code: "CIM302", Title: "Innovation in Marketing", CreditHours: 6},
					{Code: "CIM303", Title: "Resource Management", CreditHours: 6},
				}},
				{Name: "Postgraduate Diploma", Courses: []models.Course{
					{Code: "CIM401", Title: "Global Marketing Decisions", CreditHours: 6},
					{Code: "CIM402", Title: "Corporate Digital Communications", CreditHours: 6},
					{Code: "CIM403", Title: "Creating Entrepreneurial Change", CreditHours: 6},
				}},
			},
		},
		{
			Name: "ICAG",
			Levels: []Level{
				{Name: "Level 1", Courses: []models.Course{
					{Code: "ICAG101", Title: "Financial Accounting", CreditHours: 3},
					{Code: "ICAG102", Title: "Business Management & Information Systems", CreditHours: 3},
					{Code: "ICAG103", Title: "Business Law", CreditHours: 3},
					{Code: "ICAG104", Title: "Introduction to Management Accounting", CreditHours: 3},
				}},
				{Name: "Level 2", Courses: []models.Course{
					{Code: "ICAG201", Title: "Financial Reporting", CreditHours: 3},
					{Code: "ICAG202", Title: "Management Accounting", CreditHours: 3},
					{Code: "ICAG203", Title: "Audit & Assurance", CreditHours: 3},
					{Code: "ICAG204", Title: "Financial Management", CreditHours: 3},
					{Code: "ICAG205", Title: "Corporate Law", CreditHours: 3},
					{Code: "ICAG206", Title: "Public Sector Accounting", CreditHours: 3},
				}},
				{Name: "Level 3", Courses: []models.Course{
					{Code: "ICAG301", Title: "Corporate Reporting", CreditHours: 3},
					{Code: "ICAG302", Title: "Advanced Management Accounting", CreditHours: 3},
					{Code: "ICAG303", Title: "Advanced Audit & Assurance", CreditHours: 3},
					{Code: "ICAG304", Title: "Advanced Financial Management", CreditHours: 3},
					{Code: "ICAG305", Title: "Strategy & Governance", CreditHours: 3},
					{Code: "ICAG306", Title: "Advanced Taxation", CreditHours: 3},
				}},
			},
		},
		{
			Name: "ACCA",
			Levels: []Level{
				{Name: "Applied Knowledge", Courses: []models.Course{
					{Code: "AB101", Title: "Accountant in Business", CreditHours: 3},
					{Code: "MA101", Title: "Management Accounting", CreditHours: 3},
					{Code: "FA101", Title: "Financial Accounting", CreditHours: 3},
				}},
				{Name: "Applied Skills", Courses: []models.Course{
					{Code: "LW201", Title: "Corporate and Business Law", CreditHours: 3},
					{Code: "PM201", Title: "Performance Management", CreditHours: 3},
					{Code: "TX201", Title: "Taxation", CreditHours: 3},
					{Code: "FR201", Title: "Financial Reporting", CreditHours: 3},
					{Code: "AA201", Title: "Audit and Assurance", CreditHours: 3},
					{Code: "FM201", Title: "Financial Management", CreditHours: 3},
				}},
				{Name: "Strategic Professional (Essentials)", Courses: []models.Course{
					{Code: "SBL301", Title: "Strategic Business Leader", CreditHours: 6},
					{Code: "SBR301", Title: "Strategic Business Reporting", CreditHours: 6},
				}},
				{Name: "Strategic Professional (Options)", Courses: []models.Course{
					{Code: "AFM401", Title: "Advanced Financial Management", CreditHours: 6},
					{Code: "APM401", Title: "Advanced Performance Management", CreditHours: 6},
					{Code: "ATX401", Title: "Advanced Taxation", CreditHours: 6},
					{Code: "AAA401", Title: "Advanced Audit and Assurance", CreditHours: 6},
				}},
			},
		},
	}
}
