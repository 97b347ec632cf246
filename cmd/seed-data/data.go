package main

import (
	"lawbandhu-backend/directory"
	"lawbandhu-backend/models"
)

func str(s string) *string { return &s }
func num(n int) *int { return &n }

var demoLawyers = []models.Lawyer{
	{
		Name:            "Priya Sharma",
		Specialization:  models.FieldCorporate.String(),
		Rating:          4.8,
		ExperienceYears: 12,
		Location:        "Mumbai",
		Languages:       []string{"English", "Hindi", "Marathi"},
		ConsultationFee: 800,
		Bio:             str("Specialized in corporate mergers, acquisitions, and business law with over 12 years of experience representing Fortune 500 companies and startups."),
		Education:       []string{"LLB, Delhi University", "LLM Corporate Law, Harvard Law School"},
		BarCouncilID:    str("MH/2012/45678"),
		SuccessRate:     num(94),
		CasesHandled:    num(230),
	},
	{
		Name:            "Rajesh Kumar",
		Specialization:  models.FieldCriminal.String(),
		Rating:          4.9,
		ExperienceYears: 18,
		Location:        "Delhi",
		Languages:       []string{"English", "Hindi"},
		ConsultationFee: 1200,
		Bio:             str("Expert criminal defense lawyer with extensive courtroom experience handling high-profile cases across Supreme Court and High Courts."),
		Education:       []string{"LLB, National Law School", "Post Graduate Diploma in Criminal Law"},
		BarCouncilID:    str("DL/2006/12345"),
		SuccessRate:     num(89),
		CasesHandled:    num(450),
	},
	{
		Name:            "Anita Desai",
		Specialization:  models.FieldFamily.String(),
		Rating:          4.7,
		ExperienceYears: 10,
		Location:        "Bangalore",
		Languages:       []string{"English", "Hindi", "Kannada"},
		ConsultationFee: 600,
		Bio:             str("Compassionate family law attorney specializing in divorce, child custody, and domestic violence cases with a focus on mediation."),
		Education:       []string{"LLB, Christ University", "Family Law Certification, NLSIU"},
		BarCouncilID:    str("KA/2014/34567"),
		SuccessRate:     num(91),
		CasesHandled:    num(180),
	},
	{
		Name:            "Vikram Singh",
		Specialization:  models.FieldProperty.String(),
		Rating:          4.6,
		ExperienceYears: 15,
		Location:        "Pune",
		Languages:       []string{"English", "Hindi", "Marathi"},
		ConsultationFee: 700,
		Bio:             str("Property dispute resolution expert with comprehensive knowledge of real estate transactions, land acquisition, and property inheritance."),
		Education:       []string{"LLB, Pune University", "Diploma in Real Estate Law"},
		BarCouncilID:    str("MH/2009/23456"),
		SuccessRate:     num(88),
		CasesHandled:    num(320),
	},
	{
		Name:            "Meera Patel",
		Specialization:  directory.TaxLaw,
		Rating:          4.9,
		ExperienceYears: 14,
		Location:        "Ahmedabad",
		Languages:       []string{"English", "Hindi", "Gujarati"},
		ConsultationFee: 900,
		Bio:             str("Tax litigation specialist helping individuals and businesses navigate complex tax laws, GST, and income tax disputes."),
		Education:       []string{"LLB, Gujarat University", "CA, ICAI", "LLM Taxation Law"},
		BarCouncilID:    str("GJ/2010/56789"),
		SuccessRate:     num(96),
		CasesHandled:    num(280),
	},
	{
		Name:            "Arjun Verma",
		Specialization:  models.FieldCorporate.String(),
		Rating:          4.5,
		ExperienceYears: 8,
		Location:        "Chennai",
		Languages:       []string{"English", "Hindi", "Tamil"},
		ConsultationFee: 550,
		Bio:             str("Young corporate lawyer focusing on startup legal advisory, compliance, and intellectual property protection for tech companies."),
		Education:       []string{"LLB, Madras University", "Business Law Certification"},
		BarCouncilID:    str("TN/2016/67890"),
		SuccessRate:     num(87),
		CasesHandled:    num(120),
	},
}

// lawyers the demo client has starred
var demoStars = []string{"Priya Sharma", "Meera Patel"}

type demoCase struct {
	title   string
	number  string
	lawyer  string
	status  string
	steps   models.CaseSteps
	updates []models.CaseUpdate
}

var demoCases = []demoCase{
	{
		title:  "Property Dispute Case",
		number: "PROP/2024/001",
		lawyer: "Vikram Singh",
		status: "In Progress",
		steps: models.CaseSteps{
			{ID: "1", Label: "Case Filed", Status: models.StepCompleted},
			{ID: "2", Label: "Evidence Submission", Status: models.StepCompleted},
			{ID: "3", Label: "Hearing", Status: models.StepActive},
			{ID: "4", Label: "Judgment", Status: models.StepPending},
			{ID: "5", Label: "Closure", Status: models.StepPending},
		},
		updates: []models.CaseUpdate{
			{Title: "Document submitted", Description: "Evidence documents have been submitted to the court", Type: models.UpdateDocument},
			{Title: "Hearing scheduled", Description: "Next hearing scheduled for October 25, 2025", Type: models.UpdateHearing},
		},
	},
	{
		title:  "Contract Review",
		number: "CORP/2024/042",
		lawyer: "Priya Sharma",
		status: "Completed",
		steps: models.CaseSteps{
			{ID: "1", Label: "Initial Review", Status: models.StepCompleted},
			{ID: "2", Label: "Amendments", Status: models.StepCompleted},
			{ID: "3", Label: "Final Review", Status: models.StepCompleted},
			{ID: "4", Label: "Approval", Status: models.StepCompleted},
			{ID: "5", Label: "Closure", Status: models.StepCompleted},
		},
		updates: []models.CaseUpdate{
			{Title: "Case closed", Description: "Contract review has been completed successfully", Type: models.UpdateClosure},
		},
	},
}

var demoPayments = []models.Payment{
	{InvoiceID: "INV-2024-001", Description: "Legal Consultation - Priya Sharma", Amount: 5000, Status: models.PaymentCompleted, Method: models.MethodUPI},
	{InvoiceID: "INV-2024-002", Description: "Case Filing Fee - Property Dispute", Amount: 15000, Status: models.PaymentCompleted, Method: models.MethodCreditCard},
	{InvoiceID: "INV-2024-003", Description: "Document Processing", Amount: 3000, Status: models.PaymentCompleted, Method: models.MethodNetBanking},
	{InvoiceID: "INV-2024-004", Description: "Legal Consultation - Vikram Singh", Amount: 4500, Status: models.PaymentPending, Method: models.MethodPending},
}
