package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportReadyEmail tells a home owner that the inspection report is available.
type ReportReadyEmail struct {
	To                    string
	OwnerName             string
	InspectionName        string
	HomeAddress           string
	EnrollmentNo          string
	BuilderName           string
	Inspector             string
	OwnerSignatureURL     string
	InspectorSignatureURL string
	Deficiencies          []ReportLine
}

// ReportLine is one deficiency as printed in a report.
type ReportLine struct {
	ID          uuid.UUID
	Location    string
	Description string
	Status      string
	TradeName   string
}

// InviteEmail invites a home owner to the portal.
type InviteEmail struct {
	To           string
	OwnerName    string
	BuilderName  string
	HomeAddress  string
	EnrollmentNo string
}

// DeficiencyReportEmail sends a selection of deficiencies with a due date.
type DeficiencyReportEmail struct {
	To             string
	InspectionName string
	DueDate        time.Time
	HomeAddress    string
	Lines          []ReportLine
}

// Subject is "<due date> - <inspection name>".
func (e DeficiencyReportEmail) Subject() string {
	return e.DueDate.Format("2006-01-02") + " - " + e.InspectionName
}
