package services

import (
	"bytes"
	"fmt"

	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/pkg/apperrors"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

type ExportService interface {
	ItineraryPDF(db *gorm.DB, trip *models.Trip) ([]byte, string, error)
}

type ExportServiceImpl struct{}

func NewExportService() ExportService {
	return &ExportServiceImpl{}
}

// ItineraryPDF renders the trip itinerary, days in order and items in
// the same order the itinerary view uses. Returns the document and a
// suggested filename.
func (s *ExportServiceImpl) ItineraryPDF(db *gorm.DB, trip *models.Trip) ([]byte, string, error) {
	days, err := repositories.NewItineraryRepository(db).ListDaysWithItems(trip.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}
	for i := range days {
		SortDayItems(days[i].Items)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(trip.Name, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, trip.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s  |  %s - %s",
		trip.Destination,
		trip.StartDate.Format("Jan 2, 2006"),
		trip.EndDate.Format("Jan 2, 2006")),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	for i := range days {
		day := &days[i]

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, fmt.Sprintf("Day %d - %s", i+1, day.Date.Format("Monday, Jan 2")), "", 1, "L", false, 0, "")

		if len(day.Items) == 0 {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(130, 130, 130)
			pdf.CellFormat(0, 6, "No plans yet", "", 1, "L", false, 0, "")
			pdf.Ln(2)
			continue
		}

		for j := range day.Items {
			item := &day.Items[j]

			timeLabel := "TBD"
			if key, ok := timeSortKey(item.StartTime); ok {
				timeLabel = key
				if item.EndTime != nil && *item.EndTime != "" {
					timeLabel += " - " + *item.EndTime
				}
			}

			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(28, 6, timeLabel, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 6, item.Title, "", "L", false)

			if item.LocationText != nil && *item.LocationText != "" {
				pdf.SetTextColor(90, 90, 90)
				pdf.CellFormat(28, 5, "", "", 0, "L", false, 0, "")
				pdf.MultiCell(0, 5, *item.LocationText, "", "L", false)
			}
			if item.Notes != nil && *item.Notes != "" {
				pdf.SetTextColor(110, 110, 110)
				pdf.SetFont("Helvetica", "I", 9)
				pdf.CellFormat(28, 5, "", "", 0, "L", false, 0, "")
				pdf.MultiCell(0, 5, *item.Notes, "", "L", false)
			}
			pdf.Ln(1)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	filename := fmt.Sprintf("itinerary-%s.pdf", trip.ID)
	return buf.Bytes(), filename, nil
}
