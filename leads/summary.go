package leads

import (
	"bytes"
	"fmt"
	"io"

	"hqd-api/models"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes a one-page inquiry sheet for a lead. The QR code opens a
// WhatsApp chat with the client.
func WritePDF(w io.Writer, lead models.Lead) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("HQ.D inquiry "+lead.ID, false)
	pdf.SetAuthor("Headquarters of Drinks", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "HQ.D | Event Inquiry")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Lead %s  |  received %s  |  status %s",
		lead.ID, lead.CreatedAt.Format("02 Jan 2006 15:04"), lead.Status))
	pdf.Ln(10)

	section := func(title string, rows [][2]string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		for _, r := range rows {
			pdf.SetFont("Arial", "B", 10)
			pdf.Cell(40, 6, r[0])
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 6, tr(orNotSpecified(r[1])), "", "L", false)
		}
		pdf.Ln(4)
	}

	section("Contact", [][2]string{
		{"Name", lead.Name},
		{"Email", lead.Email},
		{"Phone", lead.Phone},
	})
	section("Event", [][2]string{
		{"Event type", lead.EventType},
		{"Date", lead.EventDate},
		{"City / venue", lead.City + " " + lead.Venue},
		{"Guests", lead.GuestCount},
		{"Duration", lead.Duration},
		{"Bar type", lead.BarType},
		{"Theme", lead.Theme},
		{"Budget", lead.BudgetRange},
		{"Setup interest", lead.SetupInterest},
	})
	if lead.Message != "" {
		section("Message", [][2]string{{"", lead.Message}})
	}

	if d := digits(lead.Phone); d != "" {
		png, err := QRCode(WhatsAppLink(d, "Hi "+lead.Name+", this is HQ.D about your "+lead.EventType+" inquiry."), 256)
		if err != nil {
			return err
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("whatsapp", opts, bytes.NewReader(png))
		pdf.ImageOptions("whatsapp", 160, 20, 35, 35, false, opts, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("leads: render pdf: %w", err)
	}
	return nil
}

func orNotSpecified(s string) string {
	if s == "" || s == " " {
		return "Not specified"
	}
	return s
}
