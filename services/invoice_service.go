package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/SutariyaDeep123/RentRealm/configs"
	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateInvoicePDF renders the booking invoice template to PDF bytes.
func GenerateInvoicePDF(booking models.Booking, user models.User) ([]byte, error) {
	htmlData, err := generateInvoiceHTML(booking, user)
	if err != nil {
		return nil, err
	}
	return generatePDFFromHTML(htmlData)
}

// ArchiveInvoice renders the invoice, uploads it to Cloudinary and stores
// the URL on the booking. Runs in a goroutine after booking confirmation;
// failures are logged, the booking itself is already committed.
func ArchiveInvoice(booking models.Booking, user models.User) {
	pdfBytes, err := GenerateInvoicePDF(booking, user)
	if err != nil {
		log.Printf("🔥 Failed to generate invoice PDF for booking %s: %v", booking.ID, err)
		return
	}

	uploadURL, err := uploadInvoiceToCloudinary(pdfBytes, booking.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload invoice for booking %s: %v", booking.ID, err)
		return
	}

	if err := database.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).Update("invoice_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store invoice URL for booking %s: %v", booking.ID, err)
		return
	}
	log.Printf("✅ Archived invoice for booking %s", booking.Reference)
}

func generateInvoiceHTML(booking models.Booking, user models.User) (string, error) {
	tmpl, err := template.ParseFiles("templates/invoice.html")
	if err != nil {
		return "", err
	}

	propertyName := ""
	switch {
	case booking.Hotel != nil:
		propertyName = booking.Hotel.Name
	case booking.Listing != nil:
		propertyName = booking.Listing.Name
	}

	data := struct {
		Reference    string
		UserName     string
		UserEmail    string
		PropertyName string
		BookingType  string
		CheckIn      string
		CheckOut     string
		GuestCount   int
		TotalPrice   string
		Status       string
		IssuedOn     string
	}{
		Reference:    booking.Reference,
		UserName:     user.Name,
		UserEmail:    user.Email,
		PropertyName: propertyName,
		BookingType:  booking.BookingType,
		CheckIn:      booking.CheckIn.Format("January 2, 2006"),
		CheckOut:     booking.CheckOut.Format("January 2, 2006"),
		GuestCount:   booking.GuestCount,
		TotalPrice:   fmt.Sprintf("$%.2f", booking.TotalPrice),
		Status:       booking.Status,
		IssuedOn:     time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadInvoiceToCloudinary(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("invoices/%s_%s", reference, uuid.New().String()),
		Folder:       "rentrealm_invoices",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
