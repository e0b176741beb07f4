package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"

	addonModel "hostconnect/internal/domains/addon/model"
	"hostconnect/internal/domains/booking/model"
	propertyModel "hostconnect/internal/domains/property/model"
	roomtypeModel "hostconnect/internal/domains/roomtype/model"
	"hostconnect/shared"
	"hostconnect/shared/constant"
	"hostconnect/shared/timezone"
)

// Invoice renders a PDF invoice for a booking. Only confirmed or completed
// bookings carry a settled amount worth invoicing.
func (s *serviceImpl) Invoice(ctx context.Context, id string) (pdfBytes []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Invoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(booking.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property for invoice")

		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(booking.RoomTypeID, roomtypeModel.FieldID, roomtypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type for invoice")

		return nil, fmt.Errorf("failed to get room type: %w", err)
	}

	addons := make([]addonModel.AddonService, 0, len(booking.AddonIDs))

	for _, addonID := range booking.AddonIDs {
		addon, err := s.addonRepo.Get(ctx, shared.FilterByID(addonID, addonModel.FieldID, addonModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("addonID", addonID).Msg("failed to get addon service for invoice")

			return nil, fmt.Errorf("failed to get addon service: %w", err)
		}

		if addon.ID != constant.Empty {
			addons = append(addons, addon)
		}
	}

	return buildInvoicePDF(booking, property, roomType, addons)
}

func buildInvoicePDF(
	booking model.Booking,
	property propertyModel.Property,
	roomType roomtypeModel.RoomType,
	addons []addonModel.AddonService,
) ([]byte, error) {
	currency := strings.ToUpper(booking.Currency)
	nights := booking.Nights()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : INV-"+booking.ID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+timezone.Now().Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status     : "+strings.ToUpper(booking.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name  : "+booking.GuestName)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email : "+booking.GuestEmail)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay details:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)

	lines := []string{
		"Property  : " + property.Name,
		"Room type : " + roomType.Name,
		fmt.Sprintf("Dates     : %s to %s (%d nights)",
			booking.CheckIn.Format(constant.DateOnlyLayout),
			booking.CheckOut.Format(constant.DateOnlyLayout),
			nights,
		),
		fmt.Sprintf("Guests    : %d", booking.TotalGuests),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("%s x %d nights @ %.2f %s = %.2f %s",
		roomType.Name, nights, roomType.BasePrice, currency, roomType.BasePrice*float64(nights), currency))
	pdf.Ln(7)

	for _, addon := range addons {
		pdf.Cell(0, 7, fmt.Sprintf("%s = %.2f %s", addon.Name, addon.Price, currency))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("TOTAL: %.2f %s", booking.TotalAmount, currency))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}

	return buf.Bytes(), nil
}
