package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/swiftship/admin-api/internal/domain/entity"
)

// ShipmentReportData es todo lo que necesita el generador para armar el PDF.
type ShipmentReportData struct {
	CompanyName string
	Shipments   []*entity.Shipment
	TotalCost   decimal.Decimal
	TotalPaid   int
}

// ShipmentPDFGenerator produce los bytes del reporte. Lo implementa
// pdf.MarotoReportGenerator.
type ShipmentPDFGenerator interface {
	GenerateShipmentReport(ctx context.Context, data ShipmentReportData) ([]byte, error)
}
