package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/swiftship/admin-api/internal/domain/repository"
)

// Máximo de envíos por reporte; el PDF es un corte operativo, no un dump.
const maxReportRows = 500

// ShipmentReportUseCase arma el reporte de envíos (página Reports).
type ShipmentReportUseCase struct {
	shipmentRepo repository.ShipmentRepository
	generator    ShipmentPDFGenerator
	companyName  string
}

// NewShipmentReportUseCase construye el caso de uso.
func NewShipmentReportUseCase(shipmentRepo repository.ShipmentRepository, generator ShipmentPDFGenerator, companyName string) *ShipmentReportUseCase {
	return &ShipmentReportUseCase{shipmentRepo: shipmentRepo, generator: generator, companyName: companyName}
}

// Generate produce el PDF con los envíos más recientes, costo total y
// cantidad de pagados.
func (uc *ShipmentReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	shipments, err := uc.shipmentRepo.List(maxReportRows, 0)
	if err != nil {
		return nil, err
	}
	data := ShipmentReportData{
		CompanyName: uc.companyName,
		Shipments:   shipments,
		TotalCost:   decimal.Zero,
	}
	for _, s := range shipments {
		data.TotalCost = data.TotalCost.Add(s.Cost)
		if s.Paid {
			data.TotalPaid++
		}
	}
	return uc.generator.GenerateShipmentReport(ctx, data)
}
