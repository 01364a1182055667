package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/application/usecase"
	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeShipmentRepo struct {
	byID map[string]*entity.Shipment
}

func newFakeShipmentRepo() *fakeShipmentRepo {
	return &fakeShipmentRepo{byID: map[string]*entity.Shipment{}}
}

func (r *fakeShipmentRepo) Create(s *entity.Shipment) error {
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	if s, ok := r.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeShipmentRepo) GetByTrackingNumber(tn string) (*entity.Shipment, error) {
	for _, s := range r.byID {
		if s.TrackingNumber == tn {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeShipmentRepo) Update(s *entity.Shipment) error {
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *fakeShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	out := make([]*entity.Shipment, 0, len(r.byID))
	for _, s := range r.byID {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeShipmentRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeTrackingRepo struct {
	events []*entity.TrackingEvent
}

func (r *fakeTrackingRepo) Append(ev *entity.TrackingEvent) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *fakeTrackingRepo) ListByTrackingNumber(tn string) ([]*entity.TrackingEvent, error) {
	var out []*entity.TrackingEvent
	for _, ev := range r.events {
		if ev.TrackingNumber == tn {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *fakeTrackingRepo) List(limit, offset int) ([]*entity.TrackingEvent, error) {
	return r.events, nil
}

type fakePaymentRepo struct {
	byID map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{byID: map[string]*entity.Payment{}}
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	if p, ok := r.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePaymentRepo) GetByShipment(shipmentID string) (*entity.Payment, error) {
	for _, p := range r.byID {
		if p.ShipmentID == shipmentID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	out := make([]*entity.Payment, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTx ejecuta los callbacks sobre los fakes sin transacción real.
type fakeTx struct {
	ships    *fakeShipmentRepo
	tracking *fakeTrackingRepo
	payments *fakePaymentRepo
}

func (t *fakeTx) RunShipment(ctx context.Context, fn func(repository.ShipmentRepository, repository.TrackingRepository) error) error {
	return fn(t.ships, t.tracking)
}

func (t *fakeTx) RunPayment(ctx context.Context, fn func(repository.ShipmentRepository, repository.PaymentRepository) error) error {
	return fn(t.ships, t.payments)
}

func newShipmentUC() (*usecase.ShipmentUseCase, *fakeShipmentRepo, *fakeTrackingRepo, *fakeTx) {
	ships := newFakeShipmentRepo()
	tracking := &fakeTrackingRepo{}
	tx := &fakeTx{ships: ships, tracking: tracking, payments: newFakePaymentRepo()}
	return usecase.NewShipmentUseCase(ships, tx), ships, tracking, tx
}

func validShipment() dto.CreateShipmentRequest {
	return dto.CreateShipmentRequest{
		SenderName:   "Ana Gómez",
		ReceiverName: "Luis Rojas",
		Origin:       "Bogotá",
		Destination:  "Medellín",
		BranchID:     "branch-1",
		WeightKg:     decimal.NewFromFloat(2.5),
		Cost:         decimal.NewFromInt(18000),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestShipmentCreate_GeneraTrackingYPrimerHito(t *testing.T) {
	uc, _, tracking, _ := newShipmentUC()

	out, err := uc.Create(context.Background(), validShipment())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.TrackingNumber, "SW-"))
	assert.Len(t, out.TrackingNumber, 11)
	assert.Equal(t, entity.ShipmentStatusPending, out.Status)
	assert.False(t, out.Paid)

	require.Len(t, tracking.events, 1)
	assert.Equal(t, out.TrackingNumber, tracking.events[0].TrackingNumber)
	assert.Equal(t, "Bogotá", tracking.events[0].Location)
}

func TestShipmentCreate_Validaciones(t *testing.T) {
	uc, _, _, _ := newShipmentUC()

	in := validShipment()
	in.SenderName = ""
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validShipment()
	in.WeightKg = decimal.Zero
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validShipment()
	in.Cost = decimal.NewFromInt(-1)
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShipmentUpdateStatus_TransicionesValidas(t *testing.T) {
	uc, _, tracking, _ := newShipmentUC()
	created, err := uc.Create(context.Background(), validShipment())
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), created.ID,
		dto.UpdateShipmentStatusRequest{Status: entity.ShipmentStatusInTransit, Location: "Hub Bogotá"})
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusInTransit, out.Status)

	out, err = uc.UpdateStatus(context.Background(), created.ID,
		dto.UpdateShipmentStatusRequest{Status: entity.ShipmentStatusDelivered, Location: "Medellín"})
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusDelivered, out.Status)

	// alta + 2 avances = 3 hitos
	assert.Len(t, tracking.events, 3)
}

func TestShipmentUpdateStatus_TransicionInvalida(t *testing.T) {
	uc, _, _, _ := newShipmentUC()
	created, err := uc.Create(context.Background(), validShipment())
	require.NoError(t, err)

	// pending → delivered se salta in_transit
	_, err = uc.UpdateStatus(context.Background(), created.ID,
		dto.UpdateShipmentStatusRequest{Status: entity.ShipmentStatusDelivered})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// un envío cancelado ya no avanza
	_, err = uc.UpdateStatus(context.Background(), created.ID,
		dto.UpdateShipmentStatusRequest{Status: entity.ShipmentStatusCancelled})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), created.ID,
		dto.UpdateShipmentStatusRequest{Status: entity.ShipmentStatusInTransit})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestShipmentList_FiltroInsensible(t *testing.T) {
	uc, _, _, _ := newShipmentUC()
	_, err := uc.Create(context.Background(), validShipment())
	require.NoError(t, err)

	other := validShipment()
	other.Destination = "Cali"
	other.ReceiverName = "María Pérez"
	_, err = uc.Create(context.Background(), other)
	require.NoError(t, err)

	// "medellin" sin tilde encuentra el destino "Medellín"
	list, err := uc.List("medellin", 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Medellín", list[0].Destination)

	list, err = uc.List("maria", 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "María Pérez", list[0].ReceiverName)

	list, err = uc.List("", 50, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPaymentCreate_MarcaEnvioPagado(t *testing.T) {
	shipUC, ships, _, tx := newShipmentUC()
	payUC := usecase.NewPaymentUseCase(tx.payments, tx)

	created, err := shipUC.Create(context.Background(), validShipment())
	require.NoError(t, err)

	out, err := payUC.Create(context.Background(), dto.CreatePaymentRequest{
		ShipmentID: created.ID,
		Amount:     decimal.NewFromInt(18000),
		Method:     entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, out.Status)

	stored, err := ships.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Paid)

	// Un segundo pago al mismo envío se rechaza.
	_, err = payUC.Create(context.Background(), dto.CreatePaymentRequest{
		ShipmentID: created.ID,
		Amount:     decimal.NewFromInt(1000),
		Method:     entity.PaymentMethodCard,
	})
	assert.ErrorIs(t, err, domain.ErrShipmentAlreadyPaid)
}

func TestPaymentCreate_Validaciones(t *testing.T) {
	_, _, _, tx := newShipmentUC()
	payUC := usecase.NewPaymentUseCase(tx.payments, tx)

	_, err := payUC.Create(context.Background(), dto.CreatePaymentRequest{
		ShipmentID: "x", Amount: decimal.Zero, Method: entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = payUC.Create(context.Background(), dto.CreatePaymentRequest{
		ShipmentID: "x", Amount: decimal.NewFromInt(10), Method: "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = payUC.Create(context.Background(), dto.CreatePaymentRequest{
		ShipmentID: "no-existe", Amount: decimal.NewFromInt(10), Method: entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrShipmentNotFound)
}
