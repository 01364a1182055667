package feed

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftship/admin-api/internal/domain/entity"
)

func TestBuild_FeedConEventosEnOrdenInverso(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []*entity.TrackingEvent{
		{ID: "ev-1", TrackingNumber: "SW-ABC12345", Status: "pending", Location: "Bogotá", Note: "envío registrado", OccurredAt: base},
		{ID: "ev-2", TrackingNumber: "SW-ABC12345", Status: "in_transit", Location: "Hub Bogotá", OccurredAt: base.Add(2 * time.Hour)},
		{ID: "ev-3", TrackingNumber: "SW-ABC12345", Status: "delivered", Location: "Medellín", OccurredAt: base.Add(26 * time.Hour)},
	}

	out, err := NewTrackingFeedBuilder("SwiftShip").Build("SW-ABC12345", events)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	items := doc.FindElements("//channel/item")
	require.Len(t, items, 3)

	// Más reciente primero
	assert.Equal(t, "ev-3", items[0].SelectElement("guid").Text())
	assert.Equal(t, "delivered", items[0].SelectElement("status").Text())
	assert.Equal(t, "ev-1", items[2].SelectElement("guid").Text())

	title := doc.FindElement("//channel/title")
	require.NotNil(t, title)
	assert.Contains(t, title.Text(), "SW-ABC12345")
}

func TestBuild_SinEventosFalla(t *testing.T) {
	_, err := NewTrackingFeedBuilder("SwiftShip").Build("SW-XXXXXXXX", nil)
	assert.Error(t, err)
}
