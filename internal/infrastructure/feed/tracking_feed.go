// Package feed genera el feed XML público del historial de un envío
// (lo consumen integraciones de terceros que sondean el estado).
package feed

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/swiftship/admin-api/internal/domain/entity"
)

// TrackingFeedBuilder serializa el historial de un envío como RSS 2.0.
type TrackingFeedBuilder struct {
	companyName string
}

// NewTrackingFeedBuilder construye el generador del feed.
func NewTrackingFeedBuilder(companyName string) *TrackingFeedBuilder {
	return &TrackingFeedBuilder{companyName: companyName}
}

// Build genera el feed del historial. Los eventos llegan en orden cronológico;
// el feed los publica del más reciente al más antiguo, como espera RSS.
func (b *TrackingFeedBuilder) Build(trackingNumber string, events []*entity.TrackingEvent) ([]byte, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("feed: sin eventos para %s", trackingNumber)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(fmt.Sprintf("%s — envío %s", b.companyName, trackingNumber))
	channel.CreateElement("description").SetText("Historial de tracking del envío")
	channel.CreateElement("lastBuildDate").SetText(events[len(events)-1].OccurredAt.Format(time.RFC1123Z))

	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(fmt.Sprintf("%s: %s", trackingNumber, ev.Status))
		desc := ev.Note
		if ev.Location != "" {
			desc = fmt.Sprintf("%s — %s", ev.Location, ev.Note)
		}
		item.CreateElement("description").SetText(desc)
		item.CreateElement("guid").SetText(ev.ID)
		item.CreateElement("pubDate").SetText(ev.OccurredAt.Format(time.RFC1123Z))

		status := item.CreateElement("status")
		status.SetText(ev.Status)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("feed: serializar XML: %w", err)
	}
	return out, nil
}
