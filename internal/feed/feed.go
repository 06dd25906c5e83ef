// Package feed exports resolved portions and holidays as an iCalendar feed.
package feed

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/zapponejosh/luach/internal/calendar"
	"github.com/zapponejosh/luach/internal/liturgy"
)

// Calendar properties.
const (
	Version  = "2.0"
	ProdID   = "-//Luach//Hebrew Calendar//HE"
	CalName  = "Luach"
	CalScale = "GREGORIAN"
	Method   = "PUBLISH"
	Domain   = "luach"

	refreshInterval = 24 * time.Hour
)

// iCalendar property names.
const (
	propVersion     = "VERSION"
	propProdID      = "PRODID"
	propCalName     = "X-WR-CALNAME"
	propCalScale    = "CALSCALE"
	propMethod      = "METHOD"
	propRefresh     = "REFRESH-INTERVAL"
	propUID         = "UID"
	propSummary     = "SUMMARY"
	propCategories  = "CATEGORIES"
	propTransparent = "TRANSP"
	propDTStart     = "DTSTART"
	propDTEnd       = "DTEND"
	propDTStamp     = "DTSTAMP"
)

// stub is returned for ranges without events; the encoder rejects an
// empty VCALENDAR.
const stub = "BEGIN:VCALENDAR\r\nVERSION:" + Version + "\r\nPRODID:" + ProdID + "\r\nEND:VCALENDAR\r\n"

// Labeler resolves the labelled days of a date range.
type Labeler interface {
	Range(ctx context.Context, from, to time.Time) ([]liturgy.DayLabels, error)
}

// Build renders one all-day event per holiday day and per Saturday portion
// in [from, to]. now stamps every event.
func Build(ctx context.Context, labeler Labeler, from, to, now time.Time) ([]byte, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("feed range %s..%s is empty", calendar.FormatISO(from), calendar.FormatISO(to))
	}

	days, err := labeler.Range(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("resolve range: %w", err)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(propVersion, Version)
	cal.Props.SetText(propProdID, ProdID)
	cal.Props.SetText(propCalName, CalName)
	cal.Props.SetText(propCalScale, CalScale)
	cal.Props.SetText(propMethod, Method)

	refresh := ical.NewProp(propRefresh)
	refresh.SetDuration(refreshInterval)
	cal.Props.Set(refresh)

	stamp := ical.NewProp(propDTStamp)
	stamp.SetDateTime(now.UTC())

	for _, d := range days {
		if d.Parasha != "" {
			cal.Children = append(cal.Children, event(liturgy.KindParasha, d.Date, d.Parasha, stamp).Component)
		}
		if d.Holiday != "" {
			cal.Children = append(cal.Children, event(liturgy.KindHoliday, d.Date, d.Holiday, stamp).Component)
		}
	}

	slog.Info("feed built",
		"component", "feed",
		"from", calendar.FormatISO(from),
		"to", calendar.FormatISO(to),
		"events", len(cal.Children),
	)

	if len(cal.Children) == 0 {
		return []byte(stub), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func event(kind string, date time.Time, summary string, stamp *ical.Prop) *ical.Event {
	e := ical.NewEvent()
	e.Props.SetText(propUID, UID(kind, date))
	e.Props.SetText(propSummary, summary)
	e.Props.SetText(propCategories, kind)
	e.Props.SetText(propTransparent, "TRANSPARENT")

	start := ical.NewProp(propDTStart)
	start.SetDate(date)
	e.Props.Set(start)

	end := ical.NewProp(propDTEnd)
	end.SetDate(date.AddDate(0, 0, 1))
	e.Props.Set(end)

	e.Props.Set(stamp)
	return e
}

// UID derives a stable event identifier from the label kind and date, so
// re-exported feeds update events instead of duplicating them.
func UID(kind string, date time.Time) string {
	sum := sha256.Sum256([]byte(kind + ":" + calendar.FormatISO(date)))
	return fmt.Sprintf("%x@%s", sum[:12], Domain)
}
