// Package schedule decides whether a daily action should fire and records that it did.
//
// A Gate combines a campaign (a fixed number of days starting on the first run) with a daily
// firing window that opens at a target time of day. Each decision re-reads the Store, so separate
// invocations of a tool share state only through it.
package schedule

import (
	"context"
	"time"

	"github.com/ismart-tools/vehicle-command/internal/log"
)

const (
	DefaultDurationDays = 90
	DefaultWindow       = time.Hour
)

// CampaignWindow is the period during which the daily action is active.
type CampaignWindow struct {
	StartDate    Date
	DurationDays int
}

// EndDate returns the last date of the campaign.
func (c CampaignWindow) EndDate() Date {
	return c.StartDate.AddDays(c.DurationDays)
}

// Contains returns true if d is not past the end of the campaign.
func (c CampaignWindow) Contains(d Date) bool {
	return !d.After(c.EndDate())
}

// Gate decides whether today's action should run.
type Gate struct {
	Store Store
	// Location is the time zone used for dates and the time of day. Nil means the zone of the
	// time passed to each method.
	Location *time.Location
	// TargetMinutes is the opening of the firing window, in minutes after midnight.
	TargetMinutes int
	// Window is the length of the firing window.
	Window time.Duration
	// DurationDays is the campaign length.
	DurationDays int
}

// NewGate returns a Gate with the default window and campaign length.
func NewGate(store Store, location *time.Location, targetMinutes int) *Gate {
	return &Gate{
		Store:         store,
		Location:      location,
		TargetMinutes: targetMinutes,
		Window:        DefaultWindow,
		DurationDays:  DefaultDurationDays,
	}
}

func (g *Gate) local(now time.Time) time.Time {
	if g.Location == nil {
		return now
	}
	return now.In(g.Location)
}

// Campaign loads the campaign, starting it today if it has never been started.
func (g *Gate) Campaign(ctx context.Context, now time.Time) (CampaignWindow, error) {
	campaign := CampaignWindow{DurationDays: g.DurationDays}
	start, ok, err := g.Store.CampaignStart(ctx)
	if err != nil {
		return campaign, err
	}
	if !ok {
		start = DateOf(g.local(now))
		if err := g.Store.SetCampaignStart(ctx, start); err != nil {
			return campaign, err
		}
		log.Info("Schedule started on %s", start)
	}
	campaign.StartDate = start
	return campaign, nil
}

// IsWithinCampaign returns true if now falls on or before the last day of the campaign. The first
// call ever starts the campaign. Store failures are logged and reported as false.
func (g *Gate) IsWithinCampaign(ctx context.Context, now time.Time) bool {
	return g.campaignContains(ctx, now, DateOf(g.local(now)))
}

func (g *Gate) campaignContains(ctx context.Context, now time.Time, day Date) bool {
	campaign, err := g.Campaign(ctx, now)
	if err != nil {
		log.Error("Failed to read schedule state: %s", err)
		return false
	}
	log.Info("Schedule period: %s to %s (day %d of %d)", campaign.StartDate, campaign.EndDate(),
		day.DaysSince(campaign.StartDate), campaign.DurationDays)
	if !campaign.Contains(day) {
		log.Info("Schedule period has ended")
		return false
	}
	return true
}

func timeOfDay(local time.Time) time.Duration {
	hour, minute, second := local.Clock()
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second + time.Duration(local.Nanosecond())
}

// sinceOpening returns how long ago, in wall-clock time, the most recent window opened.
func (g *Gate) sinceOpening(local time.Time) time.Duration {
	elapsed := timeOfDay(local) - time.Duration(g.TargetMinutes)*time.Minute
	if elapsed < 0 {
		elapsed += 24 * time.Hour
	}
	return elapsed
}

// InFiringWindow returns true if the local time of day of now lies in
// [TargetMinutes, TargetMinutes+Window). The window wraps around midnight.
func (g *Gate) InFiringWindow(now time.Time) bool {
	return g.sinceOpening(g.local(now)) < g.Window
}

// WindowDate returns the date that markers for now are recorded under. This is the local date of
// now, except after midnight inside a window that opened the previous evening.
func (g *Gate) WindowDate(now time.Time) Date {
	local := g.local(now)
	today := DateOf(local)
	if g.InFiringWindow(now) && timeOfDay(local) < time.Duration(g.TargetMinutes)*time.Minute {
		return today.AddDays(-1)
	}
	return today
}

// ShouldRunToday returns true if the campaign is active, now is inside the firing window and the
// action has not run in this window.
func (g *Gate) ShouldRunToday(ctx context.Context, now time.Time) bool {
	day := g.WindowDate(now)
	if !g.campaignContains(ctx, now, day) {
		return false
	}
	if !g.InFiringWindow(now) {
		log.Debug("%s is outside the firing window starting at %s", g.local(now).Format("15:04"),
			FormatTimeOfDay(g.TargetMinutes))
		return false
	}
	executed, err := g.Store.Executed(ctx, day)
	if err != nil {
		log.Error("Failed to read execution marker for %s: %s", day, err)
		return false
	}
	if executed {
		log.Info("Already executed on %s", day)
		return false
	}
	return true
}

// MarkExecutedToday records that the action ran, under WindowDate(now). Repeated calls overwrite
// the record.
func (g *Gate) MarkExecutedToday(ctx context.Context, now time.Time) error {
	return g.Store.MarkExecuted(ctx, g.WindowDate(now), g.local(now))
}

// Run calls fn if the action should run today and marks the day on success. Errors returned by fn
// are returned unchanged and leave the day unmarked.
func (g *Gate) Run(ctx context.Context, now time.Time, fn func(context.Context) error) (bool, error) {
	if !g.ShouldRunToday(ctx, now) {
		return false, nil
	}
	if err := fn(ctx); err != nil {
		return false, err
	}
	if err := g.MarkExecutedToday(ctx, now); err != nil {
		return true, err
	}
	return true, nil
}
