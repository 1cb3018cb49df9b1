// Package ephemeris wraps the external ephemeris oracle behind an
// adapter that converts civil instants to Julian Days, derives the
// South Node from the North Node, and batches position samples for the
// transit finder and daśā calculator.
package ephemeris

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/log"
	"github.com/kalachakra/ephemeris/observability"
	"github.com/kalachakra/ephemeris/timeutil"
	"go.opentelemetry.io/otel/attribute"
)

// Ephemeris is constructed with a birth instant (local to Place), a
// Place, and a Config. Position, Positions, Ascendant, Phase and
// HealthStatus open a tracing span; body position lookups (Position,
// Positions, PositionsDuring, Phase) consult the cache before calling
// into the Provider, while Ascendant and HealthStatus always call it.
type Ephemeris struct {
	birthUTC time.Time
	place    Place
	config   config.Config
	provider Provider
	cache    *Cache
	observer observability.ObserverInterface
	errs     *observability.ErrorRecorder
}

// New builds an Ephemeris. birthLocal is interpreted in place's UTC
// offset. provider is typically produced by a config.Config-specific
// NewFactory; a nil provider falls back to NewStubProvider, a data-free
// default.
func New(birthLocal time.Time, place Place, cfg config.Config, provider Provider) (*Ephemeris, error) {
	if provider == nil {
		var err error
		provider, err = NewStubProvider(cfg)
		if err != nil {
			return nil, err
		}
	}

	return &Ephemeris{
		birthUTC: place.ToUTC(birthLocal),
		place:    place,
		config:   cfg,
		provider: provider,
		cache:    NewCache(5 * time.Minute),
		observer: observability.Observer(),
		errs:     observability.NewErrorRecorder(),
	}, nil
}

// Close releases the Provider and evicts the cache.
func (e *Ephemeris) Close() error {
	e.cache.Evict()
	return e.provider.Close()
}

// BirthUTC returns the birth instant in UTC.
func (e *Ephemeris) BirthUTC() time.Time { return e.birthUTC }

// Place returns the configured birth place.
func (e *Ephemeris) Place() Place { return e.place }

// Config returns the configuration this adapter was built with.
func (e *Ephemeris) Config() config.Config { return e.config }

// JulianDay converts instant (defaulting to the birth instant when
// omitted) to a Julian Day, switching proleptic calendars at the
// 1582-10-15 UTC cutover.
func (e *Ephemeris) JulianDay(instant ...time.Time) float64 {
	when := e.birthUTC
	if len(instant) > 0 {
		when = instant[0]
	}
	return julianDay(when)
}

// Position returns b's position at instant, deriving SouthNode from
// NorthNode by antipodal inversion: (λ+180 mod 360, −β, d, −v).
func (e *Ephemeris) Position(ctx context.Context, b body.Body, instant time.Time) (Position, error) {
	ctx, span := e.observer.CreateSpan(ctx, "Ephemeris.Position")
	defer span.End()
	span.SetAttributes(attribute.String("body", b.String()), attribute.String("instant", instant.UTC().Format(time.RFC3339)))
	return e.position(ctx, b, instant)
}

func (e *Ephemeris) position(ctx context.Context, b body.Body, instant time.Time) (Position, error) {
	lookupBody := b
	if b == body.SouthNode {
		lookupBody = body.NorthNode
	}

	jd := julianDay(instant)
	if cached, ok := e.cache.Get(lookupBody, jd); ok {
		return invertIfSouthNode(b, cached), nil
	}

	longitude, latitude, distance, speed, warning, err := e.provider.Position(jd, lookupBody)
	if err != nil {
		return Position{}, e.oracleError(ctx, "Position", err)
	}
	if warning != "" {
		log.Logger().WarnContext(ctx, "oracle warning", "body", lookupBody.String(), "warning", warning)
		e.errs.RecordEvent(ctx, "oracle warning", map[string]interface{}{
			"body":    lookupBody.String(),
			"warning": warning,
		})
	}

	pos := Position{
		Longitude: longitude,
		Latitude:  latitude,
		Distance:  distance,
		Speed:     speed,
		HasMotion: true,
	}
	e.cache.Put(lookupBody, jd, pos)
	return invertIfSouthNode(b, pos), nil
}

func invertIfSouthNode(b body.Body, pos Position) Position {
	if b != body.SouthNode {
		return pos
	}
	longitude := math.Mod(pos.Longitude+180, 360)
	if longitude < 0 {
		longitude += 360
	}
	return Position{
		Longitude: longitude,
		Latitude:  -pos.Latitude,
		Distance:  pos.Distance,
		Speed:     -pos.Speed,
		HasMotion: pos.HasMotion,
	}
}

// Positions samples b's position at each of the given instants.
func (e *Ephemeris) Positions(ctx context.Context, b body.Body, instants []time.Time) ([]TimedPosition, error) {
	ctx, span := e.observer.CreateSpan(ctx, "Ephemeris.Positions")
	defer span.End()

	out := make([]TimedPosition, 0, len(instants))
	for _, instant := range instants {
		pos, err := e.position(ctx, b, instant)
		if err != nil {
			return nil, err
		}
		out = append(out, TimedPosition{Instant: instant, Position: pos})
	}
	return out, nil
}

// PositionsDuring samples b's position across interval at a fixed
// stride, inclusive of Start and exclusive of End.
func (e *Ephemeris) PositionsDuring(ctx context.Context, b body.Body, interval timeutil.Interval, every time.Duration) ([]TimedPosition, error) {
	if every <= 0 {
		return nil, e.validationError(ctx, "PositionsDuring", "every must be positive")
	}

	instants := make([]time.Time, 0, int(interval.Duration()/every)+1)
	for t := interval.Start; t.Before(interval.End); t = t.Add(every) {
		instants = append(instants, t)
	}
	return e.Positions(ctx, b, instants)
}

// Ascendant returns the ascendant's longitude at the adapter's birth
// instant and place.
func (e *Ephemeris) Ascendant(ctx context.Context) (Position, error) {
	ctx, span := e.observer.CreateSpan(ctx, "Ephemeris.Ascendant")
	defer span.End()

	jd := e.JulianDay()
	longitude, err := e.provider.Ascendant(jd, e.place.Latitude, e.place.Longitude)
	if err != nil {
		return Position{}, e.oracleError(ctx, "Ascendant", err)
	}
	return Position{Longitude: longitude}, nil
}

// Phase returns the Moon's illumination fraction and phase angle.
// Any other body is a validation error: this façade only makes sense
// for the Moon.
func (e *Ephemeris) Phase(ctx context.Context, b body.Body) (Phase, error) {
	ctx, span := e.observer.CreateSpan(ctx, "Ephemeris.Phase")
	defer span.End()

	if b != body.Moon {
		return Phase{}, e.validationError(ctx, "Phase", fmt.Sprintf("phase is only defined for the Moon, got %s", b))
	}

	moon, err := e.position(ctx, body.Moon, e.birthUTC)
	if err != nil {
		return Phase{}, err
	}
	sun, err := e.position(ctx, body.Sun, e.birthUTC)
	if err != nil {
		return Phase{}, err
	}

	elongation := math.Mod(moon.Longitude-sun.Longitude+360, 360)
	illumination := (1 - math.Cos(elongation*math.Pi/180)) / 2

	return Phase{PhaseAngle: elongation, Illumination: illumination}, nil
}

func (e *Ephemeris) oracleError(ctx context.Context, operation string, cause error) error {
	return e.errs.RecordError(ctx, cause, observability.ErrorContext{
		Severity:  observability.SeverityHigh,
		Category:  observability.CategoryExternal,
		Operation: operation,
		Component: "ephemeris",
	})
}

func (e *Ephemeris) validationError(ctx context.Context, operation, reason string) error {
	err := fmt.Errorf("ephemeris: %s", reason)
	return e.errs.RecordError(ctx, err, observability.ErrorContext{
		Severity:    observability.SeverityMedium,
		Category:    observability.CategoryValidation,
		Operation:   operation,
		Component:   "ephemeris",
		Retryable:   false,
		ExpectedErr: true,
	})
}
