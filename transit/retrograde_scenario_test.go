package transit

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/ephemeris"
	"github.com/kalachakra/ephemeris/timeutil"
)

// oscillatingProvider behaves like the stub provider for every body
// except Mars, whose longitude gets a sinusoidal perturbation on top
// of its mean motion large enough to push its instantaneous speed
// negative once per synodic period, the way an outer planet's
// apparent retrograde loop actually arises from Earth's own orbital
// motion.
type oscillatingProvider struct {
	epochJD float64
}

func newOscillatingProvider(config.Config) (ephemeris.Provider, error) {
	return &oscillatingProvider{epochJD: 2451545.0}, nil
}

func (o *oscillatingProvider) Position(jd float64, b body.Body) (longitude, latitude, distance, speed float64, warning string, err error) {
	t := body.Of(b)
	elapsedDays := jd - o.epochJD

	if b != body.Mars {
		longitude = math.Mod(t.AvgSpeed*elapsedDays, 360)
		if longitude < 0 {
			longitude += 360
		}
		return longitude, 0, 1.0, t.AvgSpeed, "", nil
	}

	period := t.SynodicPeriod / 86400 // days
	amplitude := 2 * t.AvgSpeed
	angle := 2 * math.Pi * elapsedDays / period

	longitude = math.Mod(t.AvgSpeed*elapsedDays+(amplitude*period/(2*math.Pi))*math.Sin(angle), 360)
	if longitude < 0 {
		longitude += 360
	}
	speed = t.AvgSpeed + amplitude*math.Cos(angle)
	return longitude, 0, 1.5, speed, "", nil
}

func (o *oscillatingProvider) Ascendant(jd float64, latitude, longitude float64) (float64, error) {
	return 0, nil
}

func (o *oscillatingProvider) Close() error { return nil }

func TestRetrogradesMarsStrictPolicyHasNegativeSpeedThroughout(t *testing.T) {
	provider, err := newOscillatingProvider(config.DefaultConfig())
	if err != nil {
		t.Fatalf("newOscillatingProvider() error = %v", err)
	}

	place := ephemeris.NewPlace("Ujjain", 5*time.Hour+30*time.Minute, 23.293, 75.626, 478)
	birth := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	e, err := ephemeris.New(birth, place, config.DefaultConfig(), provider)
	if err != nil {
		t.Fatalf("ephemeris.New() error = %v", err)
	}
	tf := New(e, nil)

	now := e.BirthUTC()
	synodic := time.Duration(body.Of(body.Mars).SynodicPeriod) * time.Second
	overlapping := timeutil.Interval{Start: now, End: now.Add(2 * synodic)}

	strict := config.Strict
	ctx := context.Background()
	results, err := tf.Retrogrades(ctx, body.Mars, overlapping, &strict)
	if err != nil {
		t.Fatalf("Retrogrades() error = %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one retrograde interval over two synodic periods")
	}

	for _, iv := range results {
		for sample := iv.Start; sample.Before(iv.End); sample = sample.Add(time.Hour) {
			pos, err := e.Position(ctx, body.Mars, sample)
			if err != nil {
				t.Fatalf("Position() error = %v", err)
			}
			if pos.Speed >= 0 {
				t.Errorf("interval %v: speed at %v = %v, want < 0", iv, sample, pos.Speed)
			}
		}
	}
}
