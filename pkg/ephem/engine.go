package ephem

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/siddhanta-labs/siddhanta/pkg/angle"
	"github.com/siddhanta-labs/siddhanta/pkg/astro"
)

// speedStep is the half-step in days for the central-difference speed
// estimate.
const speedStep = 0.5

// Engine computes geocentric ecliptic positions. It is stateless after
// construction; the term tables are read-only, so an Engine is safe for
// concurrent use.
type Engine struct {
	tables map[astro.Body]BodyTable
	earth  BodyTable
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTables substitutes term tables for the given bodies, keeping the
// built-in tables for bodies not present in the override.
func WithTables(tables map[astro.Body]BodyTable) Option {
	return func(e *Engine) {
		for body, table := range tables {
			e.tables[body] = table
		}
	}
}

// NewEngine creates an Engine with the built-in term tables.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tables: builtinTables(),
		earth:  earthElements.table(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Heliocentric returns the heliocentric Cartesian ecliptic coordinates
// (AU) of a classical planet at the given Julian Day. The Sun, Moon and
// nodes have no heliocentric series and yield an UnknownBodyError.
func (e *Engine) Heliocentric(body astro.Body, jd float64) (x, y, z float64, err error) {
	table, ok := e.tables[body]
	if !ok || body == astro.Sun || body == astro.Moon || body == astro.Rahu || body == astro.Ketu {
		return 0, 0, 0, &astro.UnknownBodyError{Name: body.String()}
	}
	x, y, z = sphericalToCartesian(e.evalTable(table, jd))
	return x, y, z, nil
}

// Geocentric returns the geocentric ecliptic position of any chart body at
// the given Julian Day, including the central-difference speed estimate.
func (e *Engine) Geocentric(body astro.Body, jd float64) (astro.Position, error) {
	lon, lat, dist, err := e.geocentricSpherical(body, jd)
	if err != nil {
		return astro.Position{}, err
	}

	before, _, _, err := e.geocentricSpherical(body, jd-speedStep)
	if err != nil {
		return astro.Position{}, err
	}
	after, _, _, err := e.geocentricSpherical(body, jd+speedStep)
	if err != nil {
		return astro.Position{}, err
	}
	speed := angle.WrapDelta(after-before) / (2 * speedStep)

	e.logger.Debug("geocentric position",
		"body", body.String(), "jd", jd, "longitude", lon, "speed", speed)

	return astro.Position{
		Longitude: lon,
		Latitude:  lat,
		Distance:  dist,
		Speed:     speed,
	}, nil
}

// Positions computes all nine chart bodies for one Julian Day. The bodies
// are independent, so the work fans out across goroutines with a final
// join; the map is assembled under a mutex.
func (e *Engine) Positions(ctx context.Context, jd float64) (map[astro.Body]astro.Position, error) {
	positions := make(map[astro.Body]astro.Position, len(astro.Bodies))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	for _, body := range astro.Bodies {
		g.Go(func() error {
			pos, err := e.Geocentric(body, jd)
			if err != nil {
				return err
			}
			mu.Lock()
			positions[body] = pos
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return positions, nil
}

// geocentricSpherical returns geocentric (longitude, latitude, distance)
// without the speed estimate.
func (e *Engine) geocentricSpherical(body astro.Body, jd float64) (lon, lat, dist float64, err error) {
	switch body {
	case astro.Sun, astro.Moon, astro.Rahu:
		lon, lat, dist = e.evalTable(e.tables[body], jd)
		return lon, lat, dist, nil
	case astro.Ketu:
		lon, lat, dist = e.evalTable(e.tables[astro.Rahu], jd)
		return angle.Normalize(lon + 180), -lat, dist, nil
	}

	table, ok := e.tables[body]
	if !ok {
		return 0, 0, 0, &astro.UnknownBodyError{Name: body.String()}
	}

	// Geocentric = heliocentric(body) − heliocentric(Earth), re-projected.
	bx, by, bz := sphericalToCartesian(e.evalTable(table, jd))
	ex, ey, ez := sphericalToCartesian(e.evalTable(e.earth, jd))
	x, y, z := bx-ex, by-ey, bz-ez

	r := math.Sqrt(x*x + y*y + z*z)
	return angle.Normalize(angle.Atan2(y, x)), angle.Asin(z / r), r, nil
}

// evalTable evaluates the three coordinate series of a table, normalizing
// the longitude into [0, 360).
func (e *Engine) evalTable(table BodyTable, jd float64) (lon, lat, dist float64) {
	t := CenturiesSinceJ2000(jd)
	return angle.Normalize(table.Longitude.Eval(t)),
		table.Latitude.Eval(t),
		table.Radius.Eval(t)
}

// sphericalToCartesian converts ecliptic (longitude, latitude, radius) to
// Cartesian coordinates.
func sphericalToCartesian(lon, lat, r float64) (x, y, z float64) {
	cosLat := angle.Cos(lat)
	return r * cosLat * angle.Cos(lon),
		r * cosLat * angle.Sin(lon),
		r * angle.Sin(lat)
}
