package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"volunteer-dispatch/internal/config"
	"volunteer-dispatch/internal/geocode"
	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/seed"
)

type resolver interface {
	Resolve(ctx context.Context, address string) (float64, float64, error)
}

// geocoding is the selected geocoder. Book is set only for the static
// geocoder so dataset loads can extend it.
type geocoding struct {
	Resolver resolver
	Book     *geocode.Static
}

type geocodingIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func provideGeocoding(in geocodingIn) (geocoding, error) {
	gc := in.Config.Geocoder
	if gc.URL == "" {
		book := geocode.NewStatic()
		if ds, err := seed.Default(); err == nil {
			for _, a := range ds.Addresses {
				book.Add(a.Address, a.Lat, a.Lon)
			}
		} else {
			in.Logger.Warn("seed address book unavailable", logx.Err(err))
		}
		in.Logger.Info("using static geocoder")
		return geocoding{Resolver: book, Book: book}, nil
	}

	client, err := geocode.NewClient(gc.URL, gc.Timeout)
	if err != nil {
		return geocoding{}, err
	}
	return geocoding{Resolver: geocode.NewRetrying(client, in.Logger, in.Retries, geocode.RetryConfig{
		MaxAttempts: gc.MaxAttempts,
		BaseDelay:   gc.BaseDelay,
		MaxDelay:    gc.MaxDelay,
	})}, nil
}
