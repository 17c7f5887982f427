package geo

import (
	"fmt"

	"github.com/streetlist/places-api/external/nominatim"
	"github.com/streetlist/places-api/schema"
)

var (
	ErrAddressNotFound        = fmt.Errorf("address is not found")
	ErrSearcherNotInitialized = fmt.Errorf("location searcher is not initialized")
)

// LocationSearcher resolves a free-form address into a coordinate pair.
type LocationSearcher interface {
	LookupCoordinate(string) (schema.Coordinates, error)
}

type NominatimSearcher struct {
	client *nominatim.NominatimClient
}

func NewNominatimSearcher(endpoint string) *NominatimSearcher {
	return &NominatimSearcher{
		client: nominatim.New(endpoint),
	}
}

func (n *NominatimSearcher) LookupCoordinate(address string) (schema.Coordinates, error) {
	results, err := n.client.Query(address)
	if err != nil {
		return schema.Coordinates{}, err
	}

	if len(results) == 0 {
		return schema.Coordinates{}, ErrAddressNotFound
	}

	return schema.Coordinates{
		Longitude: results[0].Longitude,
		Latitude:  results[0].Latitude,
	}, nil
}

var defaultSearcher LocationSearcher

func SetLocationSearcher(searcher LocationSearcher) {
	defaultSearcher = searcher
}

func LookupCoordinate(address string) (schema.Coordinates, error) {
	if defaultSearcher == nil {
		return schema.Coordinates{}, ErrSearcherNotInitialized
	}

	return defaultSearcher.LookupCoordinate(address)
}
