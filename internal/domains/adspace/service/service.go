package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"adbooking/internal/domains/adspace/client"
	"adbooking/internal/domains/adspace/model"
)

// Catalog owns the ad-space cache, the active listing filters, and the single
// selected space used to seed a booking draft. The cache is only ever replaced
// wholesale from a server response, never patched in place.
type Catalog interface {
	Filters() client.Filters
	SetFilters(filters client.Filters)
	Fetch(ctx context.Context) ([]model.AdSpace, error)
	Spaces() []model.AdSpace
	Get(ctx context.Context, id string) (model.AdSpace, error)
	Select(space model.AdSpace)
	Selected() (model.AdSpace, bool)
	ClearSelection()
}

type serviceImpl struct {
	client   *client.Client
	filters  client.Filters
	spaces   []model.AdSpace
	selected *model.AdSpace
}

func New(c *client.Client) Catalog {
	return &serviceImpl{client: c}
}

func (s *serviceImpl) Filters() client.Filters {
	return s.filters
}

func (s *serviceImpl) SetFilters(filters client.Filters) {
	s.filters = filters
}

// Fetch lists the catalog with the filters active at the time of the call.
// On success the cache is replaced wholesale; on failure it is cleared so the
// caller never renders stale data against an error.
func (s *serviceImpl) Fetch(ctx context.Context) ([]model.AdSpace, error) {
	spaces, err := s.client.List(ctx, s.filters)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch ad spaces")
		s.spaces = nil

		return nil, fmt.Errorf("fetching ad spaces: %w", err)
	}

	s.spaces = spaces

	return s.Spaces(), nil
}

func (s *serviceImpl) Spaces() []model.AdSpace {
	spaces := make([]model.AdSpace, len(s.spaces))
	copy(spaces, s.spaces)

	return spaces
}

func (s *serviceImpl) Get(ctx context.Context, id string) (model.AdSpace, error) {
	space, err := s.client.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("uuid", id).Msg("failed to fetch ad space")

		return model.AdSpace{}, err
	}

	return space, nil
}

func (s *serviceImpl) Select(space model.AdSpace) {
	s.selected = &space
}

func (s *serviceImpl) Selected() (model.AdSpace, bool) {
	if s.selected == nil {
		return model.AdSpace{}, false
	}

	return *s.selected, true
}

func (s *serviceImpl) ClearSelection() {
	s.selected = nil
}
